package ch3w

import (
	"github.com/hashpool/ch3w/hash"
)

type Option func(*Func)

// WithBase sets the consistent base placement used to probe candidate
// indices. Default is hash.Jump.
func WithBase(b hash.Base) Option {
	return func(f *Func) {
		if b == nil {
			return
		}

		f.base = b
	}
}

// WithScorer sets the scorer producing the per-key acceptance draw.
// Default is hash.Murmur3Scorer with seed 0.
func WithScorer(s hash.Scorer) Option {
	return func(f *Func) {
		if s == nil {
			return
		}

		f.scorer = s
	}
}

// WithRetries sets the attempt bound per pick. Non-positive values fall
// back to DefaultRetries.
func WithRetries(n int) Option {
	return func(f *Func) {
		if n <= 0 {
			n = DefaultRetries
		}

		f.retries = n
	}
}
