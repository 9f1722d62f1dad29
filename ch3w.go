package ch3w

import (
	"math"

	"github.com/hashpool/ch3w/hash"
)

// DefaultRetries bounds the number of placement attempts per pick.
//
// The chance that a single attempt is accepted equals the mean weight of
// the pool, so the chance that every attempt is rejected is
// (1 - meanWeight)^retries. At mean weight 0.25, 32 attempts push the
// fallback probability below 1e-4.
const DefaultRetries = 32

// Hasher maps a key to a server index within one pool.
type Hasher interface {
	Hash(key []byte) int
}

// Func is a configured WeightedCh3 hash function over a single pool. It is
// immutable after New and safe for concurrent use.
type Func struct {
	weights WeightVector
	base    hash.Base
	scorer  hash.Scorer
	retries int
}

// New builds a Func over the given weights. The pool size is
// weights.Len(). Defaults: jump base placement, murmur3 scorer,
// DefaultRetries attempts.
func New(weights WeightVector, opts ...Option) (*Func, error) {
	if weights.Len() == 0 {
		return nil, ErrEmptyWeights
	}

	f := &Func{
		weights: weights,
		base:    hash.NewJump(),
		scorer:  hash.NewMurmur3Scorer(0),
		retries: DefaultRetries,
	}
	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

// Hash returns the server index for key, always in [0, Weights().Len()).
func (f *Func) Hash(key []byte) int {
	return Pick(key, f.weights, f.base, f.scorer, f.retries)
}

// Weights returns the saved weight vector.
func (f *Func) Weights() WeightVector { return f.weights }

// Type returns the strategy token, TypeWeightedCh3.
func (f *Func) Type() string { return TypeWeightedCh3 }

// Pick runs the weighted retry loop once: up to retryCount attempts, each
// probing base(key+salt(attempt), n) and accepting the probed index when
// scorer(key) falls below weight*max(uint32). If every attempt is
// rejected, Pick returns the index probed by the last attempt, so it never
// fails and never leaves [0, n).
//
// Pick is a pure function of its arguments. A non-positive retryCount is
// treated as DefaultRetries. The pool must not be empty; NewWeights and
// the config parsers enforce that at construction.
func Pick(key []byte, weights WeightVector, base hash.Base, scorer hash.Scorer, retryCount int) int {
	if retryCount <= 0 {
		retryCount = DefaultRetries
	}
	n := weights.Len()

	// The draw uses the unsalted key, so whether a given server accepts
	// this key is fixed across attempts while the probed index varies
	// with the salt.
	p := float64(scorer.Score(key))

	salted := make([]byte, len(key), len(key)+4)
	copy(salted, key)

	index := 0
	for attempt := 0; attempt < retryCount; attempt++ {
		salted = append(salted[:len(key)], saltOf(attempt)...)
		index = base.Hash(salted, n)

		if p < weights.At(index)*math.MaxUint32 {
			return index
		}
	}

	return index
}
