package ch3w

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// TypeWeightedCh3 identifies this hashing strategy when a router selects
// among hashing schemes by config token.
const TypeWeightedCh3 = "WeightedCh3"

// WeightVector is an immutable list of per-server weights. Index i holds
// the weight of server i, a value in [0.0, 1.0] representing that server's
// desired share of traffic. The zero value is empty and unusable; build one
// with NewWeights or the config parsers.
//
// A WeightVector never changes after construction and may be shared across
// any number of concurrent callers without synchronization.
type WeightVector struct {
	weights []float64
}

// NewWeights validates and wraps a raw weight list. The list must be
// non-empty and every weight must lie in [0.0, 1.0]; all violations are
// collected into the returned error, not just the first. The input slice
// is copied, so the caller may reuse it freely.
func NewWeights(weights []float64) (WeightVector, error) {
	if len(weights) == 0 {
		return WeightVector{}, ErrEmptyWeights
	}

	var merr *multierror.Error
	for i, w := range weights {
		if w < 0.0 || w > 1.0 {
			merr = multierror.Append(merr,
				errors.Wrapf(ErrWeightOutOfRange, "weights[%d] = %v", i, w))
		}
	}
	if err := merr.ErrorOrNil(); err != nil {
		return WeightVector{}, err
	}

	dup := make([]float64, len(weights))
	copy(dup, weights)

	return WeightVector{weights: dup}, nil
}

// Len reports the pool size.
func (v WeightVector) Len() int { return len(v.weights) }

// At returns the weight of server i. It panics if i is out of
// [0, v.Len()), same as indexing a slice.
func (v WeightVector) At(i int) float64 { return v.weights[i] }

// Weights returns a copy of the underlying weight list.
func (v WeightVector) Weights() []float64 {
	dup := make([]float64, len(v.weights))
	copy(dup, v.weights)

	return dup
}
