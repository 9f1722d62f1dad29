package ch3w

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hashpool/ch3w/hash"
)

// fakeBase replays scripted indices, one per attempt, and counts probes.
type fakeBase struct {
	indices []int
	calls   int
}

func (b *fakeBase) Hash(_ []byte, n int) int {
	i := b.indices[b.calls%len(b.indices)]
	b.calls++

	return i % n
}

// fakeScorer returns a fixed draw and counts evaluations.
type fakeScorer struct {
	p     uint32
	calls int
}

func (s *fakeScorer) Score(_ []byte) uint32 {
	s.calls++

	return s.p
}

func mustWeights(t *testing.T, raw []float64) WeightVector {
	t.Helper()

	v, err := NewWeights(raw)
	assert.NoError(t, err)

	return v
}

func TestNew_emptyWeights(t *testing.T) {
	_, err := New(WeightVector{})
	assert.ErrorIs(t, err, ErrEmptyWeights)
}

func TestFunc_deterministic(t *testing.T) {
	f, err := New(mustWeights(t, []float64{0.9, 0.3, 0.7, 0.1}))
	assert.NoError(t, err)

	for i := 0; i < 100; i++ {
		key := []byte(fmt.Sprintf("user:%d", i))

		want := f.Hash(key)
		for j := 0; j < 5; j++ {
			assert.Equal(t, want, f.Hash(key))
		}
	}
}

func TestFunc_allOnesMatchesBase(t *testing.T) {
	for _, n := range []int{2, 7} {
		weights := make([]float64, n)
		for i := range weights {
			weights[i] = 1.0
		}

		f, err := New(mustWeights(t, weights))
		assert.NoError(t, err)

		base := hash.NewJump()
		for i := 0; i < 1000; i++ {
			key := []byte(fmt.Sprintf("key-%d", i))
			assert.Equal(t, base.Hash(key, n), f.Hash(key))
		}
	}
}

func TestFunc_indexAlwaysInRange(t *testing.T) {
	f, err := New(mustWeights(t, []float64{0.0, 0.1, 0.0, 0.9, 0.5}))
	assert.NoError(t, err)

	for i := 0; i < 5000; i++ {
		idx := f.Hash([]byte(fmt.Sprintf("key-%d", i)))
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, 5)
	}
}

func TestPick_zeroWeightNeverAccepted(t *testing.T) {
	base := &fakeBase{indices: []int{0}}
	scorer := &fakeScorer{p: 0}

	// Every probe lands on the zero-weight index; every attempt is
	// rejected and the fallback returns that same index.
	idx := Pick([]byte("key"), mustWeights(t, []float64{0.0, 1.0}), base, scorer, 5)
	assert.Equal(t, 0, idx)
	assert.Equal(t, 5, base.calls)
}

func TestPick_fullWeightAcceptedWhenProbed(t *testing.T) {
	base := &fakeBase{indices: []int{0, 1}}
	scorer := &fakeScorer{p: math.MaxUint32 - 1}

	// Attempt 0 probes the zero-weight index and is rejected; attempt 1
	// probes the full-weight index, which accepts any draw below the max.
	idx := Pick([]byte("key"), mustWeights(t, []float64{0.0, 1.0}), base, scorer, 32)
	assert.Equal(t, 1, idx)
	assert.Equal(t, 2, base.calls)
}

func TestPick_monotonicAcceptance(t *testing.T) {
	// A fixed draw is accepted exactly when the probed weight clears it,
	// so raising a weight only ever turns rejections into acceptances.
	// Probe index 0 twice: an accepted first attempt never reaches the
	// second probe.
	draw := uint32(math.MaxUint32 / 2)
	acceptedAt := func(w float64) bool {
		b := &fakeBase{indices: []int{0}}
		Pick([]byte("key"), mustWeights(t, []float64{w, 1.0}), b, &fakeScorer{p: draw}, 2)

		return b.calls == 1
	}

	assert.False(t, acceptedAt(0.0))
	assert.False(t, acceptedAt(0.25))
	assert.True(t, acceptedAt(0.75))
	assert.True(t, acceptedAt(1.0))
}

func TestPick_boundedAttempts(t *testing.T) {
	base := &fakeBase{indices: []int{0}}
	scorer := &fakeScorer{p: math.MaxUint32 - 1}

	Pick([]byte("key"), mustWeights(t, []float64{0.5, 0.5}), base, scorer, 7)
	assert.LessOrEqual(t, base.calls, 7)
	assert.LessOrEqual(t, scorer.calls, 7)
}

func TestPick_defaultRetriesOnNonPositive(t *testing.T) {
	base := &fakeBase{indices: []int{0}}
	scorer := &fakeScorer{p: math.MaxUint32 - 1}

	idx := Pick([]byte("key"), mustWeights(t, []float64{0.0, 1.0}), base, scorer, 0)
	assert.Equal(t, 0, idx)
	assert.Equal(t, DefaultRetries, base.calls)
}

func TestFunc_zeroWeightDrainsToFullWeight(t *testing.T) {
	f, err := New(mustWeights(t, []float64{0.0, 1.0}))
	assert.NoError(t, err)

	const samples = 10000

	routedToOne := 0
	for i := 0; i < samples; i++ {
		if f.Hash([]byte(fmt.Sprintf("key-%d", i))) == 1 {
			routedToOne++
		}
	}

	// A key falls back to index 0 only when all 32 salted probes land
	// there, about 0.5^32 of keys.
	assert.InDelta(t, 1.0, float64(routedToOne)/samples, 0.001)
}

func TestFunc_evenWeightsSplitEvenly(t *testing.T) {
	f, err := New(mustWeights(t, []float64{0.5, 0.5}))
	assert.NoError(t, err)

	const samples = 20000

	counts := [2]int{}
	for i := 0; i < samples; i++ {
		counts[f.Hash([]byte(fmt.Sprintf("key-%d", i)))]++
	}

	assert.InDelta(t, 0.5, float64(counts[0])/samples, 0.02)
	assert.InDelta(t, 0.5, float64(counts[1])/samples, 0.02)
}

func TestFunc_accessors(t *testing.T) {
	v := mustWeights(t, []float64{0.25, 0.75})

	f, err := New(v, WithRetries(16), WithBase(hash.NewRendezvous(0)), WithScorer(hash.NewMurmur3Scorer(7)))
	assert.NoError(t, err)

	assert.Equal(t, TypeWeightedCh3, f.Type())
	assert.Equal(t, []float64{0.25, 0.75}, f.Weights().Weights())
}
