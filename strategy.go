package ch3w

import (
	"sync"

	"github.com/pkg/errors"
)

// Builder constructs a Hasher for one pool from its weight vector. Routers
// that support several hashing schemes resolve a Builder by strategy token
// out of the registry and rebuild the Hasher on every config reload.
type Builder interface {
	Build(weights WeightVector) (Hasher, error)
	Type() string
}

type weightedCh3Builder struct {
	opts []Option
}

// NewBuilder returns the WeightedCh3 Builder. The options apply to every
// Hasher it builds.
func NewBuilder(opts ...Option) Builder {
	return weightedCh3Builder{opts: opts}
}

func (b weightedCh3Builder) Build(weights WeightVector) (Hasher, error) {
	f, err := New(weights, b.opts...)
	if err != nil {
		return nil, err
	}

	return f, nil
}

func (b weightedCh3Builder) Type() string { return TypeWeightedCh3 }

var (
	buildersMu sync.RWMutex
	builders   = make(map[string]Builder)
)

func init() {
	Register(NewBuilder())
}

// Register makes a Builder resolvable by its type token. A later Register
// under the same token replaces the earlier one, so applications can
// override the stock WeightedCh3 builder.
func Register(b Builder) {
	buildersMu.Lock()
	defer buildersMu.Unlock()

	builders[b.Type()] = b
}

// BuilderFor resolves the Builder registered under typ.
func BuilderFor(typ string) (Builder, error) {
	buildersMu.RLock()
	defer buildersMu.RUnlock()

	b, ok := builders[typ]
	if !ok {
		return nil, errors.Wrap(ErrUnknownStrategy, typ)
	}

	return b, nil
}
