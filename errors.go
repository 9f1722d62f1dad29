package ch3w

import (
	"github.com/pkg/errors"
)

var (
	ErrEmptyWeights     = errors.New("empty weights")
	ErrWeightOutOfRange = errors.New("weight out of range")
	ErrInvalidPoolSize  = errors.New("invalid pool size")

	ErrMalformedConfig = errors.New("malformed config")
	ErrUnknownStrategy = errors.New("unknown strategy")
)
