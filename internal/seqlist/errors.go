package seqlist

import (
	"errors"
)

var (
	ErrListWasEmpty      = errors.New("list was empty")
	ErrOutOfBounds       = errors.New("index out of bounds")
	ErrAllocationFailure = errors.New("allocation failure")

	ErrInvalidGrowthFactor = errors.New("invalid growth factor")
)
