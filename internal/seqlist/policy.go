package seqlist

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/inoxlang/seqlist/internal/utils"
)

const (
	DEFAULT_GROWTH_FACTOR    = 2
	MAX_GROWTH_FACTOR        = 16
	DEFAULT_MIN_ALLOCATION   = 4
	MAX_REPRESENTABLE_LENGTH = math.MaxInt
)

var currentPolicy atomic.Pointer[Policy]

func init() {
	currentPolicy.Store(&Policy{
		GrowthFactor:  DEFAULT_GROWTH_FACTOR,
		MinAllocation: DEFAULT_MIN_ALLOCATION,
	})
}

// Policy controls how buffers grow when a list runs out of capacity.
type Policy struct {
	// the new capacity of a grown buffer is at least GrowthFactor * old capacity.
	GrowthFactor int

	// minimum capacity of a buffer allocated by a growth, 0 means 1.
	MinAllocation int
}

// SetPolicy validates and installs p, it affects all subsequent growths.
func SetPolicy(p Policy) error {
	if p.GrowthFactor < 2 {
		return fmt.Errorf("%w: %d, it should be at least 2", ErrInvalidGrowthFactor, p.GrowthFactor)
	}
	if p.GrowthFactor > MAX_GROWTH_FACTOR {
		return fmt.Errorf("%w: %d, it should be at most %d", ErrInvalidGrowthFactor, p.GrowthFactor, MAX_GROWTH_FACTOR)
	}
	if p.MinAllocation < 0 {
		return fmt.Errorf("negative minimum allocation: %d", p.MinAllocation)
	}
	currentPolicy.Store(&p)
	return nil
}

func GetPolicy() Policy {
	return *currentPolicy.Load()
}

// MaxLength returns the largest length a list of T can have: half the maximum representable
// byte count divided by the size of T, the other half is left for internal bookkeeping.
func MaxLength[T any]() int {
	size := utils.GetByteSize[T]()
	if size == 0 {
		return MAX_REPRESENTABLE_LENGTH / 2
	}
	return (MAX_REPRESENTABLE_LENGTH / 2) / int(size)
}

// grownCapacity returns the capacity of the buffer that replaces a buffer of the given
// capacity when at least needed slots are required.
func grownCapacity[T any](capacity, needed int) int {
	policy := currentPolicy.Load()

	newCapacity, ok := utils.MulNoOverflow(capacity, policy.GrowthFactor)
	if !ok {
		newCapacity = MAX_REPRESENTABLE_LENGTH
	}
	newCapacity = max(newCapacity, needed, policy.MinAllocation, 1)

	if maxLen := MaxLength[T](); newCapacity > maxLen && needed <= maxLen {
		newCapacity = maxLen
	}
	return newCapacity
}
