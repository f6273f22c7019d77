package bloom

import (
	"fmt"
	"math"
)

// Params are the dimensions of a filter.
type Params struct {
	// number of addressable bits (m)
	Size uint64
	// number of hash evaluations per item (k)
	HashCount uint64
}

// TruncatedParameters returns the sizing formulas truncated towards zero, without any floor.
// Either value may be zero for lenient probabilities.
func TruncatedParameters(itemsCount int, fpProbability float64) (Params, error) {
	if !(fpProbability > 0 && fpProbability < 1) {
		return Params{}, fmt.Errorf("%w: false positive probability must be between 0 and 1, got %v", ErrInvalidArgument, fpProbability)
	}
	if itemsCount <= 0 {
		return Params{}, fmt.Errorf("%w: items count must be greater than 0, got %d", ErrInvalidArgument, itemsCount)
	}
	n := float64(itemsCount)
	// float64 arithmetic, a constant ln2*ln2 would be folded at higher precision
	ln2 := math.Ln2
	m := -(n * math.Log(fpProbability)) / (ln2 * ln2)
	if m >= math.MaxInt64 {
		return Params{}, fmt.Errorf("%w: %d items at probability %v needs more bits than can be addressed", ErrInvalidArgument, itemsCount, fpProbability)
	}
	size := uint64(m)
	// k uses the truncated m, not the float
	k := (float64(size) / n) * ln2
	return Params{Size: size, HashCount: uint64(k)}, nil
}

// EstimateParameters returns the filter dimensions for itemsCount items at fpProbability.
// Both values are floored at 1 so that every valid input produces a usable filter.
func EstimateParameters(itemsCount int, fpProbability float64) (Params, error) {
	p, err := TruncatedParameters(itemsCount, fpProbability)
	if err != nil {
		return Params{}, err
	}
	p.Size = max(p.Size, 1)
	p.HashCount = max(p.HashCount, 1)
	return p, nil
}

// Bytes is the memory needed to hold the bit array.
func (p Params) Bytes() uint64 {
	return (p.Size + 7) / 8
}
