package bloom

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Filter is a fixed size bloom filter.
type Filter struct {
	bits      *bitset.BitSet
	size      uint64
	hashCount uint64
	hasher    Hasher
}

type Option func(*Filter)

// WithHasher replaces the default xxHash position function.
func WithHasher(h Hasher) Option {
	return func(f *Filter) {
		if h != nil {
			f.hasher = h
		}
	}
}

// New returns an empty filter sized for itemsCount items at fpProbability.
func New(itemsCount int, fpProbability float64, opts ...Option) (*Filter, error) {
	params, err := EstimateParameters(itemsCount, fpProbability)
	if err != nil {
		return nil, err
	}
	return NewWithParams(params, opts...)
}

// NewWithParams returns an empty filter with explicit dimensions.
func NewWithParams(params Params, opts ...Option) (*Filter, error) {
	if params.Size == 0 || params.HashCount == 0 {
		return nil, fmt.Errorf("%w: size and hash count must be greater than 0, got %d and %d", ErrInvalidArgument, params.Size, params.HashCount)
	}
	// bitset.New swallows allocation failures and hands back an empty set
	bits := bitset.New(uint(params.Size))
	if uint64(bits.Len()) != params.Size {
		return nil, fmt.Errorf("%w: could not allocate %d bits", ErrInvalidArgument, params.Size)
	}
	f := &Filter{
		bits:      bits,
		size:      params.Size,
		hashCount: params.HashCount,
		hasher:    XXHash{},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Size is the number of bits in the filter.
func (f *Filter) Size() uint64 { return f.size }

// HashCount is the number of hash evaluations per item.
func (f *Filter) HashCount() uint64 { return f.hashCount }

func (f *Filter) Params() Params {
	return Params{Size: f.size, HashCount: f.hashCount}
}

func (f *Filter) position(item string, i uint64) uint {
	return uint(f.hasher.Position(item, uint32(i), f.size))
}

// Add marks item as seen.
func (f *Filter) Add(item string) {
	for i := uint64(0); i < f.hashCount; i++ {
		f.bits.Set(f.position(item, i))
	}
}

// Contains returns false if item was definitely never added, and true if it possibly was.
func (f *Filter) Contains(item string) bool {
	for i := uint64(0); i < f.hashCount; i++ {
		if !f.bits.Test(f.position(item, i)) {
			return false
		}
	}
	return true
}

// CheckAndAdd returns what Contains would have returned for item, then adds it.
func (f *Filter) CheckAndAdd(item string) bool {
	present := true
	for i := uint64(0); i < f.hashCount; i++ {
		pos := f.position(item, i)
		if !f.bits.Test(pos) {
			present = false
			f.bits.Set(pos)
		}
	}
	return present
}

// BitsSet counts the bits currently set.
func (f *Filter) BitsSet() uint {
	return f.bits.Count()
}

// FillRatio is the fraction of bits set, the false positive rate is roughly FillRatio^k.
func (f *Filter) FillRatio() float64 {
	return float64(f.bits.Count()) / float64(f.size)
}
