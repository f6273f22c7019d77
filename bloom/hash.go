package bloom

import (
	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
)

//go:generate mockgen -source=hash.go -destination=mock_hasher_test.go -package=bloom

// Hasher maps an item and seed to a bit position in [0, size).
// Implementations must be deterministic and must not hold mutable state.
type Hasher interface {
	Position(item string, seed uint32, size uint64) uint64
}

// XXHash derives positions from a seeded 64 bit xxHash.
type XXHash struct{}

func (XXHash) Position(item string, seed uint32, size uint64) uint64 {
	var d xxhash.Digest
	d.ResetWithSeed(uint64(seed))
	// WriteString never returns an error
	_, _ = d.WriteString(item)
	return d.Sum64() % size
}

// Murmur3 derives positions from a seeded 32 bit murmur3 hash interpreted as signed,
// reduced with a floored modulo. This places bits at the same positions as
// filters built on mmh3.hash(item, seed) % size.
type Murmur3 struct{}

func (Murmur3) Position(item string, seed uint32, size uint64) uint64 {
	h := int64(int32(murmur3.Sum32WithSeed([]byte(item), seed)))
	m := int64(size)
	pos := h % m
	if pos < 0 {
		pos += m
	}
	return uint64(pos)
}

// HasherByName returns the hasher registered under name.
func HasherByName(name string) (Hasher, bool) {
	switch name {
	case "", "xxhash":
		return XXHash{}, true
	case "murmur3":
		return Murmur3{}, true
	}
	return nil, false
}
