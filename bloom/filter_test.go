package bloom

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

var hashers = map[string]Hasher{"xxhash": XXHash{}, "murmur3": Murmur3{}}

func TestFilterSizing(t *testing.T) {
	f, err := New(1000, 0.01)
	require.Nil(t, err)
	require.Equal(t, uint64(9585), f.Size())
	require.Equal(t, uint64(6), f.HashCount())
	require.Equal(t, Params{Size: 9585, HashCount: 6}, f.Params())
	require.Equal(t, uint(0), f.BitsSet())
	require.Equal(t, uint(9585), f.bits.Len())
}

func TestFilterInvalid(t *testing.T) {
	tables := []struct {
		n int
		p float64
	}{
		{100, 1.5},
		{100, 0},
		{100, -0.1},
		{0, 0.01},
		{-5, 0.01},
		// sizes fine but too many bits to allocate
		{100_000_000_000_000_000, 0.01},
	}
	for _, tt := range tables {
		f, err := New(tt.n, tt.p)
		require.ErrorIs(t, err, ErrInvalidArgument)
		require.Nil(t, f)
	}

	f, err := NewWithParams(Params{Size: 0, HashCount: 3})
	require.ErrorIs(t, err, ErrInvalidArgument)
	require.Nil(t, f)
	f, err = NewWithParams(Params{Size: 10, HashCount: 0})
	require.ErrorIs(t, err, ErrInvalidArgument)
	require.Nil(t, f)
	f, err = NewWithParams(Params{Size: 958505837736744064, HashCount: 6})
	require.ErrorIs(t, err, ErrInvalidArgument)
	require.ErrorContains(t, err, "could not allocate")
	require.Nil(t, f)
}

func TestFilterAddAndContains(t *testing.T) {
	for name, h := range hashers {
		f, err := New(100, 0.01, WithHasher(h))
		require.Nil(t, err)
		f.Add("hello")
		require.True(t, f.Contains("hello"), name)
		require.False(t, f.Contains("world"), name)
	}
}

func TestFilterEmptyString(t *testing.T) {
	for name, h := range hashers {
		f, err := New(100, 0.01, WithHasher(h))
		require.Nil(t, err)
		require.False(t, f.Contains(""), name)
		f.Add("")
		require.True(t, f.Contains(""), name)
	}
}

func TestFilterNoFalseNegatives(t *testing.T) {
	for name, h := range hashers {
		f, err := New(5000, 0.01, WithHasher(h))
		require.Nil(t, err)
		for i := 0; i < 5000; i++ {
			item := fmt.Sprintf("post-%d", i)
			f.Add(item)
			require.True(t, f.Contains(item), "%s: %s", name, item)
		}
		for i := 0; i < 5000; i++ {
			require.True(t, f.Contains(fmt.Sprintf("post-%d", i)), name)
		}
	}
}

func TestFilterIdempotent(t *testing.T) {
	f, err := New(1000, 0.01)
	require.Nil(t, err)
	f.Add("repeat")
	once := f.bits.Clone()
	setOnce := f.BitsSet()
	require.LessOrEqual(t, setOnce, uint(f.HashCount()))
	require.Greater(t, setOnce, uint(0))

	f.Add("repeat")
	f.Add("repeat")
	require.True(t, once.Equal(f.bits))
	require.Equal(t, setOnce, f.BitsSet())
}

func TestFilterCheckAndAdd(t *testing.T) {
	f, err := New(1000, 0.01)
	require.Nil(t, err)
	require.False(t, f.CheckAndAdd("first"))
	require.True(t, f.Contains("first"))
	require.True(t, f.CheckAndAdd("first"))

	// same bits as plain Add
	g, err := New(1000, 0.01)
	require.Nil(t, err)
	g.Add("first")
	require.True(t, g.bits.Equal(f.bits))
}

func TestFilterFalsePositiveRate(t *testing.T) {
	const numItems = 10_000
	const numChecks = 10_000
	const fpRate = 0.01
	for name, h := range hashers {
		f, err := New(numItems, fpRate, WithHasher(h))
		require.Nil(t, err)
		for i := 0; i < numItems; i++ {
			f.Add(fmt.Sprintf("item-%d", i))
		}
		falsePositives := 0
		for i := numItems; i < numItems+numChecks; i++ {
			if f.Contains(fmt.Sprintf("item-%d", i)) {
				falsePositives++
			}
		}
		observed := float64(falsePositives) / numChecks
		t.Logf("%s: desired fp rate %v, observed %v, fill %.3f", name, fpRate, observed, f.FillRatio())
		require.Less(t, observed, fpRate*1.5, name)
	}
}

func TestFilterMillionPosts(t *testing.T) {
	f, err := New(1_000_000, 0.001)
	require.Nil(t, err)
	require.Equal(t, uint64(14377587), f.Size())
	require.Equal(t, uint64(9), f.HashCount())
	f.Add("A")
	f.Add("B")
	require.False(t, f.Contains("C"))
	require.True(t, f.Contains("A"))
	require.True(t, f.Contains("B"))
}

func TestFilterSingleHash(t *testing.T) {
	// k truncates to 0 here, floored to 1
	f, err := New(10, 0.6)
	require.Nil(t, err)
	require.Equal(t, uint64(1), f.HashCount())
	require.False(t, f.Contains("anything"))
	f.Add("anything")
	require.True(t, f.Contains("anything"))
	require.Equal(t, uint(1), f.BitsSet())
}

func TestFilterFillRatio(t *testing.T) {
	f, err := NewWithParams(Params{Size: 4, HashCount: 1})
	require.Nil(t, err)
	require.Equal(t, 0.0, f.FillRatio())
	f.Add("x")
	require.Equal(t, 0.25, f.FillRatio())
}

func BenchmarkFilterContains(b *testing.B) {
	f, err := New(1_000_000, 0.001)
	require.Nil(b, err)
	for i := 0; i < 1000; i++ {
		f.Add(fmt.Sprintf("post-%d", i))
	}
	b.ReportAllocs()
	for n := 0; n < b.N; n++ {
		_ = f.Contains("post-500")
	}
}
