package bloom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEstimateParameters(t *testing.T) {
	tables := []struct {
		n    int
		p    float64
		size uint64
		k    uint64
	}{
		// truncated, 6.64 hashes -> 6
		{1000, 0.01, 9585, 6},
		{100, 0.01, 958, 6},
		{10000, 0.01, 95850, 6},
		{1_000_000, 0.001, 14377587, 9},
		{1, 0.5, 1, 1},
	}
	for _, tt := range tables {
		params, err := EstimateParameters(tt.n, tt.p)
		require.Nil(t, err)
		require.Equal(t, tt.size, params.Size, "size for n=%d p=%v", tt.n, tt.p)
		require.Equal(t, tt.k, params.HashCount, "hash count for n=%d p=%v", tt.n, tt.p)
	}
}

func TestEstimateParametersFloors(t *testing.T) {
	// lenient probability truncates k to 0
	raw, err := TruncatedParameters(10, 0.6)
	require.Nil(t, err)
	require.Equal(t, uint64(10), raw.Size)
	require.Equal(t, uint64(0), raw.HashCount)

	params, err := EstimateParameters(10, 0.6)
	require.Nil(t, err)
	require.Equal(t, uint64(10), params.Size)
	require.Equal(t, uint64(1), params.HashCount)

	// single item at 90% truncates m to 0 as well
	raw, err = TruncatedParameters(1, 0.9)
	require.Nil(t, err)
	require.Equal(t, Params{}, raw)

	params, err = EstimateParameters(1, 0.9)
	require.Nil(t, err)
	require.Equal(t, Params{Size: 1, HashCount: 1}, params)
}

func TestEstimateParametersInvalid(t *testing.T) {
	tables := []struct {
		n int
		p float64
	}{
		{100, 1.5},
		{100, 1},
		{100, 0},
		{100, -0.1},
		{100, math.NaN()},
		{0, 0.01},
		{-5, 0.01},
		{math.MaxInt, 1e-300},
	}
	for _, tt := range tables {
		_, err := EstimateParameters(tt.n, tt.p)
		require.ErrorIs(t, err, ErrInvalidArgument, "n=%d p=%v", tt.n, tt.p)
		_, err = TruncatedParameters(tt.n, tt.p)
		require.ErrorIs(t, err, ErrInvalidArgument, "n=%d p=%v", tt.n, tt.p)
	}
}

func TestEstimateParametersDeterministic(t *testing.T) {
	a, err := EstimateParameters(12345, 0.0042)
	require.Nil(t, err)
	b, err := EstimateParameters(12345, 0.0042)
	require.Nil(t, err)
	require.Equal(t, a, b)
}

func TestParamsBytes(t *testing.T) {
	require.Equal(t, uint64(1199), Params{Size: 9585}.Bytes())
	require.Equal(t, uint64(1), Params{Size: 1}.Bytes())
	require.Equal(t, uint64(1), Params{Size: 8}.Bytes())
	require.Equal(t, uint64(2), Params{Size: 9}.Bytes())
}
