package format

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTypeCode_Rank_Ordering(t *testing.T) {
	codes := []TypeCode{
		TypeInt8, TypeUint8, TypeInt16, TypeUint16,
		TypeInt32, TypeUint32, TypeInt64, TypeUint64,
		TypeFloat32, TypeFloat64,
	}

	for i, code := range codes {
		require.Equal(t, i, code.Rank(), "rank of %s", code)
	}

	require.Equal(t, -1, TypeInvalid.Rank())
	require.Equal(t, -1, TypeCode(0xFF).Rank())
}

func TestTypeCode_Size(t *testing.T) {
	tests := []struct {
		code TypeCode
		size int
	}{
		{TypeInt8, 1},
		{TypeUint8, 1},
		{TypeInt16, 2},
		{TypeUint16, 2},
		{TypeInt32, 4},
		{TypeUint32, 4},
		{TypeInt64, 8},
		{TypeUint64, 8},
		{TypeFloat32, 4},
		{TypeFloat64, 8},
		{TypeInvalid, 0},
	}

	for _, tt := range tests {
		require.Equal(t, tt.size, tt.code.Size(), "size of %s", tt.code)
	}
}

func TestCatalog_MatchesRankOrder(t *testing.T) {
	cat := Catalog()
	require.Len(t, cat, 10)

	for i, c := range cat {
		require.Equal(t, i, c.Code.Rank())
		require.Equal(t, c.Code.IsFloat(), c.Float)
		require.Equal(t, c.Code.IsSigned(), c.Signed)
	}
}

func TestCandidateOf_Bounds(t *testing.T) {
	i8, ok := CandidateOf(TypeInt8)
	require.True(t, ok)
	require.Equal(t, int64(math.MinInt8), i8.MinInt)
	require.Equal(t, uint64(math.MaxInt8), i8.MaxUint)

	u64, ok := CandidateOf(TypeUint64)
	require.True(t, ok)
	require.Equal(t, int64(0), u64.MinInt)
	require.Equal(t, uint64(math.MaxUint64), u64.MaxUint)

	f32, ok := CandidateOf(TypeFloat32)
	require.True(t, ok)
	require.Equal(t, float64(math.MaxFloat32), f32.MaxMagnitude)

	f64, ok := CandidateOf(TypeFloat64)
	require.True(t, ok)
	require.True(t, math.IsInf(f64.MaxMagnitude, 1))

	_, ok = CandidateOf(TypeInvalid)
	require.False(t, ok)
}
