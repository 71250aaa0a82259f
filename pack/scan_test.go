package pack

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/numpack/scalar"
)

func mustConfig(t *testing.T, opts ...Option) *Config {
	t.Helper()

	cfg, err := newConfig(opts...)
	require.NoError(t, err)

	return cfg
}

func TestScan_Empty(t *testing.T) {
	or := scan(nil, mustConfig(t), false)

	require.Equal(t, KindEmpty, or.Kind)
	require.Equal(t, 0, or.Count)
	require.False(t, or.Min().IsNumeric())
	require.False(t, or.Max().IsNumeric())
}

func TestScan_IntegerBounds(t *testing.T) {
	values := scalar.FromInts([]int{5, -3, 250, 7})
	or := scan(values, mustConfig(t), false)

	require.Equal(t, KindInteger, or.Kind)
	require.Equal(t, 4, or.Count)
	require.True(t, or.HasNegative)
	require.True(t, or.HasNonNegative)
	require.Equal(t, int64(-3), or.NegMin)
	require.Equal(t, int64(-3), or.NegMax)
	require.Equal(t, uint64(5), or.PosMin)
	require.Equal(t, uint64(250), or.PosMax)
	require.Equal(t, scalar.Int(-3), or.Min())
	require.Equal(t, scalar.Uint(250), or.Max())
	require.Equal(t, -3.0, or.FloatMin)
	require.Equal(t, 250.0, or.FloatMax)
}

func TestScan_AllNegative(t *testing.T) {
	values := scalar.FromInts([]int64{-7, -2, -5})
	or := scan(values, mustConfig(t), false)

	require.Equal(t, scalar.Int(-7), or.Min())
	require.Equal(t, scalar.Int(-2), or.Max())
	require.False(t, or.HasNonNegative)
}

func TestScan_Uint64BeyondInt64(t *testing.T) {
	values := []scalar.Value{scalar.Uint(math.MaxUint64), scalar.Uint(3)}
	or := scan(values, mustConfig(t), false)

	require.Equal(t, KindInteger, or.Kind)
	require.Equal(t, uint64(math.MaxUint64), or.PosMax)
	require.Equal(t, scalar.Uint(3), or.Min())
	require.Equal(t, scalar.Uint(math.MaxUint64), or.Max())
}

func TestScan_FloatKindIsSticky(t *testing.T) {
	values := []scalar.Value{scalar.Int(1), scalar.Float(2.5), scalar.Int(3)}
	or := scan(values, mustConfig(t), false)

	require.Equal(t, KindFloat, or.Kind)
	require.Equal(t, scalar.Float(1), or.Min())
	require.Equal(t, scalar.Float(3), or.Max())
}

func TestScan_IntegralFloatStillFloatKind(t *testing.T) {
	// Classification follows the value kind tag, not integrality.
	values := scalar.FromFloats([]float64{1.0, 2.0})
	or := scan(values, mustConfig(t), false)

	require.Equal(t, KindFloat, or.Kind)
}

func TestScan_NaNDoesNotPerturbBounds(t *testing.T) {
	nan := math.NaN()
	values := scalar.FromFloats([]float64{nan, 1.5, nan, -2.5})
	or := scan(values, mustConfig(t), false)

	require.Equal(t, KindFloat, or.Kind)
	require.True(t, or.HasBounds)
	require.Equal(t, -2.5, or.FloatMin)
	require.Equal(t, 1.5, or.FloatMax)
}

func TestScan_AllNaN(t *testing.T) {
	values := scalar.FromFloats([]float64{math.NaN(), math.NaN()})
	or := scan(values, mustConfig(t), false)

	require.Equal(t, KindFloat, or.Kind)
	require.False(t, or.HasBounds)
	require.True(t, math.IsNaN(or.Min().Float64()))
	require.True(t, math.IsNaN(or.Max().Float64()))
}

func TestScan_InfinityExpandsBounds(t *testing.T) {
	// The exact scan keeps tracking after the +Inf pins selection to
	// float64; a saturating scan would skip the -Inf entirely.
	values := scalar.FromFloats([]float64{1.0, math.Inf(1), math.Inf(-1)})
	or := scan(values, mustConfig(t), true)

	require.True(t, math.IsInf(or.FloatMax, 1))
	require.True(t, math.IsInf(or.FloatMin, -1))
	require.True(t, math.IsInf(or.magnitude(), 1))
}

func TestScan_NonNumericIsTerminal(t *testing.T) {
	values := []scalar.Value{
		scalar.Int(1),
		scalar.Int(2),
		scalar.NonNumeric("three"),
		scalar.Int(1 << 40),
	}
	or := scan(values, mustConfig(t), false)

	require.Equal(t, KindNonNumeric, or.Kind)
	require.Equal(t, 2, or.Count)
	require.Equal(t, uint64(2), or.PosMax)
}

func TestScan_SampleSizeBoundsInspection(t *testing.T) {
	values := scalar.FromInts([]int{1, 2, 300, -1})
	or := scan(values, mustConfig(t, WithSampleSize(2)), false)

	require.Equal(t, 2, or.Count)
	require.Equal(t, uint64(2), or.PosMax)
	require.False(t, or.HasNegative)
}

func TestScan_SaturationLocksBounds(t *testing.T) {
	// 1e300 exceeds float32 range, pinning selection to float64; the 5.0
	// after the lock no longer moves the extremes.
	values := scalar.FromFloats([]float64{1e300, 5.0})

	or := scan(values, mustConfig(t), false)
	require.True(t, or.Saturated)
	require.Equal(t, 1e300, or.FloatMin)
	require.Equal(t, 1e300, or.FloatMax)
	require.Equal(t, 2, or.Count)

	exact := scan(values, mustConfig(t), true)
	require.False(t, exact.Saturated)
	require.Equal(t, 5.0, exact.FloatMin)
	require.Equal(t, 1e300, exact.FloatMax)
}

func TestScan_SaturationKeepsKindSweep(t *testing.T) {
	values := []scalar.Value{
		scalar.Float(1e300),
		scalar.Float(5.0),
		scalar.NonNumeric(struct{}{}),
	}
	or := scan(values, mustConfig(t), false)

	require.Equal(t, KindNonNumeric, or.Kind)
}

func TestScan_NoFloatDisablesSaturation(t *testing.T) {
	values := scalar.FromFloats([]float64{1e300, 5.0})
	or := scan(values, mustConfig(t, WithNoFloat(true)), false)

	require.False(t, or.Saturated)
	require.Equal(t, 5.0, or.FloatMin)
}

func TestScan_FloatDowngradeDisabledSaturatesImmediately(t *testing.T) {
	// With float32 skipped, the very first float pins selection to float64.
	values := scalar.FromFloats([]float64{1.5, 2.5})
	or := scan(values, mustConfig(t, WithFloatDowngrade(false)), false)

	require.True(t, or.Saturated)
	require.Equal(t, 1.5, or.FloatMin)
	require.Equal(t, 1.5, or.FloatMax)
}

func TestKind_String(t *testing.T) {
	require.Equal(t, "empty", KindEmpty.String())
	require.Equal(t, "integer", KindInteger.String())
	require.Equal(t, "float", KindFloat.String())
	require.Equal(t, "non-numeric", KindNonNumeric.String())
	require.Equal(t, "unknown", Kind(9).String())
}
