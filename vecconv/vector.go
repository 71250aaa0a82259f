package vecconv

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/arloliu/numpack/errs"
	"github.com/arloliu/numpack/pack"
	"github.com/arloliu/numpack/scalar"
)

// Float64s decodes every element of a result into a fresh []float64.
//
// Packed buffers decode through their element type; fallbacks convert
// element by element, so a numeric fallback (one that merely found no
// fitting type) still converts. Integers beyond 2^53 lose precision the
// same way any float64 conversion does.
//
// Parameters:
//   - res: The result to decode
//
// Returns:
//   - []float64: The decoded elements, owned by the caller
//   - error: A SelectionError wrapping ErrNonNumericValue for the first
//     non-numeric element
func Float64s(res pack.Result) ([]float64, error) {
	if pb, ok := res.AsPacked(); ok {
		if vs, ok := pb.Float64s(); ok {
			out := make([]float64, len(vs))
			copy(out, vs)

			return out, nil
		}
	}

	out := make([]float64, 0, res.Len())
	index := 0
	for v := range res.All() {
		if !v.IsNumeric() {
			return nil, errs.NewSelectionError(errs.ErrNonNumericValue, index, v, "numeric")
		}

		out = append(out, v.Float64())
		index++
	}

	return out, nil
}

// ToVector converts a result into a dense gonum vector.
//
// The vector owns its data; mutating it does not touch the result. An
// empty result yields an empty vector.
func ToVector(res pack.Result) (*mat.VecDense, error) {
	data, err := Float64s(res)
	if err != nil {
		return nil, err
	}

	if len(data) == 0 {
		return &mat.VecDense{}, nil
	}

	return mat.NewVecDense(len(data), data), nil
}

// FromVector selects and packs the elements of a gonum vector.
//
// Vector elements are float64 by construction, so selection sees float
// data: expect float32 or float64 outcomes, narrowed by the usual options.
func FromVector(v mat.Vector, opts ...pack.Option) (pack.Result, error) {
	values := make([]scalar.Value, v.Len())
	for i := range values {
		values[i] = scalar.Float(v.AtVec(i))
	}

	return pack.Select(values, opts...)
}

// Summary holds the descriptive statistics of a numeric result.
//
// StdDev is the sample standard deviation and is NaN for a single
// element. Mean and StdDev propagate NaN; Min and Max skip NaN elements
// and are NaN only when every element is.
type Summary struct {
	Count  int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

func (s Summary) String() string {
	return fmt.Sprintf("n=%d mean=%g stddev=%g min=%g max=%g", s.Count, s.Mean, s.StdDev, s.Min, s.Max)
}

// Summarize computes descriptive statistics over a result's elements.
//
// Parameters:
//   - res: The result to summarize
//
// Returns:
//   - Summary: Count, mean, sample standard deviation, and extremes
//   - error: Empty input, or a SelectionError wrapping ErrNonNumericValue
//     for the first non-numeric element
func Summarize(res pack.Result) (Summary, error) {
	xs, err := Float64s(res)
	if err != nil {
		return Summary{}, err
	}

	if len(xs) == 0 {
		return Summary{}, fmt.Errorf("cannot summarize an empty sequence")
	}

	return Summary{
		Count:  len(xs),
		Mean:   stat.Mean(xs, nil),
		StdDev: stat.StdDev(xs, nil),
		Min:    floats.Min(xs),
		Max:    floats.Max(xs),
	}, nil
}
