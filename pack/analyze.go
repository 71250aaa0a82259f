package pack

import (
	"github.com/arloliu/numpack/format"
	"github.com/arloliu/numpack/scalar"
)

// Reason explains an analysis outcome.
type Reason uint8

const (
	ReasonOK            Reason = iota // ReasonOK: a candidate type covers the sequence.
	ReasonEmpty                       // ReasonEmpty: the sequence has no elements.
	ReasonNonNumeric                  // ReasonNonNumeric: an inspected element is not a number.
	ReasonNoFittingType               // ReasonNoFittingType: numeric data, but no candidate covers it.
)

func (r Reason) String() string {
	switch r {
	case ReasonOK:
		return "ok"
	case ReasonEmpty:
		return "empty"
	case ReasonNonNumeric:
		return "non-numeric"
	case ReasonNoFittingType:
		return "no-fitting-type"
	default:
		return "unknown"
	}
}

// Analysis reports what selection would decide for a sequence without
// packing it: the element count, the observed extremes, the chosen type,
// and the reason when no type was chosen.
//
// TypeCode is format.TypeInvalid exactly when Reason is not ReasonOK. Min
// and Max are invalid values for empty and non-numeric sequences, and NaN
// for float sequences containing nothing but NaN.
type Analysis struct {
	Min      scalar.Value
	Max      scalar.Value
	Count    int
	TypeCode format.TypeCode
	Reason   Reason
}

// Analyze runs the scanner and selector over values read-only.
//
// Analyze is purely observational: it never raises strict selection
// failures (WithStrict is ignored) and scans without the early bounds
// lock, so Min and Max always reflect the true extremes of the inspected
// window. WithSampleSize still bounds how much is inspected.
//
// Parameters:
//   - values: The sequence to analyze
//   - opts: Selection options
//
// Returns:
//   - Analysis: The diagnostic summary
//   - error: Option validation error
func Analyze(values []scalar.Value, opts ...Option) (Analysis, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return Analysis{}, err
	}

	if len(values) == 0 {
		return Analysis{Reason: ReasonEmpty}, nil
	}

	or := scan(values, cfg, true)
	if or.Kind == KindNonNumeric {
		return Analysis{Count: len(values), Reason: ReasonNonNumeric}, nil
	}

	analysis := Analysis{
		Min:   or.Min(),
		Max:   or.Max(),
		Count: len(values),
	}

	cand, ok := chooseCandidate(or, cfg)
	if !ok {
		analysis.Reason = ReasonNoFittingType

		return analysis, nil
	}

	analysis.TypeCode = cand.Code

	return analysis, nil
}
