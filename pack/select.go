package pack

import (
	"math"

	"github.com/arloliu/numpack/format"
	"github.com/arloliu/numpack/scalar"
)

// Integer candidate orderings by policy. Floats always trail the integers,
// so they are appended separately.
var (
	intsUnsignedFirst = []format.TypeCode{
		format.TypeUint8, format.TypeInt8,
		format.TypeUint16, format.TypeInt16,
		format.TypeUint32, format.TypeInt32,
		format.TypeUint64, format.TypeInt64,
	}
	intsSignedFirst = []format.TypeCode{
		format.TypeInt8, format.TypeUint8,
		format.TypeInt16, format.TypeUint16,
		format.TypeInt32, format.TypeUint32,
		format.TypeInt64, format.TypeUint64,
	}
	intsWide = []format.TypeCode{
		format.TypeInt64, format.TypeUint64,
		format.TypeInt32, format.TypeUint32,
		format.TypeInt16, format.TypeUint16,
		format.TypeInt8, format.TypeUint8,
	}
	floatCodes = []format.TypeCode{format.TypeFloat32, format.TypeFloat64}
)

// candidateOrder builds the candidate walk order for the configured policy,
// restricted to the inclusive [minType, maxType] rank slice. An inverted
// slice yields an empty order. When the observed range contains a negative
// value, unsigned candidates are not eligible at any width.
func candidateOrder(cfg *Config, hasNegative bool) []format.Candidate {
	var base []format.TypeCode
	switch cfg.policy {
	case PolicyBalanced:
		base = intsSignedFirst
	case PolicyWide:
		base = intsWide
	default:
		if cfg.preferSigned {
			base = intsSignedFirst
		} else {
			base = intsUnsignedFirst
		}
	}

	lo, hi := 0, format.TypeFloat64.Rank()
	if cfg.minType != format.TypeInvalid {
		lo = cfg.minType.Rank()
	}
	if cfg.maxType != format.TypeInvalid {
		hi = cfg.maxType.Rank()
	}

	order := make([]format.Candidate, 0, len(base)+len(floatCodes))
	add := func(code format.TypeCode) {
		rank := code.Rank()
		if rank < lo || rank > hi {
			return
		}

		cand, _ := format.CandidateOf(code)
		if hasNegative && !cand.Signed {
			return
		}

		order = append(order, cand)
	}

	for _, code := range base {
		add(code)
	}
	if !cfg.noFloat {
		for _, code := range floatCodes {
			add(code)
		}
	}

	return order
}

// chooseCandidate returns the first candidate in the policy order whose
// range covers the observed one. Empty and non-numeric ranges never match.
func chooseCandidate(or ObservedRange, cfg *Config) (format.Candidate, bool) {
	if or.Kind != KindInteger && or.Kind != KindFloat {
		return format.Candidate{}, false
	}

	for _, cand := range candidateOrder(cfg, or.HasNegative) {
		if coversRange(cand, or, cfg) {
			return cand, true
		}
	}

	return format.Candidate{}, false
}

// coversRange reports whether every value summarized by the observed range
// fits the candidate.
//
// Integer candidates cover integer ranges within their exact bounds and
// never cover float ranges: a float element does not coerce into an integer
// slot even when its value is integral. float32 covers any range whose
// largest magnitude stays within its finite limit, so ±Inf extremes push
// selection to float64 even though float32 could represent them; fitting is
// range-based, and an infinite extreme means the finite extremes are
// unknown. float64 covers every numeric range.
func coversRange(cand format.Candidate, or ObservedRange, cfg *Config) bool {
	if !cand.Float {
		if or.Kind != KindInteger {
			return false
		}
		if or.HasNegative && or.NegMin < cand.MinInt {
			return false
		}

		return !or.HasNonNegative || or.PosMax <= cand.MaxUint
	}

	if cand.Code == format.TypeFloat32 {
		if or.Kind == KindFloat && !cfg.allowFloatDowngrade {
			return false
		}

		return or.magnitude() <= cand.MaxMagnitude
	}

	return true
}

// coversValue reports whether a single value fits the candidate, mirroring
// the validation the fixed-width encoder applies at pack time. Used to
// locate the first offending element for strict-mode errors.
func coversValue(cand format.Candidate, v scalar.Value) bool {
	if !cand.Float {
		switch v.Kind() {
		case scalar.KindInt:
			iv, _ := v.Int64()
			if iv < 0 {
				return iv >= cand.MinInt
			}

			return uint64(iv) <= cand.MaxUint
		case scalar.KindUint:
			uv, _ := v.Uint64()

			return uv <= cand.MaxUint
		default:
			return false
		}
	}

	if !v.IsNumeric() {
		return false
	}

	f := v.Float64()
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return true
	}

	return math.Abs(f) <= cand.MaxMagnitude
}
