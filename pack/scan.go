package pack

import (
	"math"

	"github.com/arloliu/numpack/format"
	"github.com/arloliu/numpack/scalar"
)

// Kind classifies a scanned sequence.
type Kind uint8

const (
	KindEmpty      Kind = iota // KindEmpty marks a sequence with no elements.
	KindInteger                // KindInteger marks a sequence of integer elements only.
	KindFloat                  // KindFloat marks a sequence containing at least one float element.
	KindNonNumeric             // KindNonNumeric marks a sequence containing a non-numeric element.
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindNonNumeric:
		return "non-numeric"
	default:
		return "unknown"
	}
}

// ObservedRange is the scanner's summary of a value sequence: its kind and
// the bounds candidate selection needs.
//
// Integer bounds are tracked exactly on both sides of zero, so int64 and
// uint64 extremes fit without a wider intermediate. FloatMin and FloatMax
// track the running extremes of every non-NaN numeric element as float64,
// which is what float candidate fitting and diagnostics consume.
type ObservedRange struct {
	Count    int
	NegMin   int64   // most negative integer; valid when HasNegative
	NegMax   int64   // least negative integer; valid when HasNegative
	PosMin   uint64  // smallest non-negative integer; valid when HasNonNegative
	PosMax   uint64  // largest non-negative integer; valid when HasNonNegative
	FloatMin float64 // valid when HasBounds
	FloatMax float64 // valid when HasBounds

	Kind           Kind
	HasNegative    bool
	HasNonNegative bool
	HasBounds      bool

	// Saturated reports that scanning stopped updating bounds early because
	// the selection outcome was already pinned to float64. Bounds past the
	// saturation point only reflect the elements seen before it.
	Saturated bool
}

// Min returns the smallest observed value. Integer sequences report the
// exact integer; float sequences report the float64 running minimum. A
// sequence with no trackable bound (empty, non-numeric, or all-NaN floats)
// reports NaN for float kind and an invalid value otherwise.
func (o ObservedRange) Min() scalar.Value {
	switch o.Kind {
	case KindInteger:
		if o.HasNegative {
			return scalar.Int(o.NegMin)
		}
		if o.HasNonNegative {
			return scalar.Uint(o.PosMin)
		}
	case KindFloat:
		if o.HasBounds {
			return scalar.Float(o.FloatMin)
		}

		return scalar.Float(math.NaN())
	}

	return scalar.Value{}
}

// Max returns the largest observed value, mirroring Min.
func (o ObservedRange) Max() scalar.Value {
	switch o.Kind {
	case KindInteger:
		if o.HasNonNegative {
			return scalar.Uint(o.PosMax)
		}
		if o.HasNegative {
			return scalar.Int(o.NegMax)
		}
	case KindFloat:
		if o.HasBounds {
			return scalar.Float(o.FloatMax)
		}

		return scalar.Float(math.NaN())
	}

	return scalar.Value{}
}

// magnitude returns the largest absolute observed value, or 0 when no bound
// was tracked. ±Inf extremes yield +Inf, which no finite candidate magnitude
// covers.
func (o ObservedRange) magnitude() float64 {
	if !o.HasBounds {
		return 0
	}

	return math.Max(math.Abs(o.FloatMin), math.Abs(o.FloatMax))
}

// observeBound folds f into the float64 running extremes and reports whether
// they expanded. Callers must filter NaN first.
func (o *ObservedRange) observeBound(f float64) bool {
	if !o.HasBounds {
		o.FloatMin, o.FloatMax = f, f
		o.HasBounds = true

		return true
	}

	expanded := false
	if f < o.FloatMin {
		o.FloatMin = f
		expanded = true
	}
	if f > o.FloatMax {
		o.FloatMax = f
		expanded = true
	}

	return expanded
}

func (o *ObservedRange) observePos(uv uint64) bool {
	if !o.HasNonNegative {
		o.PosMin, o.PosMax = uv, uv
		o.HasNonNegative = true

		return true
	}

	if uv < o.PosMin {
		o.PosMin = uv
	}
	if uv > o.PosMax {
		o.PosMax = uv

		return true
	}

	return false
}

func (o *ObservedRange) observeInt(iv int64) bool {
	var expanded bool
	if iv < 0 {
		switch {
		case !o.HasNegative:
			o.NegMin, o.NegMax = iv, iv
			o.HasNegative = true
			expanded = true
		case iv < o.NegMin:
			o.NegMin = iv
			expanded = true
		case iv > o.NegMax:
			o.NegMax = iv
		}
	} else {
		expanded = o.observePos(uint64(iv))
	}

	if o.observeBound(float64(iv)) {
		expanded = true
	}

	return expanded
}

func (o *ObservedRange) observeUint(uv uint64) bool {
	expanded := o.observePos(uv)
	if o.observeBound(float64(uv)) {
		expanded = true
	}

	return expanded
}

func (o *ObservedRange) observeFloat(f float64) bool {
	if math.IsNaN(f) {
		return false
	}

	return o.observeBound(f)
}

// scan classifies and bounds up to cfg.sampleSize leading elements (all of
// them when the sample size is zero or exceeds the length).
//
// A non-numeric element is terminal: the scan stops immediately and the
// returned range reports KindNonNumeric with the bounds gathered so far.
//
// Once the running bounds pin selection to float64, no further numeric
// element can change the outcome: float64 covers every numeric value, and
// the coverage of narrower candidates only shrinks as bounds expand. From
// that point bounds updates stop and only the kind sweep continues, so a
// later float or non-numeric element within the window is still detected.
// The exact flag disables this early exit for callers that need the true
// extremes of the whole window, such as Analyze.
func scan(values []scalar.Value, cfg *Config, exact bool) ObservedRange {
	var or ObservedRange

	limit := len(values)
	if cfg.sampleSize > 0 && cfg.sampleSize < limit {
		limit = cfg.sampleSize
	}

	// Saturation is only reachable when the bounds keep float64 selectable.
	lockable := !exact && !cfg.noFloat &&
		(cfg.maxType == format.TypeInvalid || cfg.maxType == format.TypeFloat64)

	for i := range limit {
		v := values[i]

		kind := v.Kind()
		if kind == scalar.KindInvalid {
			or.Kind = KindNonNumeric

			return or
		}

		if kind == scalar.KindFloat {
			or.Kind = KindFloat
		} else if or.Kind == KindEmpty {
			or.Kind = KindInteger
		}

		or.Count++

		if or.Saturated {
			continue
		}

		var expanded bool
		switch kind {
		case scalar.KindInt:
			iv, _ := v.Int64()
			expanded = or.observeInt(iv)
		case scalar.KindUint:
			uv, _ := v.Uint64()
			expanded = or.observeUint(uv)
		case scalar.KindFloat:
			expanded = or.observeFloat(v.Float64())
		}

		if expanded && lockable {
			if cand, ok := chooseCandidate(or, cfg); ok && cand.Code == format.TypeFloat64 {
				or.Saturated = true
			}
		}
	}

	return or
}
