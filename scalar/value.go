// Package scalar provides the tagged scalar value that packing operates on.
//
// A Value holds exactly one of: a signed integer, an unsigned integer, or an
// IEEE 754 double. Anything else is carried as a non-numeric payload so that
// fallback paths can hand the original element back to the caller unchanged.
package scalar

import (
	"fmt"
	"math"
	"strconv"
)

// Kind identifies which representation a Value holds.
type Kind uint8

const (
	KindInvalid Kind = iota // KindInvalid marks a non-numeric payload.
	KindInt                 // KindInt marks a signed integer.
	KindUint                // KindUint marks an unsigned integer.
	KindFloat               // KindFloat marks an IEEE 754 double.
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	default:
		return "invalid"
	}
}

// Value is a tagged scalar. Numeric kinds store the payload in 8 bytes of
// bits; non-numeric values keep the original element in obj so it survives
// fallback round-trips. The zero Value is non-numeric with a nil payload.
type Value struct {
	bits uint64
	obj  any
	kind Kind
}

// Int returns a Value holding a signed integer.
func Int(v int64) Value {
	return Value{bits: uint64(v), kind: KindInt}
}

// Uint returns a Value holding an unsigned integer.
func Uint(v uint64) Value {
	return Value{bits: v, kind: KindUint}
}

// Float returns a Value holding a double. NaN and infinities are carried
// bit-exactly.
func Float(v float64) Value {
	return Value{bits: math.Float64bits(v), kind: KindFloat}
}

// NonNumeric returns a Value that carries v as an opaque non-numeric payload.
func NonNumeric(v any) Value {
	return Value{obj: v, kind: KindInvalid}
}

// Of classifies an arbitrary element. Built-in integer and float types map to
// the matching numeric kind; everything else, bool included, becomes a
// non-numeric Value and ok is false.
func Of(v any) (Value, bool) {
	switch x := v.(type) {
	case int:
		return Int(int64(x)), true
	case int8:
		return Int(int64(x)), true
	case int16:
		return Int(int64(x)), true
	case int32:
		return Int(int64(x)), true
	case int64:
		return Int(x), true
	case uint:
		return Uint(uint64(x)), true
	case uint8:
		return Uint(uint64(x)), true
	case uint16:
		return Uint(uint64(x)), true
	case uint32:
		return Uint(uint64(x)), true
	case uint64:
		return Uint(x), true
	case float32:
		return Float(float64(x)), true
	case float64:
		return Float(x), true
	default:
		return NonNumeric(v), false
	}
}

// Kind returns the value's kind tag.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNumeric reports whether the value holds a number.
func (v Value) IsNumeric() bool {
	return v.kind != KindInvalid
}

// Int64 returns the value as a signed 64-bit integer.
// It returns false for floats, for non-numeric values, and for unsigned
// values above math.MaxInt64.
func (v Value) Int64() (int64, bool) {
	switch v.kind {
	case KindInt:
		return int64(v.bits), true
	case KindUint:
		if v.bits > math.MaxInt64 {
			return 0, false
		}

		return int64(v.bits), true
	default:
		return 0, false
	}
}

// Uint64 returns the value as an unsigned 64-bit integer.
// It returns false for floats, for non-numeric values, and for negative
// signed values.
func (v Value) Uint64() (uint64, bool) {
	switch v.kind {
	case KindUint:
		return v.bits, true
	case KindInt:
		if int64(v.bits) < 0 {
			return 0, false
		}

		return v.bits, true
	default:
		return 0, false
	}
}

// Float64 returns the value as a double. Integer kinds convert, which may
// round above 2^53. Non-numeric values yield NaN.
func (v Value) Float64() float64 {
	switch v.kind {
	case KindFloat:
		return math.Float64frombits(v.bits)
	case KindInt:
		return float64(int64(v.bits))
	case KindUint:
		return float64(v.bits)
	default:
		return math.NaN()
	}
}

// Any returns the element in its most natural Go form: int64, uint64,
// float64, or the original non-numeric payload.
func (v Value) Any() any {
	switch v.kind {
	case KindInt:
		return int64(v.bits)
	case KindUint:
		return v.bits
	case KindFloat:
		return math.Float64frombits(v.bits)
	default:
		return v.obj
	}
}

// Equal reports whether two values are numerically equal. When either side
// is a float the comparison follows IEEE 754, so NaN never equals anything,
// itself included; the integer side converts to float64 first. Non-numeric
// values are never equal.
func (v Value) Equal(o Value) bool {
	if v.kind == KindInvalid || o.kind == KindInvalid {
		return false
	}

	if v.kind == KindFloat || o.kind == KindFloat {
		return v.Float64() == o.Float64()
	}

	if v.kind != o.kind && v.bits > math.MaxInt64 {
		// One side signed, one unsigned: equal only when both represent
		// the same non-negative magnitude.
		return false
	}

	return v.bits == o.bits
}

func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(int64(v.bits), 10)
	case KindUint:
		return strconv.FormatUint(v.bits, 10)
	case KindFloat:
		return strconv.FormatFloat(math.Float64frombits(v.bits), 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", v.obj)
	}
}

// FromInts converts a slice of signed integers.
func FromInts[T ~int | ~int8 | ~int16 | ~int32 | ~int64](vals []T) []Value {
	out := make([]Value, len(vals))
	for i, v := range vals {
		out[i] = Int(int64(v))
	}

	return out
}

// FromUints converts a slice of unsigned integers.
func FromUints[T ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64](vals []T) []Value {
	out := make([]Value, len(vals))
	for i, v := range vals {
		out[i] = Uint(uint64(v))
	}

	return out
}

// FromFloats converts a slice of floats.
func FromFloats[T ~float32 | ~float64](vals []T) []Value {
	out := make([]Value, len(vals))
	for i, v := range vals {
		out[i] = Float(float64(v))
	}

	return out
}

// FromAny classifies every element of a mixed slice. Non-numeric elements
// become payload-carrying Values rather than an error; packing decides what
// to do with them.
func FromAny(vals []any) []Value {
	out := make([]Value, len(vals))
	for i, v := range vals {
		out[i], _ = Of(v)
	}

	return out
}
