package pack

import (
	"iter"

	"github.com/arloliu/numpack/scalar"
)

// Result is the output of selection: either a PackedBuffer holding the
// sequence in a fixed-width layout, or a Fallback handing the sequence back
// unchanged because no candidate could hold it.
//
// Callers branch on the tag rather than on errors: a fallback is a normal,
// expected outcome for non-numeric or unboundable data.
type Result interface {
	// Len returns the number of elements.
	Len() int

	// IsPacked reports whether the result is a packed buffer.
	IsPacked() bool

	// IsFallback reports whether the result is a fallback sequence.
	IsFallback() bool

	// AsPacked returns the packed form, or false for fallbacks.
	AsPacked() (PackedBuffer, bool)

	// AsFallback returns the fallback form, or false for packed buffers.
	AsFallback() (Fallback, bool)

	// All iterates the elements in order. Packed buffers decode lazily;
	// fallbacks yield the original values.
	All() iter.Seq[scalar.Value]

	// At returns the element at index, or false when out of range.
	At(index int) (scalar.Value, bool)
}

var (
	_ Result = PackedBuffer{}
	_ Result = Fallback{}
)

// Fallback wraps a sequence that could not be packed. It aliases the
// caller's values rather than copying them; treat the slice as shared.
type Fallback struct {
	values []scalar.Value
}

func newFallback(values []scalar.Value) Fallback {
	return Fallback{values: values}
}

// Values returns the wrapped sequence. The slice is the fallback's backing
// storage, not a copy.
func (f Fallback) Values() []scalar.Value {
	return f.values
}

// Len returns the number of elements.
func (f Fallback) Len() int {
	return len(f.values)
}

// IsPacked always reports false.
func (f Fallback) IsPacked() bool { return false }

// IsFallback always reports true.
func (f Fallback) IsFallback() bool { return true }

// AsPacked always reports false.
func (f Fallback) AsPacked() (PackedBuffer, bool) {
	return PackedBuffer{}, false
}

// AsFallback returns the fallback itself.
func (f Fallback) AsFallback() (Fallback, bool) {
	return f, true
}

// All iterates the wrapped values in order.
func (f Fallback) All() iter.Seq[scalar.Value] {
	return func(yield func(scalar.Value) bool) {
		for _, v := range f.values {
			if !yield(v) {
				return
			}
		}
	}
}

// At returns the element at index, or false when out of range.
func (f Fallback) At(index int) (scalar.Value, bool) {
	if index < 0 || index >= len(f.values) {
		return scalar.Value{}, false
	}

	return f.values[index], true
}
