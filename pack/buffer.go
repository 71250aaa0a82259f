package pack

import (
	"fmt"
	"iter"

	"github.com/arloliu/numpack/encoding"
	"github.com/arloliu/numpack/endian"
	"github.com/arloliu/numpack/errs"
	"github.com/arloliu/numpack/format"
	"github.com/arloliu/numpack/internal/hash"
	"github.com/arloliu/numpack/scalar"
)

// PackedBuffer is a densely packed, homogeneous sequence: count elements of
// one catalog type laid out contiguously in the recorded byte order.
//
// A PackedBuffer is immutable after construction and safe for concurrent
// reads. Element access decodes through the safe fixed-width decoder; the
// typed view methods additionally hand out zero-copy slices when the buffer
// byte order matches the host.
type PackedBuffer struct {
	payload       []byte
	engine        endian.EndianEngine
	code          format.TypeCode
	count         int
	sameByteOrder bool
}

func newPackedBuffer(code format.TypeCode, count int, payload []byte, engine endian.EndianEngine) PackedBuffer {
	return PackedBuffer{
		payload:       payload,
		engine:        engine,
		code:          code,
		count:         count,
		sameByteOrder: endian.CompareNativeEndian(engine),
	}
}

// Wrap builds a PackedBuffer around an existing payload without copying it,
// the inverse of Bytes. The payload must hold whole elements of the given
// type in the byte order named by the options; callers hand over ownership
// and must not modify the payload afterwards.
//
// Parameters:
//   - code: The catalog element type of the payload
//   - payload: The packed bytes, length a multiple of the element width
//   - opts: Byte order options; other options are ignored
//
// Returns:
//   - PackedBuffer: The wrapping buffer
//   - error: ErrUnknownType for non-catalog codes, ErrPayloadTruncated when
//     the payload length is not a whole number of elements
func Wrap(code format.TypeCode, payload []byte, opts ...Option) (PackedBuffer, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return PackedBuffer{}, err
	}

	if !code.IsValid() {
		return PackedBuffer{}, fmt.Errorf("%w: 0x%02x", errs.ErrUnknownType, uint8(code))
	}

	if len(payload)%code.Size() != 0 {
		return PackedBuffer{}, fmt.Errorf("%w: %d bytes is not a whole number of %s elements",
			errs.ErrPayloadTruncated, len(payload), code)
	}

	return newPackedBuffer(code, len(payload)/code.Size(), payload, cfg.engine), nil
}

// TypeCode returns the element type of the buffer.
func (b PackedBuffer) TypeCode() format.TypeCode {
	return b.code
}

// Len returns the number of elements.
func (b PackedBuffer) Len() int {
	return b.count
}

// Size returns the payload size in bytes: Len() × element width.
func (b PackedBuffer) Size() int {
	return len(b.payload)
}

// Bytes returns the packed payload. The slice is the buffer's backing
// storage, not a copy; callers must not modify it.
func (b PackedBuffer) Bytes() []byte {
	return b.payload
}

// SameByteOrder reports whether the buffer byte order matches the host
// byte order, which is what the zero-copy typed views require.
func (b PackedBuffer) SameByteOrder() bool {
	return b.sameByteOrder
}

// Fingerprint returns the xxHash64 of the type code and payload. Two
// buffers with the same fingerprint hold the same elements as the same
// type in the same byte order.
func (b PackedBuffer) Fingerprint() uint64 {
	return hash.Sum64Tagged(byte(b.code), b.payload)
}

// IsPacked always reports true.
func (b PackedBuffer) IsPacked() bool { return true }

// IsFallback always reports false.
func (b PackedBuffer) IsFallback() bool { return false }

// AsPacked returns the buffer itself.
func (b PackedBuffer) AsPacked() (PackedBuffer, bool) {
	return b, true
}

// AsFallback always reports false.
func (b PackedBuffer) AsFallback() (Fallback, bool) {
	return Fallback{}, false
}

// All iterates the elements in order, decoding each through the safe
// fixed-width decoder. Integer types yield integer kinds, float types yield
// floats; NaN and infinities round-trip bit-exactly.
func (b PackedBuffer) All() iter.Seq[scalar.Value] {
	dec, err := encoding.NewFixedDecoder(b.code, b.engine)
	if err != nil {
		return func(yield func(scalar.Value) bool) {}
	}

	return dec.All(b.payload, b.count)
}

// At returns the element at index, or false when out of range.
func (b PackedBuffer) At(index int) (scalar.Value, bool) {
	dec, err := encoding.NewFixedDecoder(b.code, b.engine)
	if err != nil {
		return scalar.Value{}, false
	}

	return dec.At(b.payload, index, b.count)
}

// view hands out the payload reinterpreted as a typed slice when the buffer
// holds exactly that type in host byte order.
func view[T encoding.Element](b PackedBuffer, code format.TypeCode) ([]T, bool) {
	if b.code != code || !b.sameByteOrder {
		return nil, false
	}

	s, err := encoding.UnsafeView[T](b.payload)
	if err != nil {
		return nil, false
	}

	return s, true
}

// Int8s returns a zero-copy []int8 view of an int8 buffer in host byte
// order, or false. The view aliases the payload; callers must not modify it.
func (b PackedBuffer) Int8s() ([]int8, bool) { return view[int8](b, format.TypeInt8) }

// Uint8s returns a zero-copy []uint8 view, mirroring Int8s.
func (b PackedBuffer) Uint8s() ([]uint8, bool) { return view[uint8](b, format.TypeUint8) }

// Int16s returns a zero-copy []int16 view, mirroring Int8s.
func (b PackedBuffer) Int16s() ([]int16, bool) { return view[int16](b, format.TypeInt16) }

// Uint16s returns a zero-copy []uint16 view, mirroring Int8s.
func (b PackedBuffer) Uint16s() ([]uint16, bool) { return view[uint16](b, format.TypeUint16) }

// Int32s returns a zero-copy []int32 view, mirroring Int8s.
func (b PackedBuffer) Int32s() ([]int32, bool) { return view[int32](b, format.TypeInt32) }

// Uint32s returns a zero-copy []uint32 view, mirroring Int8s.
func (b PackedBuffer) Uint32s() ([]uint32, bool) { return view[uint32](b, format.TypeUint32) }

// Int64s returns a zero-copy []int64 view, mirroring Int8s.
func (b PackedBuffer) Int64s() ([]int64, bool) { return view[int64](b, format.TypeInt64) }

// Uint64s returns a zero-copy []uint64 view, mirroring Int8s.
func (b PackedBuffer) Uint64s() ([]uint64, bool) { return view[uint64](b, format.TypeUint64) }

// Float32s returns a zero-copy []float32 view, mirroring Int8s.
func (b PackedBuffer) Float32s() ([]float32, bool) { return view[float32](b, format.TypeFloat32) }

// Float64s returns a zero-copy []float64 view, mirroring Int8s.
func (b PackedBuffer) Float64s() ([]float64, bool) { return view[float64](b, format.TypeFloat64) }
