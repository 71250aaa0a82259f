package encoding

import (
	"fmt"
	"iter"
	"math"

	"github.com/arloliu/numpack/endian"
	"github.com/arloliu/numpack/errs"
	"github.com/arloliu/numpack/format"
	"github.com/arloliu/numpack/internal/pool"
	"github.com/arloliu/numpack/scalar"
)

// FixedEncoder encodes scalar values into the fixed-width binary layout of a
// single element type using direct memory operations.
//
// Each value is validated against the element type before it is written:
// integer slots accept only integral values inside the type's bounds, float32
// rejects finite magnitudes beyond its representable range, and float64
// accepts every numeric value. Floats never coerce into integer slots, even
// when their fractional part is zero. A rejected value leaves the buffer
// unchanged, so the encoded payload only ever contains fully validated
// elements.
//
// Values are stored in their native binary representation (two's complement
// for integers, IEEE 754 for floats) using the specified endianness with an
// amortized buffer growth strategy for optimal performance.
type FixedEncoder struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
	cand   format.Candidate
	mask   uint64
	width  int
	count  int
}

var _ ValueEncoder = (*FixedEncoder)(nil)

// NewFixedEncoder creates a fixed-width encoder for the given element type
// using the specified endian engine.
//
// The encoder uses a pooled []byte buffer with amortized growth strategy:
// - Write: Amortized O(1) buffer growth with direct encoding
// - WriteSlice: Pre-allocated buffer for bulk operations
//
// Parameters:
//   - code: Element type to encode into (one of the ten numeric type codes)
//   - engine: Endian engine for byte order (typically little-endian)
//
// Returns:
//   - *FixedEncoder: A new encoder instance ready for encoding
//   - error: errs.ErrUnknownType if code is not a valid element type
func NewFixedEncoder(code format.TypeCode, engine endian.EndianEngine) (*FixedEncoder, error) {
	cand, ok := format.CandidateOf(code)
	if !ok {
		return nil, fmt.Errorf("%w: 0x%02x", errs.ErrUnknownType, uint8(code))
	}

	mask := ^uint64(0)
	if cand.Bits < 64 {
		mask = (uint64(1) << cand.Bits) - 1
	}

	return &FixedEncoder{
		engine: engine,
		buf:    pool.GetPackBuffer(),
		cand:   cand,
		mask:   mask,
		width:  cand.Width(),
	}, nil
}

// Write validates and encodes a single value with amortized buffer growth.
//
// The buffer is pre-grown when near capacity to minimize reallocations when
// Write is called repeatedly. For encoding multiple values, use WriteSlice
// for better performance.
//
// When the value does not fit the element type, Write returns a
// *errs.SelectionError wrapping errs.ErrValueOutOfRange (numeric value
// outside the type's bounds, or a float aimed at an integer slot) or
// errs.ErrNonNumericValue (value is not numeric at all). The error's Index
// field is the zero-based position of the value in the encoded sequence.
// Nothing is written on error.
//
// Panics if Finish() has been called (nil buffer).
//
// Parameters:
//   - v: The value to encode
//
// Returns:
//   - error: nil on success, *errs.SelectionError if the value does not fit
func (e *FixedEncoder) Write(v scalar.Value) error {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	bits, err := e.bits(v, e.count)
	if err != nil {
		return err
	}

	// Amortized growth: pre-grow buffer if near capacity
	e.buf.Grow(e.width)
	e.writeBits(bits)
	e.count++

	return nil
}

// WriteSlice validates and encodes a slice of values with buffer pre-allocation.
//
// This method pre-allocates buffer space for all values (width × len(values)
// bytes) to minimize allocations during bulk encoding. Each value is encoded
// directly into the pre-allocated buffer without temporary allocations.
//
// Validation failure of any element rewinds the buffer to its state before
// the call and returns a *errs.SelectionError whose Index field is the
// zero-based position of the offending value in the full encoded sequence.
//
// For encoding single values, use Write for simpler operation.
//
// Panics if Finish() has been called (nil buffer).
//
// Parameters:
//   - values: Slice of values to encode
//
// Returns:
//   - error: nil on success, *errs.SelectionError if a value does not fit
func (e *FixedEncoder) WriteSlice(values []scalar.Value) error {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	valLen := len(values)
	if valLen == 0 {
		return nil
	}

	// Pre-allocate space for all values, then extend length once
	e.buf.Grow(valLen * e.width)
	startIdx := e.buf.Len()
	e.buf.ExtendOrGrow(valLen * e.width)

	for i, v := range values {
		bits, err := e.bits(v, e.count+i)
		if err != nil {
			e.buf.SetLength(startIdx)
			return err
		}

		offset := startIdx + i*e.width
		e.putBits(e.buf.Slice(offset, offset+e.width), bits)
	}

	e.count += valLen

	return nil
}

// Bytes returns the encoded byte slice containing all written values.
//
// The returned slice is valid until the next call to Write, WriteSlice, or
// Reset. The caller must not modify the returned slice as it references the
// internal buffer.
//
// Each value occupies exactly Width bytes in the output, encoded in the byte
// order specified by the endian engine during construction.
//
// Panics if Finish() has been called (nil buffer).
//
// Returns:
//   - []byte: Encoded byte slice (empty if no values written since last Reset)
func (e *FixedEncoder) Bytes() []byte {
	if e.buf == nil {
		panic("encoder already finished - cannot access bytes after Finish()")
	}

	return e.buf.Bytes()
}

// Len returns the number of encoded values.
func (e *FixedEncoder) Len() int {
	return e.count
}

// Size returns the size in bytes of the encoded values.
//
// Panics if Finish() has been called (nil buffer).
func (e *FixedEncoder) Size() int {
	if e.buf == nil {
		panic("encoder already finished - cannot access size after Finish()")
	}

	return e.buf.Len()
}

// Type returns the element type this encoder encodes into.
func (e *FixedEncoder) Type() format.TypeCode {
	return e.cand.Code
}

// Reset clears the count and buffer, allowing the encoder to be reused for a
// new sequence without returning its buffer to the pool.
func (e *FixedEncoder) Reset() {
	if e.buf == nil {
		panic("encoder already finished - cannot reset after Finish()")
	}

	e.count = 0
	e.buf.Reset()
}

// Finish finalizes the encoding process and returns buffer resources to the pool.
//
// After calling Finish(), the encoder is no longer usable. Any subsequent calls to
// Write(), WriteSlice(), Bytes(), or Size() will panic due to nil buffer.
//
// To encode more data, create a new encoder instance.
//
// This method must be called when the encoding session is complete to ensure buffer
// resources are properly returned to the pool for reuse by other encoders.
func (e *FixedEncoder) Finish() {
	if e.buf != nil {
		pool.PutPackBuffer(e.buf)
		e.buf = nil
	}
	e.count = 0
}

// bits validates v against the element type and returns its encoded bit
// pattern, masked to the element width. index is the position reported in the
// error when v does not fit.
func (e *FixedEncoder) bits(v scalar.Value, index int) (uint64, error) {
	if !v.IsNumeric() {
		return 0, errs.NewSelectionError(errs.ErrNonNumericValue, index, v, e.cand.String())
	}

	if e.cand.Float {
		f := v.Float64()
		if e.cand.Bits == 32 {
			// Finite magnitudes beyond float32 range must not silently
			// overflow to +/-Inf on conversion.
			if !math.IsNaN(f) && !math.IsInf(f, 0) && math.Abs(f) > e.cand.MaxMagnitude {
				return 0, errs.NewSelectionError(errs.ErrValueOutOfRange, index, v, e.cand.String())
			}

			return uint64(math.Float32bits(float32(f))), nil
		}

		return math.Float64bits(f), nil
	}

	switch v.Kind() {
	case scalar.KindInt:
		iv, _ := v.Int64()
		if iv < e.cand.MinInt || (iv >= 0 && uint64(iv) > e.cand.MaxUint) {
			return 0, errs.NewSelectionError(errs.ErrValueOutOfRange, index, v, e.cand.String())
		}

		return uint64(iv) & e.mask, nil

	case scalar.KindUint:
		uv, _ := v.Uint64()
		if uv > e.cand.MaxUint {
			return 0, errs.NewSelectionError(errs.ErrValueOutOfRange, index, v, e.cand.String())
		}

		return uv, nil

	default:
		// Floats never coerce into integer slots, even integral ones.
		return 0, errs.NewSelectionError(errs.ErrValueOutOfRange, index, v, e.cand.String())
	}
}

// writeBits appends a single encoded element to the buffer.
//
// The method assumes the buffer has sufficient capacity (caller must ensure
// this via Grow).
func (e *FixedEncoder) writeBits(bits uint64) {
	bufLen := e.buf.Len()
	e.putBits(e.buf.Slice(bufLen, bufLen+e.width), bits)
	e.buf.SetLength(bufLen + e.width)
}

// putBits writes the low width bytes of bits into bs using the encoder's
// byte order.
func (e *FixedEncoder) putBits(bs []byte, bits uint64) {
	switch e.width {
	case 1:
		bs[0] = byte(bits)
	case 2:
		e.engine.PutUint16(bs, uint16(bits))
	case 4:
		e.engine.PutUint32(bs, uint32(bits))
	default:
		e.engine.PutUint64(bs, bits)
	}
}

// FixedDecoder decodes fixed-width payloads produced by FixedEncoder back
// into scalar values using direct memory operations.
//
// Signed integer elements are sign-extended to int64, unsigned elements widen
// to uint64, and both float widths surface as float64 values. The decoder is
// immutable and stateless, making value semantics ideal: construct once and
// reuse freely across goroutines.
type FixedDecoder struct {
	engine endian.EndianEngine
	cand   format.Candidate
	width  int
}

var _ ValueDecoder = FixedDecoder{}

// NewFixedDecoder creates a fixed-width decoder for the given element type
// using the specified endian engine.
//
// Parameters:
//   - code: Element type the payload was encoded with
//   - engine: Endian engine for byte order (must match encoder's engine)
//
// Returns:
//   - FixedDecoder: A new decoder instance (stateless, can be reused)
//   - error: errs.ErrUnknownType if code is not a valid element type
func NewFixedDecoder(code format.TypeCode, engine endian.EndianEngine) (FixedDecoder, error) {
	cand, ok := format.CandidateOf(code)
	if !ok {
		return FixedDecoder{}, fmt.Errorf("%w: 0x%02x", errs.ErrUnknownType, uint8(code))
	}

	return FixedDecoder{engine: engine, cand: cand, width: cand.Width()}, nil
}

// All decodes all values from the given byte slice.
//
// It returns a sequence of scalar values decoded from the input byte slice.
// The data length must be at least count × element width bytes; otherwise the
// returned sequence is empty.
//
// Parameters:
//   - data: Encoded byte slice from FixedEncoder.Bytes()
//   - count: Expected number of values to decode
//
// Returns:
//   - iter.Seq[scalar.Value]: Iterator yielding decoded values
func (d FixedDecoder) All(data []byte, count int) iter.Seq[scalar.Value] {
	return func(yield func(scalar.Value) bool) {
		if len(data) < count*d.width || count == 0 {
			return
		}

		for i := range count {
			if !yield(d.decode(data[i*d.width:])) {
				return
			}
		}
	}
}

// At retrieves the value at the specified index from the encoded data.
//
// The data should be the byte slice payload produced by a FixedEncoder with
// the same element type. The index is zero-based.
//
// If the index is out of bounds (negative or >= count), or the data is too
// short to hold the element, the method returns false.
//
// Parameters:
//   - data: Encoded byte slice from FixedEncoder.Bytes()
//   - index: Zero-based index of the value to retrieve
//   - count: Total number of values in the encoded data
//
// Returns:
//   - scalar.Value: The value at the specified index
//   - bool: true if the index exists and was successfully decoded, false otherwise
func (d FixedDecoder) At(data []byte, index int, count int) (scalar.Value, bool) {
	if len(data) == 0 || index < 0 || index >= count {
		return scalar.Value{}, false
	}

	start := index * d.width
	if start+d.width > len(data) {
		return scalar.Value{}, false
	}

	return d.decode(data[start : start+d.width]), true
}

// decode reads one element from the front of bs. The caller must ensure bs
// holds at least width bytes.
func (d FixedDecoder) decode(bs []byte) scalar.Value {
	switch d.cand.Code {
	case format.TypeInt8:
		return scalar.Int(int64(int8(bs[0])))
	case format.TypeUint8:
		return scalar.Uint(uint64(bs[0]))
	case format.TypeInt16:
		return scalar.Int(int64(int16(d.engine.Uint16(bs[:2]))))
	case format.TypeUint16:
		return scalar.Uint(uint64(d.engine.Uint16(bs[:2])))
	case format.TypeInt32:
		return scalar.Int(int64(int32(d.engine.Uint32(bs[:4]))))
	case format.TypeUint32:
		return scalar.Uint(uint64(d.engine.Uint32(bs[:4])))
	case format.TypeInt64:
		return scalar.Int(int64(d.engine.Uint64(bs[:8])))
	case format.TypeUint64:
		return scalar.Uint(d.engine.Uint64(bs[:8]))
	case format.TypeFloat32:
		return scalar.Float(float64(math.Float32frombits(d.engine.Uint32(bs[:4]))))
	default:
		return scalar.Float(math.Float64frombits(d.engine.Uint64(bs[:8])))
	}
}
