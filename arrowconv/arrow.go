package arrowconv

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/arloliu/numpack/endian"
	"github.com/arloliu/numpack/errs"
	"github.com/arloliu/numpack/format"
	"github.com/arloliu/numpack/pack"
	"github.com/arloliu/numpack/scalar"
)

// ToArrow converts a packed buffer into an Arrow array of the matching
// primitive type.
//
// When the buffer byte order matches the host, the array wraps the packed
// payload directly with no copy; the array then aliases the buffer's
// memory, and both must be treated as immutable. A buffer packed for the
// foreign byte order is decoded element by element through the allocator
// instead.
//
// The caller owns the returned array and must Release it.
//
// Parameters:
//   - pb: The packed buffer to convert
//   - mem: Allocator for the copying path; nil selects the default
//
// Returns:
//   - arrow.Array: The converted array, never carrying nulls
//   - error: ErrUnknownType when the buffer holds no valid element type
func ToArrow(pb pack.PackedBuffer, mem memory.Allocator) (arrow.Array, error) {
	dt, ok := DataTypeOf(pb.TypeCode())
	if !ok {
		return nil, fmt.Errorf("%w: 0x%02x", errs.ErrUnknownType, uint8(pb.TypeCode()))
	}

	if pb.SameByteOrder() {
		buf := memory.NewBufferBytes(pb.Bytes())
		data := array.NewData(dt, pb.Len(), []*memory.Buffer{nil, buf}, nil, 0, 0)
		defer data.Release()

		return array.MakeFromData(data), nil
	}

	if mem == nil {
		mem = memory.DefaultAllocator
	}

	return buildArray(pb, dt, mem), nil
}

// ToArrowAs packs values as an explicit catalog type and converts the
// result, skipping selection. Packing fails fast on the first value the
// type cannot hold, so the array never contains truncated elements.
//
// Parameters:
//   - values: The sequence to pack
//   - code: The catalog element type to pack as
//   - mem: Allocator for the copying path; nil selects the default
//   - opts: Byte order options forwarded to pack.Encode
//
// Returns:
//   - arrow.Array: The packed sequence as an Arrow array
//   - error: ErrUnknownType for non-catalog codes, or the first packing
//     violation
func ToArrowAs(values []scalar.Value, code format.TypeCode, mem memory.Allocator, opts ...pack.Option) (arrow.Array, error) {
	pb, err := pack.Encode(values, code, opts...)
	if err != nil {
		return nil, err
	}

	return ToArrow(pb, mem)
}

// buildArray decodes a foreign-order buffer through the matching typed
// builder. The builder type follows from the data type, so the switch is
// exhaustive over the catalog.
func buildArray(pb pack.PackedBuffer, dt arrow.DataType, mem memory.Allocator) arrow.Array {
	bld := array.NewBuilder(mem, dt)
	defer bld.Release()

	bld.Reserve(pb.Len())

	switch b := bld.(type) {
	case *array.Int8Builder:
		for v := range pb.All() {
			iv, _ := v.Int64()
			b.Append(int8(iv))
		}
	case *array.Uint8Builder:
		for v := range pb.All() {
			uv, _ := v.Uint64()
			b.Append(uint8(uv))
		}
	case *array.Int16Builder:
		for v := range pb.All() {
			iv, _ := v.Int64()
			b.Append(int16(iv))
		}
	case *array.Uint16Builder:
		for v := range pb.All() {
			uv, _ := v.Uint64()
			b.Append(uint16(uv))
		}
	case *array.Int32Builder:
		for v := range pb.All() {
			iv, _ := v.Int64()
			b.Append(int32(iv))
		}
	case *array.Uint32Builder:
		for v := range pb.All() {
			uv, _ := v.Uint64()
			b.Append(uint32(uv))
		}
	case *array.Int64Builder:
		for v := range pb.All() {
			iv, _ := v.Int64()
			b.Append(iv)
		}
	case *array.Uint64Builder:
		for v := range pb.All() {
			uv, _ := v.Uint64()
			b.Append(uv)
		}
	case *array.Float32Builder:
		for v := range pb.All() {
			b.Append(float32(v.Float64()))
		}
	case *array.Float64Builder:
		for v := range pb.All() {
			b.Append(v.Float64())
		}
	}

	return bld.NewArray()
}

// ResultToArrow converts any selection result into an Arrow array.
//
// Packed results become primitive arrays via ToArrow. Fallback results
// have no single numeric type, so they become string arrays holding each
// element's decimal or original textual form.
//
// The caller owns the returned array and must Release it.
func ResultToArrow(res pack.Result, mem memory.Allocator) (arrow.Array, error) {
	if pb, ok := res.AsPacked(); ok {
		return ToArrow(pb, mem)
	}

	if mem == nil {
		mem = memory.DefaultAllocator
	}

	fb, ok := res.AsFallback()
	if !ok {
		return nil, fmt.Errorf("result is neither packed nor fallback")
	}

	bld := array.NewStringBuilder(mem)
	defer bld.Release()

	bld.Reserve(fb.Len())
	for _, v := range fb.Values() {
		bld.Append(v.String())
	}

	return bld.NewArray(), nil
}

// ToChunked converts a homogeneous result set into an Arrow chunked array,
// one chunk per window.
//
// Every window must have packed as one shared element type; a set holding
// any fallback window, mixed types, or no windows at all cannot be
// represented as a single chunked column and is rejected.
//
// The caller owns the returned chunked array and must Release it.
//
// Parameters:
//   - set: The windows to convert, in stream order
//   - mem: Allocator for copying conversions; nil selects the default
//
// Returns:
//   - *arrow.Chunked: One chunk per window, sharing one data type
//   - error: ErrNotPacked when a window fell back, or a mixed-type or
//     empty-set rejection
func ToChunked(set pack.ResultSet, mem memory.Allocator) (*arrow.Chunked, error) {
	if len(set.Results()) == 0 {
		return nil, fmt.Errorf("empty result set has no data type")
	}

	code, ok := set.Homogeneous()
	if !ok {
		for i, res := range set.Results() {
			if res.IsFallback() {
				return nil, fmt.Errorf("%w: window %d fell back", errs.ErrNotPacked, i)
			}
		}

		return nil, fmt.Errorf("windows pack as mixed types; a chunked column needs one")
	}

	dt, _ := DataTypeOf(code)

	chunks := make([]arrow.Array, 0, len(set.Results()))
	defer func() {
		for _, chunk := range chunks {
			chunk.Release()
		}
	}()

	for _, res := range set.Results() {
		pb, _ := res.AsPacked()

		arr, err := ToArrow(pb, mem)
		if err != nil {
			return nil, err
		}

		chunks = append(chunks, arr)
	}

	// NewChunked retains the chunks; the deferred releases drop only our
	// references.
	return arrow.NewChunked(dt, chunks), nil
}

// FromArrow wraps the values of an Arrow primitive array as a packed
// buffer without copying.
//
// The buffer aliases the array's value memory, honoring any slicing
// offset; retain the array for as long as the buffer is used. Arrays with
// nulls have no packed representation and are rejected, as are
// non-primitive data types.
//
// Parameters:
//   - arr: The array to wrap
//
// Returns:
//   - pack.PackedBuffer: A host-order buffer over the array values
//   - error: ErrUnknownType for unmappable data types, or a null-value
//     rejection
func FromArrow(arr arrow.Array) (pack.PackedBuffer, error) {
	code, ok := TypeCodeOf(arr.DataType())
	if !ok {
		return pack.PackedBuffer{}, fmt.Errorf("%w: arrow %s has no catalog equivalent",
			errs.ErrUnknownType, arr.DataType())
	}

	if arr.NullN() > 0 {
		return pack.PackedBuffer{}, fmt.Errorf("array carries %d nulls, which a packed buffer cannot represent",
			arr.NullN())
	}

	order := pack.WithLittleEndian()
	if endian.IsNativeBigEndian() {
		order = pack.WithBigEndian()
	}

	data := arr.Data()
	width := code.Size()

	var payload []byte
	if buf := data.Buffers()[1]; buf != nil {
		payload = buf.Bytes()[data.Offset()*width : (data.Offset()+data.Len())*width]
	}

	return pack.Wrap(code, payload, order)
}
