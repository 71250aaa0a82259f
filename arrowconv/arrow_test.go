package arrowconv

import (
	"math"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/numpack/endian"
	"github.com/arloliu/numpack/errs"
	"github.com/arloliu/numpack/format"
	"github.com/arloliu/numpack/pack"
	"github.com/arloliu/numpack/scalar"
)

func TestTypeMapping_RoundTrip(t *testing.T) {
	for _, cand := range format.Catalog() {
		dt, ok := DataTypeOf(cand.Code)
		require.True(t, ok, "catalog code %s must map to arrow", cand.Code)

		back, ok := TypeCodeOf(dt)
		require.True(t, ok)
		require.Equal(t, cand.Code, back)
		require.Equal(t, int(cand.Bits), dt.(arrow.FixedWidthDataType).BitWidth())
	}

	_, ok := DataTypeOf(format.TypeInvalid)
	require.False(t, ok)
	_, ok = TypeCodeOf(arrow.BinaryTypes.String)
	require.False(t, ok)
}

func TestToArrow_HostOrderSharesPayload(t *testing.T) {
	pb, err := pack.Encode(scalar.FromInts([]int{-5, 0, 300}), format.TypeInt16)
	require.NoError(t, err)

	arr, err := ToArrow(pb, nil)
	require.NoError(t, err)
	defer arr.Release()

	a16, ok := arr.(*array.Int16)
	require.True(t, ok)
	require.Equal(t, 3, a16.Len())
	require.Equal(t, []int16{-5, 0, 300}, a16.Int16Values())
	require.Zero(t, a16.NullN())

	if pb.SameByteOrder() {
		require.Same(t, &pb.Bytes()[0], &a16.Data().Buffers()[1].Bytes()[0])
	}
}

func TestToArrow_ForeignOrderCopies(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	// Pick the byte order opposite to the host so the builder path runs.
	opt := pack.WithBigEndian()
	if endian.IsNativeBigEndian() {
		opt = pack.WithLittleEndian()
	}

	pb, err := pack.Encode(scalar.FromInts([]int{1000, -1000}), format.TypeInt32, opt)
	require.NoError(t, err)
	require.False(t, pb.SameByteOrder())

	arr, err := ToArrow(pb, mem)
	require.NoError(t, err)
	defer arr.Release()

	a32, ok := arr.(*array.Int32)
	require.True(t, ok)
	require.Equal(t, []int32{1000, -1000}, a32.Int32Values())
}

func TestToArrow_FloatSpecials(t *testing.T) {
	pb, err := pack.Encode(scalar.FromFloats([]float64{math.NaN(), math.Inf(1), -0.5}), format.TypeFloat64)
	require.NoError(t, err)

	arr, err := ToArrow(pb, nil)
	require.NoError(t, err)
	defer arr.Release()

	a64 := arr.(*array.Float64)
	require.True(t, math.IsNaN(a64.Value(0)))
	require.True(t, math.IsInf(a64.Value(1), 1))
	require.Equal(t, -0.5, a64.Value(2))
}

func TestToArrow_InvalidBuffer(t *testing.T) {
	_, err := ToArrow(pack.PackedBuffer{}, nil)
	require.ErrorIs(t, err, errs.ErrUnknownType)
}

func TestToArrowAs(t *testing.T) {
	t.Run("explicit type wins over selection", func(t *testing.T) {
		arr, err := ToArrowAs(scalar.FromInts([]int{1, 2, 3}), format.TypeInt32, nil)
		require.NoError(t, err)
		defer arr.Release()

		ints, ok := arr.(*array.Int32)
		require.True(t, ok)
		require.Equal(t, []int32{1, 2, 3}, ints.Int32Values())
	})

	t.Run("violating value fails fast", func(t *testing.T) {
		_, err := ToArrowAs(scalar.FromInts([]int{1, 300}), format.TypeInt8, nil)
		require.ErrorIs(t, err, errs.ErrValueOutOfRange)

		var selErr *errs.SelectionError
		require.ErrorAs(t, err, &selErr)
		require.Equal(t, 1, selErr.Index)
	})

	t.Run("non-catalog code", func(t *testing.T) {
		_, err := ToArrowAs(nil, format.TypeInvalid, nil)
		require.ErrorIs(t, err, errs.ErrUnknownType)
	})
}

func TestResultToArrow(t *testing.T) {
	t.Run("packed result", func(t *testing.T) {
		res, err := pack.Select(scalar.FromInts([]int{1, 2, 3}))
		require.NoError(t, err)

		arr, err := ResultToArrow(res, nil)
		require.NoError(t, err)
		defer arr.Release()

		require.Equal(t, arrow.UINT8, arr.DataType().ID())
		require.Equal(t, 3, arr.Len())
	})

	t.Run("fallback becomes strings", func(t *testing.T) {
		mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
		defer mem.AssertSize(t, 0)

		res, err := pack.Select([]scalar.Value{
			scalar.Int(1),
			scalar.NonNumeric("two"),
			scalar.Float(2.5),
		})
		require.NoError(t, err)
		require.True(t, res.IsFallback())

		arr, err := ResultToArrow(res, mem)
		require.NoError(t, err)
		defer arr.Release()

		as, ok := arr.(*array.String)
		require.True(t, ok)
		require.Equal(t, "1", as.Value(0))
		require.Equal(t, "two", as.Value(1))
		require.Equal(t, "2.5", as.Value(2))
	})
}

func TestToChunked(t *testing.T) {
	t.Run("homogeneous stream", func(t *testing.T) {
		seq, err := pack.Stream(scalar.FromInts([]int{1, 2, 3, 4, 5}), pack.WithChunkSize(2))
		require.NoError(t, err)

		col, err := ToChunked(pack.Collect(seq), nil)
		require.NoError(t, err)
		defer col.Release()

		require.Equal(t, arrow.UINT8, col.DataType().ID())
		require.Equal(t, 5, col.Len())
		require.Len(t, col.Chunks(), 3)

		first := col.Chunks()[0].(*array.Uint8)
		require.Equal(t, []uint8{1, 2}, first.Uint8Values())
	})

	t.Run("fallback window rejected", func(t *testing.T) {
		seq, err := pack.Stream(scalar.FromInts([]int{1, 2, -7, -8}), pack.WithChunkSize(2))
		require.NoError(t, err)

		_, err = ToChunked(pack.Collect(seq), nil)
		require.ErrorIs(t, err, errs.ErrNotPacked)
	})

	t.Run("mixed window types rejected", func(t *testing.T) {
		a, err := pack.Encode(scalar.FromInts([]int{1}), format.TypeUint8)
		require.NoError(t, err)
		b, err := pack.Encode(scalar.FromInts([]int{1}), format.TypeUint16)
		require.NoError(t, err)

		_, err = ToChunked(pack.NewResultSet([]pack.Result{a, b}), nil)
		require.Error(t, err)
		require.NotErrorIs(t, err, errs.ErrNotPacked)
	})

	t.Run("empty set rejected", func(t *testing.T) {
		_, err := ToChunked(pack.NewResultSet(nil), nil)
		require.Error(t, err)
	})
}

func TestFromArrow(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	t.Run("wraps values without copying", func(t *testing.T) {
		bld := array.NewInt32Builder(mem)
		defer bld.Release()
		bld.AppendValues([]int32{10, 20, 30}, nil)

		arr := bld.NewInt32Array()
		defer arr.Release()

		pb, err := FromArrow(arr)
		require.NoError(t, err)
		require.Equal(t, format.TypeInt32, pb.TypeCode())
		require.Equal(t, 3, pb.Len())
		require.True(t, pb.SameByteOrder())

		vs, ok := pb.Int32s()
		require.True(t, ok)
		require.Equal(t, []int32{10, 20, 30}, vs)
		require.Same(t, &arr.Data().Buffers()[1].Bytes()[0], &pb.Bytes()[0])
	})

	t.Run("honors slicing offsets", func(t *testing.T) {
		bld := array.NewUint16Builder(mem)
		defer bld.Release()
		bld.AppendValues([]uint16{1, 2, 3, 4, 5}, nil)

		arr := bld.NewUint16Array()
		defer arr.Release()

		sliced := array.NewSlice(arr, 1, 4)
		defer sliced.Release()

		pb, err := FromArrow(sliced)
		require.NoError(t, err)
		require.Equal(t, 3, pb.Len())

		vs, ok := pb.Uint16s()
		require.True(t, ok)
		require.Equal(t, []uint16{2, 3, 4}, vs)
	})

	t.Run("rejects nulls", func(t *testing.T) {
		bld := array.NewFloat64Builder(mem)
		defer bld.Release()
		bld.Append(1.5)
		bld.AppendNull()

		arr := bld.NewFloat64Array()
		defer arr.Release()

		_, err := FromArrow(arr)
		require.Error(t, err)
	})

	t.Run("rejects non-primitive types", func(t *testing.T) {
		bld := array.NewStringBuilder(mem)
		defer bld.Release()
		bld.Append("x")

		arr := bld.NewStringArray()
		defer arr.Release()

		_, err := FromArrow(arr)
		require.ErrorIs(t, err, errs.ErrUnknownType)
	})

	t.Run("empty array", func(t *testing.T) {
		bld := array.NewUint8Builder(mem)
		defer bld.Release()

		arr := bld.NewUint8Array()
		defer arr.Release()

		pb, err := FromArrow(arr)
		require.NoError(t, err)
		require.Equal(t, 0, pb.Len())
	})
}

func TestArrowRoundTrip(t *testing.T) {
	// Encode in host order so both directions take the zero-copy path.
	opt := pack.WithLittleEndian()
	if endian.IsNativeBigEndian() {
		opt = pack.WithBigEndian()
	}

	pb, err := pack.Encode(scalar.FromFloats([]float64{0.5, 1.5, 2.5}), format.TypeFloat32, opt)
	require.NoError(t, err)

	arr, err := ToArrow(pb, nil)
	require.NoError(t, err)
	defer arr.Release()

	back, err := FromArrow(arr)
	require.NoError(t, err)
	require.Equal(t, pb.TypeCode(), back.TypeCode())
	require.Equal(t, pb.Bytes(), back.Bytes())
	require.Equal(t, pb.Fingerprint(), back.Fingerprint())
}
