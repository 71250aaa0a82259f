// Package arrowconv bridges packed buffers and Apache Arrow arrays.
//
// The catalog's ten element types map one-to-one onto Arrow's primitive
// types, so conversions are type-exact in both directions and copy nothing
// when byte orders line up: ToArrow wraps a host-order payload as an array
// buffer, and FromArrow wraps an array's value buffer as a PackedBuffer.
// Foreign-order buffers fall back to an element-by-element copy through an
// allocator.
//
// Stream output converts as a whole via ToChunked, which turns a
// homogeneous ResultSet into one chunked column:
//
//	seq, _ := pack.Stream(values, pack.WithChunkSize(4096))
//	set := pack.Collect(seq)
//	col, err := arrowconv.ToChunked(set, nil)
//	if err != nil {
//	    return err
//	}
//	defer col.Release()
//
// Fallback windows have no Arrow numeric form; ResultToArrow renders them
// as string arrays, and ToChunked rejects sets that contain them.
package arrowconv
