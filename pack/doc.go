// Package pack implements the numeric narrowing engine: it scans a scalar
// sequence, selects the narrowest catalog type whose range covers every
// element under the configured policy, and materializes the sequence as a
// densely packed fixed-width buffer.
//
// # Selection Pipeline
//
// Select runs three stages. The range scanner classifies the sequence as
// integer, float, or non-numeric and tracks the observed extremes. The
// selector walks the candidate catalog in policy order, restricted to the
// configured type bounds, and picks the first candidate whose range covers
// the observation. The packer then encodes every element at that
// candidate's width:
//
//	values := scalar.FromInts([]int{0, 1, 2, 255})
//	res, err := pack.Select(values)
//	if err != nil {
//	    return err
//	}
//	if pb, ok := res.AsPacked(); ok {
//	    fmt.Println(pb.TypeCode(), pb.Size()) // uint8 4
//	}
//
// # Policies
//
// PolicySmallest (default) walks candidates ascending by width, unsigned
// before signed at equal width, so non-negative sequences pack unsigned.
// WithPreferSigned flips that tie-break. PolicyBalanced walks signed before
// unsigned. PolicyWide walks integer candidates widest first, for
// sequences expected to grow. Floats always come after integers, and a
// sequence containing a negative value only considers signed candidates.
//
// # Fallbacks and Errors
//
// Sequences that cannot pack come back as a Fallback wrapping the original
// values, not as an error: non-numeric elements, or numeric data outside
// every candidate under the configured bounds. Callers branch on the
// Result tag. WithStrict promotes only the numeric no-fitting-type case to
// a SelectionError; non-numeric data always falls back.
//
// # Streaming
//
// Stream windows a long sequence and packs each window independently until
// one selects a type, which is then frozen for the rest of the stream;
// later windows that violate it degrade to per-window fallbacks. The
// ResultSet collector provides globally indexed access over the windows.
//
// # Containers
//
// Compact wraps a packed buffer in a self-describing 24-byte header with
// an optional compression codec and an xxHash64 checksum; Restore rebuilds
// the buffer without external context. See the section and compress
// packages for the wire details.
package pack
