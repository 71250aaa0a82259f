// Package numpack packs sequences of numeric values into the narrowest
// fixed-width element type that can hold them.
//
// Given a sequence of signed integers, unsigned integers, and floats, numpack
// scans the observed value range, selects an element type from the ten-type
// catalog (int8 through float64), and encodes the sequence into a contiguous
// binary buffer. Sequences that no type can hold, because they contain
// non-numeric values or because options restrict the candidate set, degrade
// to a fallback result that preserves the original values.
//
// # Core Features
//
//   - Narrowest-type selection over int8..uint64, float32, and float64
//   - Three selection policies (Smallest, Balanced, Wide) plus signedness,
//     type-range, and float restrictions
//   - Streaming selection that freezes the element type on the first packed
//     window and degrades violating windows to per-window fallbacks
//   - Sampled scans that bound inspection cost on large inputs
//   - A self-describing container format with optional compression
//     (Zstd, S2, LZ4) and xxHash64 payload checksums
//   - Adapters for Apache Arrow arrays (arrowconv) and gonum vectors (vecconv)
//
// # Basic Usage
//
// Selecting and packing a slice of values:
//
//	import "github.com/arloliu/numpack"
//
//	res, _ := numpack.Select(numpack.Values(1, 2, 300))
//	if pb, ok := res.AsPacked(); ok {
//	    fmt.Println(pb.TypeCode()) // uint16
//	    fmt.Println(len(pb.Bytes())) // 6
//	}
//
// Streaming a large sequence window by window:
//
//	seq, _ := numpack.Stream(values, pack.WithChunkSize(4096))
//	for res := range seq {
//	    if pb, ok := res.AsPacked(); ok {
//	        store(pb.TypeCode(), pb.Bytes())
//	    }
//	}
//
// Serializing a packed buffer into a checksummed, compressed container:
//
//	data, _ := numpack.Compact(pb, format.CompressionZstd)
//	back, _ := numpack.Restore(data)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the pack
// package, simplifying the most common use cases. For fine-grained control,
// use the pack package directly. The arrowconv and vecconv packages adapt
// results to Apache Arrow arrays and gonum dense vectors.
package numpack

import (
	"iter"

	"github.com/arloliu/numpack/format"
	"github.com/arloliu/numpack/pack"
	"github.com/arloliu/numpack/scalar"
)

var exactOptions = []pack.Option{
	pack.WithFloatDowngrade(false),
	pack.WithStrict(true),
}

// Select chooses the narrowest element type that holds every value and packs
// the sequence into a binary buffer.
//
// This is the most flexible entry point, allowing full control over the
// selection through options. When no candidate type fits, the result is a
// fallback carrying the original values; use pack.WithStrict to turn that
// into an error instead.
//
// Parameters:
//   - values: The sequence to pack (see Values and the scalar package)
//   - opts: Optional configuration functions (see pack.Option)
//
// Returns:
//   - pack.Result: A packed buffer or a fallback sequence.
//   - error: An error if the configuration is invalid or strict mode rejects
//     the sequence.
//
// Available options:
//   - pack.WithPolicy(pack.PolicySmallest|PolicyBalanced|PolicyWide)
//   - pack.WithMinType(...) / pack.WithMaxType(...) / pack.WithTypeRange(...)
//   - pack.WithPreferSigned(true|false)
//   - pack.WithNoFloat(true|false)
//   - pack.WithFloatDowngrade(true|false)
//   - pack.WithStrict(true|false)
//   - pack.WithSampleSize(n)
//   - pack.WithLittleEndian() / pack.WithBigEndian()
//
// Example:
//
//	res, err := numpack.Select(values,
//	    pack.WithPolicy(pack.PolicyWide),
//	    pack.WithNoFloat(true),
//	)
func Select(values []scalar.Value, opts ...pack.Option) (pack.Result, error) {
	return pack.Select(values, opts...)
}

// SelectExact packs with hard guarantees: float data keeps float64 width,
// and numeric sequences that no candidate covers return an error instead of
// a fallback. Non-numeric data still falls back; strictness concerns type
// fitting, not value kinds.
//
// Use this when:
//   - Silent precision loss from a float32 downgrade is unacceptable
//   - A fallback under pack.WithNoFloat or pack.WithMaxType would hide a
//     data quality problem
//   - You want the offending element reported in the error
//
// The exact settings are applied after the caller's options, so they cannot
// be overridden.
//
// Parameters:
//   - values: The sequence to pack
//   - opts: Optional configuration functions (see pack.Option)
//
// Returns:
//   - pack.Result: The packed buffer.
//   - error: A selection error naming the first offending element when the
//     sequence cannot pack.
//
// Example:
//
//	res, err := numpack.SelectExact(numpack.Values(1.5, 2.5))
//	if err != nil {
//	    log.Fatal(err)
//	}
func SelectExact(values []scalar.Value, opts ...pack.Option) (pack.Result, error) {
	return pack.Select(values, append(opts, exactOptions...)...)
}

// Analyze reports which element type Select would choose, and why, without
// packing anything.
//
// Analysis is observational: strict mode is ignored, and the scan always
// reports the true extremes of the inspected window. pack.WithSampleSize
// still bounds how much is inspected.
//
// Parameters:
//   - values: The sequence to analyze
//   - opts: Optional configuration functions (see pack.Option)
//
// Returns:
//   - pack.Analysis: The chosen type, count, extremes, and the reason when
//     no type fits.
//   - error: An error if the configuration is invalid.
//
// Example:
//
//	info, _ := numpack.Analyze(numpack.Values(3, -7, 250))
//	fmt.Println(info.TypeCode) // int16
func Analyze(values []scalar.Value, opts ...pack.Option) (pack.Analysis, error) {
	return pack.Analyze(values, opts...)
}

// ReportMemory compares the packed footprint of a sequence against holding
// it as a naive value slice.
//
// Parameters:
//   - values: The sequence to measure
//   - opts: Optional configuration functions (see pack.Option)
//
// Returns:
//   - pack.MemoryReport: Naive and packed byte counts plus the savings ratio.
//   - error: An error if the configuration is invalid or strict mode rejects
//     the sequence.
//
// Example:
//
//	report, _ := numpack.ReportMemory(values)
//	fmt.Printf("saves %.0f%%\n", report.SavingsPercent())
func ReportMemory(values []scalar.Value, opts ...pack.Option) (pack.MemoryReport, error) {
	return pack.ReportMemory(values, opts...)
}

// Stream packs a sequence window by window, yielding one result per window.
//
// The first window that packs freezes the element type for the rest of the
// stream; windows that violate the frozen type degrade to fallbacks rather
// than widening it. Use pack.WithChunkSize to control the window length.
//
// Parameters:
//   - values: The sequence to pack
//   - opts: Optional configuration functions (see pack.Option)
//
// Returns:
//   - iter.Seq[pack.Result]: One result per window, in input order.
//   - error: An error if the configuration is invalid.
//
// Example:
//
//	seq, err := numpack.Stream(values, pack.WithChunkSize(4096))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for res := range seq {
//	    // ...
//	}
func Stream(values []scalar.Value, opts ...pack.Option) (iter.Seq[pack.Result], error) {
	return pack.Stream(values, opts...)
}

// StreamSeq is Stream over an arbitrary value sequence instead of a slice.
//
// Use this when values arrive from a generator, a decoder, or another
// iterator and never exist as one slice. Windows are staged in pooled
// buffers, so the input sequence is consumed incrementally.
//
// Parameters:
//   - seq: The value sequence to pack
//   - opts: Optional configuration functions (see pack.Option)
//
// Returns:
//   - iter.Seq[pack.Result]: One result per window, in input order.
//   - error: An error if the configuration is invalid.
func StreamSeq(seq iter.Seq[scalar.Value], opts ...pack.Option) (iter.Seq[pack.Result], error) {
	return pack.StreamSeq(seq, opts...)
}

// Collect drains a stream into a ResultSet for counting, random access, and
// cross-window iteration.
//
// Parameters:
//   - seq: The result sequence from Stream or StreamSeq
//
// Returns:
//   - pack.ResultSet: The collected windows.
//
// Example:
//
//	seq, _ := numpack.Stream(values)
//	set := numpack.Collect(seq)
//	fmt.Println(set.PackedCount(), set.FallbackCount())
func Collect(seq iter.Seq[pack.Result]) pack.ResultSet {
	return pack.Collect(seq)
}

// Compact serializes a packed buffer into a self-describing container with
// an optional compression codec and an xxHash64 payload checksum.
//
// Parameters:
//   - pb: The packed buffer to serialize
//   - compression: format.CompressionNone, CompressionZstd, CompressionS2,
//     or CompressionLZ4
//
// Returns:
//   - []byte: The container bytes (24-byte header plus stored payload).
//   - error: An error if the codec is unknown or the buffer is invalid.
//
// Example:
//
//	data, err := numpack.Compact(pb, format.CompressionZstd)
func Compact(pb pack.PackedBuffer, compression format.CompressionType) ([]byte, error) {
	return pack.Compact(pb, compression)
}

// Restore parses a container produced by Compact back into a packed buffer.
//
// The header is validated and the payload checksum is verified before any
// decompression runs, so corrupted input fails before it reaches a codec.
//
// Parameters:
//   - data: The container bytes
//
// Returns:
//   - pack.PackedBuffer: The restored buffer.
//   - error: An error describing the first validation failure.
//
// Example:
//
//	pb, err := numpack.Restore(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(pb.TypeCode(), pb.Len())
func Restore(data []byte) (pack.PackedBuffer, error) {
	return pack.Restore(data)
}

// Values converts Go values to a scalar sequence ready for Select.
//
// Each argument is classified by kind: signed integers, unsigned integers,
// and floats become numeric scalars; everything else becomes a non-numeric
// scalar that forces a fallback. For typed slices, the scalar package
// provides cheaper bulk constructors (scalar.FromInts, scalar.FromUints,
// scalar.FromFloats).
//
// Example:
//
//	res, _ := numpack.Select(numpack.Values(1, 2, 300))
func Values(vals ...any) []scalar.Value {
	return scalar.FromAny(vals)
}
