// Package compress provides compression and decompression codecs for packed payloads.
//
// Compression is applied at the container level, after selection and packing:
// the packer first narrows every element to the smallest fitting type, then a
// codec from this package optionally squeezes the resulting payload for
// storage or transport.
//
// # Overview
//
// Narrowing and compressing are complementary:
//
//  1. **Packing**: Picks the narrowest element type, cutting size 2-8x losslessly
//  2. **Compression**: Exploits residual byte-level redundancy in the payload
//
// The compress package implements the second stage, supporting multiple algorithms:
//   - None: No compression (default; keeps payloads zero-copy viewable)
//   - Zstd: Excellent compression ratio, moderate speed
//   - S2: Balanced compression and speed
//   - LZ4: Fast decompression, moderate compression
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Choosing an Algorithm
//
// **NoOp** (format.CompressionNone)
//
// Use when:
//   - The payload stays in memory and is read through zero-copy typed views
//   - Narrowing already achieved the required footprint
//   - Data is incompressible (high-entropy floats)
//
// **Zstandard** (format.CompressionZstd)
//
// Characteristics:
//   - Compression: Excellent (typically 2-4x on top of narrowing)
//   - Speed: Moderate (compression: ~400 MB/s, decompression: ~1000 MB/s)
//
// Use when:
//   - Storage cost is the primary concern (cold storage, archival)
//   - Network bandwidth is limited
//
// Built with cgo, Zstd uses the libzstd binding (valyala/gozstd); without
// cgo it falls back to the pure-Go klauspost/compress/zstd implementation.
// Both produce interoperable frames.
//
// **S2** (format.CompressionS2)
//
// Characteristics:
//   - Compression: Good (typically 1.5-2.5x on top of narrowing)
//   - Speed: Fast (compression: ~1000 MB/s, decompression: ~2000 MB/s)
//
// Use when:
//   - Need balance between compression and speed
//   - Containers travel through a hot ingestion path
//
// **LZ4** (format.CompressionLZ4)
//
// Characteristics:
//   - Compression: Moderate (typically 1.3-2x on top of narrowing)
//   - Speed: Very fast decompression (~3000 MB/s)
//
// Use when:
//   - Restore latency is critical
//   - Containers are written once and read many times
//
// # Typical Usage
//
// Codecs are usually exercised indirectly through pack.Compact and
// pack.Restore, which record the algorithm in the container header:
//
//	codec, err := compress.GetCodec(format.CompressionS2)
//	if err != nil {
//	    return err
//	}
//	compressed, err := codec.Compress(payload)
//	if err != nil {
//	    return err
//	}
//	original, err := codec.Decompress(compressed)
//
// All codecs treat an empty input as an empty output, so zero-element
// payloads round-trip without special casing.
package compress
