package compress

// ZstdCompressor provides Zstandard compression for packed payloads.
//
// This compressor is designed for scenarios where compression ratio is more
// important than compression speed, making it ideal for:
//   - Cold storage and archival of packed containers
//   - Network transmission where bandwidth is limited
//   - Wide-policy payloads (64-bit elements) with low entropy per element
//
// The implementation is selected at build time: with cgo available the
// libzstd binding (valyala/gozstd) is used, otherwise the pure-Go
// klauspost/compress/zstd implementation.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Returns:
//   - ZstdCompressor: New Zstd compressor instance
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(data)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
