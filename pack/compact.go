package pack

import (
	"fmt"
	"math"

	"github.com/arloliu/numpack/compress"
	"github.com/arloliu/numpack/endian"
	"github.com/arloliu/numpack/errs"
	"github.com/arloliu/numpack/format"
	"github.com/arloliu/numpack/internal/hash"
	"github.com/arloliu/numpack/section"
)

// Compact serializes a PackedBuffer into a self-describing container: a
// fixed 24-byte header followed by the payload, optionally compressed.
//
// The header records the element type, count, byte order, codec, and an
// xxHash64 checksum of the stored payload, so Restore needs no external
// context. Compact transforms bytes in memory; storing or shipping them is
// the caller's business.
//
// Parameters:
//   - pb: The packed buffer to serialize
//   - compression: CompressionNone, CompressionZstd, CompressionS2, or
//     CompressionLZ4
//
// Returns:
//   - []byte: The container bytes
//   - error: Unknown codec, invalid buffer, or compression failure
func Compact(pb PackedBuffer, compression format.CompressionType) ([]byte, error) {
	if !pb.code.IsValid() {
		return nil, fmt.Errorf("%w: 0x%02x", errs.ErrUnknownType, uint8(pb.code))
	}

	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, err
	}

	if uint64(pb.count) > math.MaxUint32 {
		return nil, fmt.Errorf("element count %d exceeds the container limit", pb.count)
	}

	body, err := codec.Compress(pb.payload)
	if err != nil {
		return nil, fmt.Errorf("failed to compress payload: %w", err)
	}
	if uint64(len(body)) > math.MaxUint32 {
		return nil, fmt.Errorf("compressed payload of %d bytes exceeds the container limit", len(body))
	}

	hdr := section.NewCompactHeader(pb.code, compression)
	if pb.engine == endian.GetBigEndianEngine() {
		hdr.Flag.WithBigEndian()
	}
	hdr.Count = uint32(pb.count)
	hdr.PayloadSize = uint32(len(body))
	hdr.Checksum = hash.Sum64(body)

	out := make([]byte, 0, section.HeaderSize+len(body))
	out = append(out, hdr.Bytes()...)
	out = append(out, body...)

	return out, nil
}

// Restore rebuilds a PackedBuffer from container bytes produced by Compact.
//
// The stored payload is verified against the header checksum before it is
// decompressed, and the decompressed size must match the recorded element
// count exactly. With CompressionNone the restored buffer aliases data
// rather than copying it; treat data as immutable afterwards.
//
// Parameters:
//   - data: Container bytes (header plus payload)
//
// Returns:
//   - PackedBuffer: The restored buffer
//   - error: Header parse or validation failure, ErrPayloadTruncated on a
//     size mismatch, ErrHashMismatch on checksum failure, or a
//     decompression failure
func Restore(data []byte) (PackedBuffer, error) {
	hdr, err := section.ParseCompactHeader(data)
	if err != nil {
		return PackedBuffer{}, err
	}

	body := data[section.PayloadOffset:]
	if len(body) != int(hdr.PayloadSize) {
		return PackedBuffer{}, fmt.Errorf("%w: header records %d payload bytes, container carries %d",
			errs.ErrPayloadTruncated, hdr.PayloadSize, len(body))
	}

	if hash.Sum64(body) != hdr.Checksum {
		return PackedBuffer{}, fmt.Errorf("%w: stored payload does not match the header checksum", errs.ErrHashMismatch)
	}

	codec, err := compress.GetCodec(hdr.Compression)
	if err != nil {
		return PackedBuffer{}, err
	}

	payload, err := codec.Decompress(body)
	if err != nil {
		return PackedBuffer{}, fmt.Errorf("failed to decompress payload: %w", err)
	}

	count := int(hdr.Count)
	if len(payload) != count*hdr.TypeCode.Size() {
		return PackedBuffer{}, fmt.Errorf("%w: %s payload of %d bytes cannot hold %d elements",
			errs.ErrPayloadTruncated, hdr.TypeCode, len(payload), count)
	}

	return newPackedBuffer(hdr.TypeCode, count, payload, hdr.Flag.GetEndianEngine()), nil
}
