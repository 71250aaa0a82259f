package section

import (
	"github.com/arloliu/numpack/errs"
	"github.com/arloliu/numpack/format"
)

// CompactHeader represents the fixed-size header at the start of a compact container.
//
// The header records everything needed to restore the payload that follows it:
// element type, element count, stored payload size, compression codec, byte
// order and an xxHash64 checksum of the stored payload bytes.
type CompactHeader struct {
	// Checksum is the xxHash64 digest of the stored payload bytes (after
	// compression when a codec is set).
	Checksum uint64 // byte offset 16-23
	// Count is the number of encoded elements in the payload, max 2^32-1.
	Count uint32 // byte offset 4-7
	// PayloadSize is the size in bytes of the stored payload.
	PayloadSize uint32 // byte offset 8-11
	// Flag is a packed field for the endianness flag and magic number.
	Flag CompactFlag // byte offset 0-1
	// TypeCode is the element type of the packed payload.
	TypeCode format.TypeCode // byte offset 2
	// Compression is the codec applied to the payload.
	Compression format.CompressionType // byte offset 3
}

var validCompressions = map[format.CompressionType]struct{}{
	format.CompressionNone: {},
	format.CompressionZstd: {},
	format.CompressionS2:   {},
	format.CompressionLZ4:  {},
}

// NewCompactHeader creates a new CompactHeader for the given element type and codec.
// The count, payload size and checksum are set when the container is assembled.
func NewCompactHeader(code format.TypeCode, compression format.CompressionType) *CompactHeader {
	return &CompactHeader{
		Flag:        NewCompactFlag(),
		TypeCode:    code,
		Compression: compression,
	}
}

// Parse parses the header from a byte slice.
//
// The Options field is always stored little-endian so the endianness flag can
// be read before the byte order of the remaining fields is known.
//
// Parameters:
//   - data: Byte slice containing the header (must be exactly 24 bytes)
//
// Returns:
//   - error: ErrInvalidHeaderSize if data is not 24 bytes, or validation errors
func (h *CompactHeader) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	h.Flag.Options = uint16(data[0]) | (uint16(data[1]) << 8)
	h.TypeCode = format.TypeCode(data[2])
	h.Compression = format.CompressionType(data[3])

	engine := h.Flag.GetEndianEngine()

	h.Count = engine.Uint32(data[4:8])
	h.PayloadSize = engine.Uint32(data[8:12])
	reserved := engine.Uint32(data[12:16])
	h.Checksum = engine.Uint64(data[16:24])

	if reserved != 0 {
		return errs.ErrInvalidHeaderFlags
	}

	return h.Validate()
}

// Bytes serializes the CompactHeader into a byte slice.
func (h *CompactHeader) Bytes() []byte {
	b := make([]byte, HeaderSize)

	// Options stays little-endian regardless of the payload byte order
	b[0] = byte(h.Flag.Options)
	b[1] = byte(h.Flag.Options >> 8)
	b[2] = uint8(h.TypeCode)
	b[3] = uint8(h.Compression)

	engine := h.Flag.GetEndianEngine()

	engine.PutUint32(b[4:8], h.Count)
	engine.PutUint32(b[8:12], h.PayloadSize)
	engine.PutUint32(b[12:16], 0)
	engine.PutUint64(b[16:24], h.Checksum)

	return b
}

// Validate checks if the header contains valid values.
func (h *CompactHeader) Validate() error {
	if err := h.Flag.Validate(); err != nil {
		return err
	}

	if !h.TypeCode.IsValid() {
		return errs.ErrUnknownType
	}

	if _, ok := validCompressions[h.Compression]; !ok {
		return errs.ErrInvalidHeaderFlags
	}

	return nil
}

// ParseCompactHeader parses a CompactHeader from the front of a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be at least 24 bytes)
//
// Returns:
//   - CompactHeader: Parsed header struct
//   - error: ErrInvalidHeaderSize or validation errors
func ParseCompactHeader(data []byte) (CompactHeader, error) {
	if len(data) < HeaderSize {
		return CompactHeader{}, errs.ErrInvalidHeaderSize
	}

	h := CompactHeader{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return CompactHeader{}, err
	}

	return h, nil
}
