package section

import (
	"github.com/arloliu/numpack/endian"
	"github.com/arloliu/numpack/errs"
)

// CompactFlag represents the packed options field in the compact container header.
type CompactFlag struct {
	// Options is a packed field for various options.
	// Bit 0 is the endianness flag, 0 means little-endian, 1 means big-endian.
	// It governs the remaining header fields and the payload.
	// Bits 1-3 are reserved for future use, must be set to 0.
	// Bits 4-15 are the magic number identifying the container format:
	//   - 0xA9C0 (0b1010_1001_1100_0000): Compact container format v1
	Options uint16
}

// NewCompactFlag creates a new CompactFlag with default settings (little-endian).
func NewCompactFlag() CompactFlag {
	flag := CompactFlag{Options: MagicCompactV1Opt}
	flag.WithLittleEndian()

	return flag
}

// IsLittleEndian returns whether the header fields and payload are little-endian.
func (f CompactFlag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether the header fields and payload are big-endian.
func (f CompactFlag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *CompactFlag) WithLittleEndian() {
	f.Options &= ^uint16(EndiannessMask)
}

// WithBigEndian sets big-endian byte order.
func (f *CompactFlag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetMagicNumber returns the magic number from the Options field.
func (f CompactFlag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// IsValidMagicNumber checks if the magic number is valid.
func (f CompactFlag) IsValidMagicNumber() bool {
	return f.GetMagicNumber() == MagicCompactV1Opt
}

// Validate checks if the flag contains valid values.
func (f CompactFlag) Validate() error {
	if !f.IsValidMagicNumber() {
		return errs.ErrInvalidMagicNumber
	}

	if f.Options&ReservedBitsMask != 0 {
		return errs.ErrInvalidHeaderFlags
	}

	return nil
}

// GetEndianEngine returns the appropriate endian engine based on the flag.
func (f CompactFlag) GetEndianEngine() endian.EndianEngine {
	if f.IsLittleEndian() {
		return endian.GetLittleEndianEngine()
	}

	return endian.GetBigEndianEngine()
}
