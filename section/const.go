package section

const (
	// Bit masks for the Options field
	EndiannessMask   = 0x0001 // Mask for endianness bit (bit 0)
	ReservedBitsMask = 0x000E // Mask for reserved bits (bits 1-3), must be 0
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// Magic numbers (bits 4-15)
	MagicCompactV1Opt = 0xA9C0 // MagicCompactV1Opt is the version 1 magic number for the compact container format.
)

// offsets and section sizes in the container
const (
	HeaderSize    = 24         // fixed header size in bytes
	PayloadOffset = HeaderSize // byte offset where the payload starts
)
