package encoding

import (
	"fmt"
	"unsafe"
)

// Element is the set of Go element types whose in-memory layout matches the
// fixed-width payload layout, allowing zero-copy reinterpretation.
type Element interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// UnsafeView reinterprets a fixed-width payload as a typed slice using unsafe
// memory operations, avoiding intermediate allocations and copies. It is
// significantly faster than decoding element by element, especially for large
// payloads.
//
// The returned slice aliases data: it remains valid only as long as data does,
// and writes through either alias are visible through the other.
//
// Caution: the payload must have been encoded in the host's native byte
// order; reinterpreting a foreign-endian payload yields byte-swapped garbage.
// The caller must ensure the data length is a multiple of the element width.
//
// Parameters:
//   - data: Encoded byte slice from FixedEncoder.Bytes() in native byte order
//
// Returns:
//   - []T: Zero-copy typed view over data (nil when data is empty)
//   - error: non-nil if len(data) is not a multiple of the element width
func UnsafeView[T Element](data []byte) ([]T, error) {
	var zero T
	width := int(unsafe.Sizeof(zero))

	if len(data)%width != 0 {
		return nil, fmt.Errorf("byte slice length (%d) is not a multiple of %d", len(data), width)
	}

	if len(data) == 0 {
		return nil, nil
	}

	// Zero-copy conversion using unsafe.Slice
	// Cast the byte slice pointer to *T and create a slice from it
	ptr := (*T)(unsafe.Pointer(&data[0]))

	return unsafe.Slice(ptr, len(data)/width), nil
}
