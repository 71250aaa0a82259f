package encoding

import (
	"iter"

	"github.com/arloliu/numpack/scalar"
)

type ValueEncoder interface {
	// Bytes returns the encoded byte slice.
	// The returned slice is valid until the next call to Write, WriteSlice, or Reset.
	// The caller should not modify the returned slice.
	Bytes() []byte

	// Len returns the number of encoded values.
	Len() int

	// Size returns the size in bytes of the encoded values.
	// It represents the number of bytes that were written to the internal buffer.
	Size() int

	// Reset clears the count and buffer so the encoder can pack a fresh
	// sequence without returning its buffer to the pool.
	Reset()

	// Finish finalizes the encoding process and returns buffer resources to the pool.
	//
	// After calling Finish(), the encoder is no longer usable. Any subsequent calls to
	// Write(), WriteSlice(), Bytes(), Len(), or Size() will result in a panic due to nil buffer.
	//
	// To encode more data, create a new encoder instance.
	//
	// This method must be called when the encoding session is complete to ensure buffer
	// resources are properly returned to the pool for reuse by other encoders. Use defer
	// to ensure it's called even in error paths:
	//
	//	encoder, _ := NewFixedEncoder(format.TypeInt32, engine)
	//	defer encoder.Finish()  // Ensure buffer is returned to pool
	//
	//	err := encoder.Write(scalar.Int(42))
	//	data := encoder.Bytes()  // Get data before Finish
	//	// Finish() called automatically via defer
	Finish()

	// Write encodes a single value.
	//
	// It returns an error when the value does not fit the encoder's element
	// type; the buffer keeps only fully validated values.
	//
	// For bulk writes, use WriteSlice for better performance.
	Write(v scalar.Value) error

	// WriteSlice encodes a slice of values.
	//
	// This method is optimized for bulk writes. For single writes, use Write
	// for better performance. On error the buffer is rewound to its state
	// before the call.
	WriteSlice(values []scalar.Value) error
}

type ValueDecoder interface {
	// All returns an iterator that yields all decoded values from the provided encoded data.
	//
	// The data should be the byte slice payload produced by a corresponding encoder.
	// The count parameter specifies the expected number of values to decode.
	//
	// The method returns an iterator that yields each value in sequence.
	// The iterator will yield exactly 'count' values if the data is valid.
	//
	// If the data is malformed or does not contain enough values, the iterator
	// may yield fewer values. The caller should handle this case appropriately.
	All(data []byte, count int) iter.Seq[scalar.Value]

	// At retrieves the value at the specified index from the encoded data.
	//
	// The data should be the byte slice payload produced by a corresponding encoder.
	// The index is zero-based, so index 0 retrieves the first value.
	// The count parameter specifies the total number of values encoded in the data,
	// enabling proper bounds checking.
	//
	// If the index is out of bounds (index < 0 or index >= count), the second return
	// value will be false.
	At(data []byte, index int, count int) (scalar.Value, bool)
}
