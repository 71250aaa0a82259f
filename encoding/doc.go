// Package encoding provides the low-level fixed-width codec for numpack payloads.
//
// This package defines the ValueEncoder and ValueDecoder interfaces that power
// numpack's binary format, together with the FixedEncoder/FixedDecoder pair
// that implements them for all ten numeric element types.
//
// # Usage Guidance
//
// This package is designed for advanced use cases. Most users should use the
// high-level pack package instead, which provides:
//   - Automatic element type selection based on observed values
//   - Integrated headers, checksums and compression
//   - Simpler API for common operations
//
// Use this package directly only when:
//   - Encoding into a known element type without running selection
//   - Building custom storage formats around the raw payload layout
//   - Understanding numpack's internal encoding mechanisms
//
// For typical use cases, see: github.com/arloliu/numpack/pack
//
// # Payload Layout
//
// A payload is a dense array of same-width elements with no per-element
// framing:
//
//	element 0        element 1        ...   element N-1
//	[width bytes]    [width bytes]    ...   [width bytes]
//
// The element width is fixed by the type code (1, 2, 4 or 8 bytes). Integers
// are stored in two's complement, floats in IEEE 754 binary32/binary64, all
// in the byte order of the endian engine given at construction. Because the
// layout carries no type information of its own, the decoder must be created
// with the same type code and endianness that produced the payload; the pack
// package records both in its header.
//
// # Validation
//
// FixedEncoder validates every value before it lands in the buffer:
//   - Integer slots accept only integral values within the type's bounds.
//     Floats never coerce into integer slots, even when their fractional part
//     is zero.
//   - float32 rejects finite values whose magnitude exceeds the largest
//     representable float32, so narrowing can never silently turn a finite
//     value into an infinity. NaN and both infinities are representable and
//     pass through.
//   - float64 accepts every numeric value.
//
// A rejected value returns a *errs.SelectionError carrying the offending
// index and leaves the buffer exactly as it was, so partial batches never
// leak into the payload.
//
// # Zero-Copy Views
//
// UnsafeView reinterprets a payload as a typed Go slice without copying:
//
//	view, err := encoding.UnsafeView[int32](payload)
//
// This is only sound when the payload byte order matches the host. Callers
// that may hold foreign-endian payloads should fall back to FixedDecoder,
// which byte-swaps as it decodes.
package encoding
