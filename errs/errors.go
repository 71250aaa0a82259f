// Package errs defines the sentinel errors shared across the packing engine
// and its adapters. Callers match them with errors.Is; rich failures wrap a
// sentinel so both the category and the detail survive.
package errs

import "errors"

var (
	// ErrNoFittingType indicates numeric data whose range no candidate type
	// within the configured bounds can cover.
	ErrNoFittingType = errors.New("no fitting type")

	// ErrValueOutOfRange indicates a value that exceeds the range of the
	// type it is being packed into.
	ErrValueOutOfRange = errors.New("value out of range")

	// ErrNonNumericValue indicates a non-numeric element where a number is
	// required.
	ErrNonNumericValue = errors.New("non-numeric value")

	// ErrUnknownType indicates a type code outside the catalog.
	ErrUnknownType = errors.New("unknown type code")

	// ErrInvalidSampleSize indicates a negative sample size option.
	ErrInvalidSampleSize = errors.New("invalid sample size")

	// ErrInvalidChunkSize indicates a negative chunk size option.
	ErrInvalidChunkSize = errors.New("invalid chunk size")

	// ErrInvalidHeaderSize indicates container header data shorter than the
	// fixed header length.
	ErrInvalidHeaderSize = errors.New("invalid header size")

	// ErrInvalidMagicNumber indicates container data that does not start
	// with the expected magic number.
	ErrInvalidMagicNumber = errors.New("invalid magic number")

	// ErrInvalidHeaderFlags indicates a container header carrying flags this
	// implementation does not recognize.
	ErrInvalidHeaderFlags = errors.New("invalid header flags")

	// ErrHashMismatch indicates payload contents that do not match the
	// checksum recorded in the container header.
	ErrHashMismatch = errors.New("hash mismatch")

	// ErrPayloadTruncated indicates container payload shorter than the
	// length recorded in the header.
	ErrPayloadTruncated = errors.New("payload truncated")

	// ErrNotPacked indicates a fallback result where an adapter needs a
	// packed numeric form.
	ErrNotPacked = errors.New("result is not packed")
)
