// Package errs defines the sentinel errors shared across chroma packages.
//
// Errors returned by public APIs either are one of these sentinels or wrap
// one with fmt.Errorf("%w: ...") so callers can match them with errors.Is.
package errs

import "errors"

// Section construction and addressing errors.
var (
	// ErrOutOfBounds is returned when a position coordinate falls outside the
	// section dimensions. The section is left unmodified.
	ErrOutOfBounds = errors.New("position out of section bounds")

	// ErrInvalidBitsPerItem is returned when a bits-per-item width is zero or
	// exceeds the supported maximum.
	ErrInvalidBitsPerItem = errors.New("invalid bits per item")

	// ErrInvalidDimension is returned when a section dimension is not a
	// positive integer.
	ErrInvalidDimension = errors.New("invalid section dimension")
)

// Snapshot format errors.
var (
	// ErrInvalidHeaderSize is returned when snapshot data is too short to
	// contain the fixed-size header.
	ErrInvalidHeaderSize = errors.New("invalid snapshot header size")

	// ErrInvalidMagicNumber is returned when the header magic does not
	// identify a known snapshot format version.
	ErrInvalidMagicNumber = errors.New("invalid snapshot magic number")

	// ErrInvalidCompressionType is returned when the header declares an
	// unknown compression type.
	ErrInvalidCompressionType = errors.New("invalid compression type")

	// ErrReservedNotZero is returned when a reserved header field or flag
	// bit holds a nonzero value. Reserved space is kept zero so future
	// format versions can assign it without ambiguity.
	ErrReservedNotZero = errors.New("reserved snapshot field not zero")

	// ErrPayloadTruncated is returned when the payload is shorter than the
	// header-declared size.
	ErrPayloadTruncated = errors.New("snapshot payload truncated")

	// ErrPayloadTooLarge is returned when a payload exceeds the uint32
	// range of the header's PayloadSize field.
	ErrPayloadTooLarge = errors.New("snapshot payload too large")

	// ErrTrailingBytes is returned when snapshot data continues past the
	// header-declared payload.
	ErrTrailingBytes = errors.New("unexpected bytes after snapshot payload")

	// ErrChecksumMismatch is returned when the payload checksum does not
	// match the header checksum.
	ErrChecksumMismatch = errors.New("snapshot checksum mismatch")

	// ErrDuplicatePaletteValue is returned when a decoded palette contains
	// the same value twice.
	ErrDuplicatePaletteValue = errors.New("duplicate palette value")

	// ErrInvalidPaletteIndex is returned when a decoded slot refers to a
	// palette index that was never issued.
	ErrInvalidPaletteIndex = errors.New("invalid palette index")
)
