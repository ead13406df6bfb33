package snapshot

import (
	"fmt"

	"github.com/arloliu/chroma/bitpack"
	"github.com/arloliu/chroma/endian"
	"github.com/arloliu/chroma/errs"
	"github.com/arloliu/chroma/format"
)

// Flag represents the packed field at the start of the snapshot header.
type Flag struct {
	// Options is a packed field for various options.
	// Bit 0 is the endianness flag, 0 means little-endian, 1 means big-endian.
	// Bits 1-3 are reserved for future use, must be set to 0.
	// Bits 4-15 are a magic number identifying the snapshot format:
	//   - 0xC5A0 (0b1100_0101_1010_0000): Section snapshot format v1
	Options uint16

	// CompressionType is an enum indicating the compression applied to the
	// snapshot payload.
	CompressionType uint8

	// BitsPerItem is the per-slot encoding width of the packed storage.
	BitsPerItem uint8
}

// NewFlag creates a Flag with default settings: little-endian byte order and
// no compression.
func NewFlag() Flag {
	flag := Flag{
		Options:         MagicSectionV1Opt,
		CompressionType: uint8(format.CompressionNone),
	}
	flag.WithLittleEndian()

	return flag
}

// IsLittleEndian returns whether the snapshot data is little-endian.
func (f Flag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether the snapshot data is big-endian.
func (f Flag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *Flag) WithLittleEndian() {
	f.Options &^= uint16(EndiannessMask)
}

// WithBigEndian sets big-endian byte order.
func (f *Flag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetMagicNumber returns the magic number from the Options field.
func (f Flag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// GetEndianEngine returns the endian engine matching the endianness flag.
func (f Flag) GetEndianEngine() endian.EndianEngine {
	if f.IsBigEndian() {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}

// Compression returns the payload compression type.
func (f Flag) Compression() format.CompressionType {
	return format.CompressionType(f.CompressionType)
}

// SetCompression sets the payload compression type.
func (f *Flag) SetCompression(ct format.CompressionType) {
	f.CompressionType = uint8(ct)
}

// Validate checks that the flag identifies a supported snapshot format.
func (f Flag) Validate() error {
	if f.GetMagicNumber() != MagicSectionV1Opt {
		return fmt.Errorf("%w: 0x%04X", errs.ErrInvalidMagicNumber, f.GetMagicNumber())
	}
	if f.Options&ReservedBitsMask != 0 {
		return fmt.Errorf("%w: options bits 1-3 = 0x%X", errs.ErrReservedNotZero, f.Options&ReservedBitsMask)
	}
	if !f.Compression().Valid() {
		return fmt.Errorf("%w: 0x%02X", errs.ErrInvalidCompressionType, f.CompressionType)
	}
	if f.BitsPerItem == 0 || f.BitsPerItem > bitpack.MaxBits {
		return fmt.Errorf("%w: %d", errs.ErrInvalidBitsPerItem, f.BitsPerItem)
	}

	return nil
}
