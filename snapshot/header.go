package snapshot

import (
	"fmt"

	"github.com/arloliu/chroma/errs"
)

// Header represents the fixed-size header at the start of a section
// snapshot.
//
// The Options field is always little-endian so the endianness of the rest of
// the snapshot can be determined before parsing it; every other field uses
// the byte order the flag declares.
type Header struct {
	// Flag is the packed options/magic/compression/width field. byte offset 0-3
	Flag Flag
	// Width is the section width. byte offset 4-5
	Width uint16
	// Height is the section height. byte offset 6-7
	Height uint16
	// Depth is the section depth. byte offset 8-9
	Depth uint16
	// Reserved, must be zero. byte offset 10-11
	Reserved uint16
	// PaletteLen is the number of palette entries in the payload. byte offset 12-15
	PaletteLen uint32
	// PayloadSize is the byte length of the (compressed) payload that
	// follows the header. byte offset 16-19
	PayloadSize uint32
	// Reserved2, must be zero. byte offset 20-23
	Reserved2 uint32
	// Checksum is the xxHash64 of the uncompressed payload. byte offset 24-31
	Checksum uint64
}

// Parse parses the header from a byte slice.
//
// Returns errs.ErrInvalidHeaderSize if data is shorter than HeaderSize, or
// flag validation errors.
func (h *Header) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	// Options is always little-endian; it carries the endianness of the rest.
	h.Flag.Options = uint16(data[0]) | (uint16(data[1]) << 8)
	h.Flag.CompressionType = data[2]
	h.Flag.BitsPerItem = data[3]

	if err := h.Flag.Validate(); err != nil {
		return err
	}

	engine := h.Flag.GetEndianEngine()
	h.Width = engine.Uint16(data[4:6])
	h.Height = engine.Uint16(data[6:8])
	h.Depth = engine.Uint16(data[8:10])
	h.Reserved = engine.Uint16(data[10:12])
	h.PaletteLen = engine.Uint32(data[12:16])
	h.PayloadSize = engine.Uint32(data[16:20])
	h.Reserved2 = engine.Uint32(data[20:24])
	h.Checksum = engine.Uint64(data[24:32])

	if h.Reserved != 0 || h.Reserved2 != 0 {
		return fmt.Errorf("%w: reserved fields 0x%04X/0x%08X", errs.ErrReservedNotZero, h.Reserved, h.Reserved2)
	}

	return nil
}

// AppendBytes serializes the header and appends it to b.
func (h *Header) AppendBytes(b []byte) []byte {
	engine := h.Flag.GetEndianEngine()

	b = append(b, byte(h.Flag.Options), byte(h.Flag.Options>>8))
	b = append(b, h.Flag.CompressionType, h.Flag.BitsPerItem)
	b = engine.AppendUint16(b, h.Width)
	b = engine.AppendUint16(b, h.Height)
	b = engine.AppendUint16(b, h.Depth)
	b = engine.AppendUint16(b, h.Reserved)
	b = engine.AppendUint32(b, h.PaletteLen)
	b = engine.AppendUint32(b, h.PayloadSize)
	b = engine.AppendUint32(b, h.Reserved2)
	b = engine.AppendUint64(b, h.Checksum)

	return b
}
