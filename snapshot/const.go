package snapshot

const (
	// Bit masks for the packed Options field.
	EndiannessMask   = 0x0001 // Mask for endianness bit (bit 0)
	ReservedBitsMask = 0x000E // Mask for reserved bits (bits 1-3)
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// MagicSectionV1Opt is the version 1 magic number for the section
	// snapshot format, stored in bits 4-15 of the Options field.
	MagicSectionV1Opt = 0xC5A0

	// HeaderSize is the fixed snapshot header size in bytes.
	HeaderSize = 32
)
