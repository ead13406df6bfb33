package snapshot

import (
	"fmt"

	"github.com/arloliu/chroma/bitpack"
	"github.com/arloliu/chroma/compress"
	"github.com/arloliu/chroma/errs"
	"github.com/arloliu/chroma/internal/hash"
	"github.com/arloliu/chroma/section"
)

// Decode reconstructs a section from snapshot data produced by Encode.
//
// Decode validates the magic number, compression type, payload size and
// checksum before rebuilding the section, and the rebuilt section is
// revalidated against its own invariants (no duplicate palette values, every
// stored index issued). Corrupted or truncated input is reported with one of
// the errs sentinels, never a panic.
func Decode(data []byte) (*section.Section, error) {
	var header Header
	if err := header.Parse(data); err != nil {
		return nil, err
	}

	if len(data)-HeaderSize < int(header.PayloadSize) {
		return nil, fmt.Errorf("%w: got %d payload bytes, header declares %d",
			errs.ErrPayloadTruncated, len(data)-HeaderSize, header.PayloadSize)
	}
	if extra := len(data) - HeaderSize - int(header.PayloadSize); extra > 0 {
		return nil, fmt.Errorf("%w: %d extra bytes", errs.ErrTrailingBytes, extra)
	}
	payload := data[HeaderSize : HeaderSize+int(header.PayloadSize)]

	codec, err := compress.GetCodec(header.Flag.Compression())
	if err != nil {
		return nil, err
	}
	raw, err := codec.Decompress(payload)
	if err != nil {
		return nil, fmt.Errorf("snapshot payload decompression failed: %w", err)
	}

	volume := int(header.Width) * int(header.Height) * int(header.Depth)
	wordCount := bitpack.WordCount(volume, header.Flag.BitsPerItem)
	want := (int(header.PaletteLen) + wordCount) * 8
	if len(raw) != want {
		return nil, fmt.Errorf("%w: got %d uncompressed bytes, want %d",
			errs.ErrPayloadTruncated, len(raw), want)
	}

	if sum := hash.Checksum(raw); sum != header.Checksum {
		return nil, fmt.Errorf("%w: got 0x%016x, want 0x%016x",
			errs.ErrChecksumMismatch, sum, header.Checksum)
	}

	engine := header.Flag.GetEndianEngine()
	paletteValues := make([]uint64, header.PaletteLen)
	for i := range paletteValues {
		paletteValues[i] = engine.Uint64(raw[i*8 : i*8+8])
	}
	words := make([]uint64, wordCount)
	wordBase := int(header.PaletteLen) * 8
	for i := range words {
		words[i] = engine.Uint64(raw[wordBase+i*8 : wordBase+i*8+8])
	}

	return section.Restore(
		int32(header.Width), int32(header.Height), int32(header.Depth),
		header.Flag.BitsPerItem, paletteValues, words,
	)
}
