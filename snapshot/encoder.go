package snapshot

import (
	"fmt"
	"math"

	"github.com/arloliu/chroma/compress"
	"github.com/arloliu/chroma/errs"
	"github.com/arloliu/chroma/format"
	"github.com/arloliu/chroma/internal/hash"
	"github.com/arloliu/chroma/internal/options"
	"github.com/arloliu/chroma/internal/pool"
	"github.com/arloliu/chroma/section"
)

type encoderConfig struct {
	compression format.CompressionType
	bigEndian   bool
}

// Option configures snapshot encoding.
type Option = options.Option[*encoderConfig]

// WithCompression selects the payload compression codec.
// The default is format.CompressionNone.
func WithCompression(ct format.CompressionType) Option {
	return options.New(func(cfg *encoderConfig) error {
		if !ct.Valid() {
			return fmt.Errorf("%w: 0x%02X", errs.ErrInvalidCompressionType, uint8(ct))
		}
		cfg.compression = ct

		return nil
	})
}

// WithBigEndian encodes the snapshot in big-endian byte order.
// The default is little-endian.
func WithBigEndian() Option {
	return options.NoError(func(cfg *encoderConfig) {
		cfg.bigEndian = true
	})
}

// WithLittleEndian encodes the snapshot in little-endian byte order.
// This is the default.
func WithLittleEndian() Option {
	return options.NoError(func(cfg *encoderConfig) {
		cfg.bigEndian = false
	})
}

// Encode serializes a section into the snapshot wire format: a fixed
// 32-byte header followed by the palette values and packed storage words,
// optionally compressed.
//
// The payload checksum stored in the header covers the uncompressed payload
// bytes; Decode verifies it after decompression.
func Encode(sec *section.Section, opts ...Option) ([]byte, error) {
	cfg := encoderConfig{compression: format.CompressionNone}
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	flag := NewFlag()
	flag.SetCompression(cfg.compression)
	flag.BitsPerItem = sec.BitsPerItem()
	if cfg.bigEndian {
		flag.WithBigEndian()
	}

	width, height, depth := sec.Dimensions()
	header := Header{
		Flag:       flag,
		Width:      uint16(width),
		Height:     uint16(height),
		Depth:      uint16(depth),
		PaletteLen: uint32(sec.PaletteLen()),
	}

	engine := flag.GetEndianEngine()
	buf := pool.GetSnapshotBuffer()
	defer pool.PutSnapshotBuffer(buf)

	for _, value := range sec.PaletteValues() {
		buf.B = engine.AppendUint64(buf.B, value)
	}
	for _, word := range sec.StorageWords() {
		buf.B = engine.AppendUint64(buf.B, word)
	}

	header.Checksum = hash.Checksum(buf.Bytes())

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}
	payload, err := codec.Compress(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("snapshot payload compression failed: %w", err)
	}
	if err := checkPayloadSize(len(payload)); err != nil {
		return nil, err
	}
	header.PayloadSize = uint32(len(payload))

	// The no-op codec returns the pooled buffer itself, so the payload must
	// be copied out before the buffer goes back to the pool.
	out := make([]byte, 0, HeaderSize+len(payload))
	out = header.AppendBytes(out)
	out = append(out, payload...)

	return out, nil
}

// checkPayloadSize rejects payloads whose length cannot be represented in
// the header's uint32 PayloadSize field. Sections near MaxDimension on every
// axis can pack beyond 4GiB.
func checkPayloadSize(n int) error {
	if uint64(n) > math.MaxUint32 {
		return fmt.Errorf("%w: %d bytes exceeds the %d byte format limit", errs.ErrPayloadTooLarge, n, uint64(math.MaxUint32))
	}

	return nil
}
