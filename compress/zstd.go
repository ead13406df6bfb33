package compress

// ZstdCompressor provides Zstandard compression for section snapshots.
//
// This compressor is designed for scenarios where compression ratio is more
// important than compression speed, making it ideal for:
//   - Cold storage and archival of world regions
//   - Network transmission where bandwidth is limited
//   - Worlds with many near-identical sections (terrain fill, oceans)
//
// Two implementations back this type, selected at build time: a cgo binding
// when cgo is available, and a pure-Go fallback otherwise. Both produce and
// consume standard Zstandard frames.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
