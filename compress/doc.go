// Package compress provides compression and decompression codecs for chroma
// section snapshots.
//
// Compression is applied at the payload level, after the palette values and
// packed storage words have been laid out in the snapshot byte order. Packed
// voxel data is dominated by long runs of identical palette indices, so all
// supported codecs achieve good ratios; they differ mainly in the
// speed/ratio trade-off.
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Supported Algorithms
//
//   - None: no compression, zero overhead (format.CompressionNone)
//   - Zstd: best ratio, moderate speed (format.CompressionZstd)
//   - S2: balanced ratio and speed (format.CompressionS2)
//   - LZ4: fastest decompression (format.CompressionLZ4)
//
// Zstd uses a cgo binding when cgo is available and a pure-Go implementation
// otherwise; the two are frame-compatible.
//
// Codecs are obtained through GetCodec, which maps a format.CompressionType
// to a shared, concurrency-safe Codec instance:
//
//	codec, err := compress.GetCodec(format.CompressionLZ4)
//	if err != nil {
//	    return err
//	}
//	compressed, err := codec.Compress(payload)
package compress
