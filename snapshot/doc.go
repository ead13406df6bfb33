// Package snapshot defines the versioned binary serialization format for
// chroma sections.
//
// A snapshot is a self-describing byte slice: a fixed 32-byte header
// followed by a payload holding the palette values and the packed storage
// words. The payload may be compressed with any codec from the compress
// package and is protected by an xxHash64 checksum.
//
// # Format (v1)
//
//	offset  size  field
//	0       2     Options (always little-endian): endianness bit + magic 0xC5A0
//	2       1     CompressionType
//	3       1     BitsPerItem
//	4       2     Width
//	6       2     Height
//	8       2     Depth
//	10      2     Reserved (zero)
//	12      4     PaletteLen
//	16      4     PayloadSize (compressed bytes following the header)
//	20      4     Reserved (zero)
//	24      8     Checksum (xxHash64 of the uncompressed payload)
//	32      ...   Payload: PaletteLen uint64 values, then the storage words
//
// All multi-byte fields after Options use the byte order the endianness bit
// declares. The payload layout is bit-exact: decoding a snapshot restores a
// section with an identical fingerprint.
//
// # Usage
//
//	data, err := snapshot.Encode(sec, snapshot.WithCompression(format.CompressionZstd))
//	if err != nil {
//	    return err
//	}
//
//	restored, err := snapshot.Decode(data)
package snapshot
