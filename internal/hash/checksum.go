package hash

import "github.com/cespare/xxhash/v2"

// Checksum computes the xxHash64 of the given bytes.
func Checksum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Digest is a streaming xxHash64 accumulator used to fingerprint section
// contents without materializing them in one buffer.
type Digest struct {
	d *xxhash.Digest
}

// NewDigest creates a new streaming digest.
func NewDigest() *Digest {
	return &Digest{d: xxhash.New()}
}

// WriteUint64 feeds one little-endian uint64 into the digest.
func (dg *Digest) WriteUint64(v uint64) {
	var b [8]byte
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
	b[4] = byte(v >> 32)
	b[5] = byte(v >> 40)
	b[6] = byte(v >> 48)
	b[7] = byte(v >> 56)
	_, _ = dg.d.Write(b[:])
}

// Sum64 returns the current hash value.
func (dg *Digest) Sum64() uint64 {
	return dg.d.Sum64()
}
