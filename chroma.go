// Package chroma provides a compact, fixed-capacity 3D container for voxel
// and world-simulation workloads.
//
// A chroma section stores millions of small item values (block identifiers,
// materials, tile kinds) in a fraction of the memory a naive array needs, by
// deduplicating values into a palette and packing per-cell palette indices
// at the minimal sufficient bit width. Random access stays O(1); the packed
// storage grows its bit width in place as new distinct values appear.
//
// # Core Features
//
//   - Palette deduplication: each distinct value stored once
//   - Dynamic bit-width packing: 4096-cell sections start at a few hundred bytes
//   - O(1) get/set with amortized-cheap width growth
//   - Versioned binary snapshots with optional Zstd/S2/LZ4 compression
//   - xxHash64 content fingerprints and snapshot checksums
//
// # Basic Usage
//
//	sec, err := chroma.New(16, 16, 16, 2)
//	if err != nil {
//	    return err
//	}
//
//	_ = sec.SetItem(section.Pos{X: 0, Y: 0, Z: 0}, 2)
//	item, _ := sec.Item(section.Pos{X: 0, Y: 0, Z: 0})
//
// Serializing for storage or transport:
//
//	data, err := chroma.Marshal(sec, snapshot.WithCompression(format.CompressionLZ4))
//	if err != nil {
//	    return err
//	}
//	restored, err := chroma.Unmarshal(data)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the section and
// snapshot packages. For fine-grained control, use those packages directly:
//
//   - section: the container itself
//   - snapshot: the binary serialization format
//   - bitpack: the packed bit storage leaf
//   - palette: the deduplicating value table leaf
//   - compress: payload compression codecs
package chroma

import (
	"github.com/arloliu/chroma/section"
	"github.com/arloliu/chroma/snapshot"
)

// StandardDimension is the conventional section edge length used by most
// voxel engines.
const StandardDimension = 16

// New creates a section with the given dimensions and initial bits per item.
func New(width, height, depth int32, initialBits uint8) (*section.Section, error) {
	return section.New(width, height, depth, initialBits)
}

// NewStandard creates a 16x16x16 section with the given initial bits per item.
func NewStandard(initialBits uint8) (*section.Section, error) {
	return section.New(StandardDimension, StandardDimension, StandardDimension, initialBits)
}

// Marshal serializes a section into the snapshot wire format.
func Marshal(sec *section.Section, opts ...snapshot.Option) ([]byte, error) {
	return snapshot.Encode(sec, opts...)
}

// Unmarshal reconstructs a section from snapshot data.
func Unmarshal(data []byte) (*section.Section, error) {
	return snapshot.Decode(data)
}
