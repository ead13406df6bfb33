// Package section implements the palette-compressed 3D container at the
// heart of chroma.
//
// A Section stores width x height x depth item values (block identifiers,
// voxel materials, tile kinds) using far fewer bits than a flat uint64
// array. Distinct values are deduplicated into an insertion-ordered palette
// and each cell stores only a palette index, packed at the minimal bit width
// that can address the whole palette. When the palette outgrows the current
// width, the storage is repacked in place to the next sufficient width.
//
// # Basic Usage
//
//	sec, err := section.New(16, 16, 16, 2)
//	if err != nil {
//	    return err
//	}
//
//	err = sec.SetItem(section.Pos{X: 3, Y: 5, Z: 3}, 30)
//	if err != nil {
//	    return err
//	}
//
//	item, err := sec.Item(section.Pos{X: 3, Y: 5, Z: 3})
//	// item == 30
//
// # Memory Model
//
// A 16x16x16 section holding up to 16 distinct values packs into 4096 slots
// x 4 bits = 2KiB of storage plus the palette, versus 32KiB for a naive
// []uint64. Both get and set are O(1); a set that forces a repack is
// O(volume) and leaves all previously stored values unchanged.
//
// # Concurrency
//
// Sections are single-owner structures with no internal locking. Callers
// needing shared access must synchronize externally.
package section
