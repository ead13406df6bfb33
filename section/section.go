package section

import (
	"fmt"
	"math/bits"

	"github.com/arloliu/chroma/bitpack"
	"github.com/arloliu/chroma/errs"
	"github.com/arloliu/chroma/internal/hash"
	"github.com/arloliu/chroma/palette"
)

// MaxDimension is the largest supported value for a single section
// dimension. It matches the width of the dimension fields in the snapshot
// header.
const MaxDimension = 65535

// Pos addresses a single cell within a section by its three coordinates.
type Pos struct {
	X, Y, Z int32
}

// Section is a fixed-capacity 3D container of item values, stored as
// palette indices packed at the minimal sufficient bit width.
//
// Dimensions are fixed at construction. Every cell is addressed by a Pos
// with 0 <= X < width, 0 <= Y < height, 0 <= Z < depth.
//
// A Section is a single-owner structure: it is not safe for concurrent use,
// and callers sharing one across goroutines must serialize every SetItem
// (including its possible repack) against any concurrent SetItem or Item.
type Section struct {
	width, height, depth int32
	volume               int
	storage              *bitpack.Array
	pal                  *palette.Palette
}

// New creates a Section with the given dimensions and initial encoding
// width, all slots initialized to index 0 and an empty palette.
//
// A larger initialBits spends more memory up front but makes an O(volume)
// repack less likely as distinct values are inserted.
//
// Returns errs.ErrInvalidDimension if any dimension is outside
// [1, MaxDimension], or errs.ErrInvalidBitsPerItem if initialBits is zero or
// exceeds bitpack.MaxBits.
func New(width, height, depth int32, initialBits uint8) (*Section, error) {
	if err := checkDimension("width", width); err != nil {
		return nil, err
	}
	if err := checkDimension("height", height); err != nil {
		return nil, err
	}
	if err := checkDimension("depth", depth); err != nil {
		return nil, err
	}

	volume := int(width) * int(height) * int(depth)
	storage, err := bitpack.New(volume, initialBits)
	if err != nil {
		return nil, err
	}

	return &Section{
		width:   width,
		height:  height,
		depth:   depth,
		volume:  volume,
		storage: storage,
		pal:     palette.New(),
	}, nil
}

// Restore reconstructs a Section from its parts, as captured by
// PaletteValues and StorageWords on a section with the same dimensions and
// encoding width. It is the inverse used by snapshot decoding.
//
// Beyond the constructor checks, Restore validates that the palette holds no
// duplicate values, that it fits the encoding width, and that every stored
// slot index refers to an issued palette entry.
func Restore(width, height, depth int32, bitsPerItem uint8, paletteValues []uint64, words []uint64) (*Section, error) {
	sec, err := New(width, height, depth, bitsPerItem)
	if err != nil {
		return nil, err
	}
	if len(paletteValues) > 0 && bits.Len(uint(len(paletteValues)-1)) > int(bitsPerItem) {
		return nil, fmt.Errorf("%w: %d bits cannot index %d palette entries",
			errs.ErrInvalidBitsPerItem, bitsPerItem, len(paletteValues))
	}

	pal, err := palette.Restore(paletteValues)
	if err != nil {
		return nil, err
	}
	storage, err := bitpack.NewFromWords(sec.volume, bitsPerItem, words)
	if err != nil {
		return nil, err
	}

	for slot := 0; slot < sec.volume; slot++ {
		idx := storage.Get(slot)
		if idx != 0 && int(idx) >= pal.Len() {
			return nil, fmt.Errorf("%w: slot %d holds index %d, palette has %d entries",
				errs.ErrInvalidPaletteIndex, slot, idx, pal.Len())
		}
	}

	sec.storage = storage
	sec.pal = pal

	return sec, nil
}

// Dimensions returns the fixed (width, height, depth) of the section.
func (s *Section) Dimensions() (width, height, depth int32) {
	return s.width, s.height, s.depth
}

// Volume returns the total number of addressable cells.
func (s *Section) Volume() int {
	return s.volume
}

// BitsPerItem returns the current per-slot encoding width. It only grows
// over the section's lifetime.
func (s *Section) BitsPerItem() uint8 {
	return s.storage.Bits()
}

// IsEmpty reports whether no item has ever been set. It is true only before
// the first successful SetItem.
func (s *Section) IsEmpty() bool {
	return s.pal.Len() == 0
}

// SetItem stores item at pos.
//
// New distinct items are appended to the palette; when the palette outgrows
// the current encoding width the whole storage is repacked to the minimal
// sufficient width first. Repacking costs O(volume), so workloads inserting
// many distinct values can avoid repeated repacks by constructing with a
// larger initial width.
//
// Returns errs.ErrOutOfBounds if pos is outside the section dimensions; the
// section is left unmodified in that case.
func (s *Section) SetItem(pos Pos, item uint64) error {
	if err := s.checkBounds(pos); err != nil {
		return err
	}

	idx := s.pal.IndexOf(item)
	if need := uint8(bits.Len32(idx)); need > s.storage.Bits() {
		if err := s.storage.Resize(need); err != nil {
			// Unreachable while palette indices stay within bitpack.MaxBits.
			panic(fmt.Sprintf("section: repack to %d bits failed: %v", need, err))
		}
	}

	s.storage.Set(s.slotIndex(pos), idx)

	return nil
}

// Item returns the item stored at pos.
//
// A cell that was never written holds slot index 0: on a section that is
// still empty, Item returns 0 (the conventional empty item); once at least
// one item has been set, an unwritten cell reads as the first item ever
// inserted into this section.
//
// Returns errs.ErrOutOfBounds if pos is outside the section dimensions.
func (s *Section) Item(pos Pos) (uint64, error) {
	if err := s.checkBounds(pos); err != nil {
		return 0, err
	}
	if s.pal.Len() == 0 {
		return 0, nil
	}

	return s.pal.ValueAt(s.storage.Get(s.slotIndex(pos))), nil
}

// PaletteLen returns the number of distinct items inserted so far.
func (s *Section) PaletteLen() int {
	return s.pal.Len()
}

// PaletteValues returns the distinct items in insertion order.
//
// The returned slice is the live palette backing store; the caller must not
// modify it.
func (s *Section) PaletteValues() []uint64 {
	return s.pal.Values()
}

// StorageWords returns the packed storage words.
//
// The returned slice is the live buffer, valid until the next repack; the
// caller must not modify it.
func (s *Section) StorageWords() []uint64 {
	return s.storage.Words()
}

// Fingerprint returns an xxHash64 identity over the section's physical
// contents: dimensions, encoding width, palette values in index order, and
// packed storage words. Sections with identical contents have identical
// fingerprints; a snapshot round trip preserves the fingerprint.
func (s *Section) Fingerprint() uint64 {
	d := hash.NewDigest()
	d.WriteUint64(uint64(s.width))
	d.WriteUint64(uint64(s.height))
	d.WriteUint64(uint64(s.depth))
	d.WriteUint64(uint64(s.storage.Bits()))
	for _, value := range s.pal.Values() {
		d.WriteUint64(value)
	}
	for _, word := range s.storage.Words() {
		d.WriteUint64(word)
	}

	return d.Sum64()
}

// Clone returns a deep copy of the section. The clone shares no storage
// with the original; mutating one never affects the other.
func (s *Section) Clone() *Section {
	return &Section{
		width:   s.width,
		height:  s.height,
		depth:   s.depth,
		volume:  s.volume,
		storage: s.storage.Clone(),
		pal:     s.pal.Clone(),
	}
}

// slotIndex linearizes pos to a slot in [0, volume). The ordering is part of
// the snapshot format and must never change: x*(height*depth) + y*depth + z.
func (s *Section) slotIndex(pos Pos) int {
	return int(pos.X)*int(s.height)*int(s.depth) + int(pos.Y)*int(s.depth) + int(pos.Z)
}

func (s *Section) checkBounds(pos Pos) error {
	if pos.X < 0 || pos.X >= s.width ||
		pos.Y < 0 || pos.Y >= s.height ||
		pos.Z < 0 || pos.Z >= s.depth {
		return fmt.Errorf("%w: (%d, %d, %d) not within %dx%dx%d",
			errs.ErrOutOfBounds, pos.X, pos.Y, pos.Z, s.width, s.height, s.depth)
	}

	return nil
}

func checkDimension(name string, dim int32) error {
	if dim < 1 || dim > MaxDimension {
		return fmt.Errorf("%w: %s %d (must be in [1, %d])", errs.ErrInvalidDimension, name, dim, MaxDimension)
	}

	return nil
}
