// Package bitpack implements a fixed-capacity array of unsigned integers
// packed contiguously at a uniform, dynamically growable bit width.
//
// Values are packed back-to-back into 64-bit words with no padding between
// slots, so a value may straddle a word boundary. The slot count is fixed at
// construction; only the per-slot bit width changes, through Resize.
package bitpack

import (
	"fmt"

	"github.com/arloliu/chroma/errs"
)

const wordBits = 64

// MaxBits is the widest supported slot encoding. Slot values are uint32
// palette indices, so wider encodings carry no information.
const MaxBits = 32

// Array is a flat buffer of fixed-width unsigned integer slots.
//
// The zero value is not usable; create instances with New or NewFromWords.
// An Array is not safe for concurrent use.
type Array struct {
	words []uint64
	slots int
	bits  uint8
}

// WordCount returns the number of 64-bit words needed to hold slots values
// at the given width.
func WordCount(slots int, bits uint8) int {
	return (slots*int(bits) + wordBits - 1) / wordBits
}

// New creates an Array with the given slot count and bit width, all slots
// initialized to zero.
//
// Returns errs.ErrInvalidBitsPerItem if bits is zero or exceeds MaxBits.
func New(slots int, bits uint8) (*Array, error) {
	if err := checkBits(bits); err != nil {
		return nil, err
	}
	if slots < 0 {
		return nil, fmt.Errorf("%w: negative slot count %d", errs.ErrInvalidDimension, slots)
	}

	return &Array{
		words: make([]uint64, WordCount(slots, bits)),
		slots: slots,
		bits:  bits,
	}, nil
}

// NewFromWords creates an Array backed by a copy of the given words, as
// produced by Words on an Array with the same slot count and width.
//
// Returns errs.ErrInvalidBitsPerItem for a degenerate width, or an error if
// the word count does not match the slot count and width.
func NewFromWords(slots int, bits uint8, words []uint64) (*Array, error) {
	if err := checkBits(bits); err != nil {
		return nil, err
	}
	want := WordCount(slots, bits)
	if len(words) != want {
		return nil, fmt.Errorf("%w: got %d words, want %d", errs.ErrPayloadTruncated, len(words), want)
	}

	a := &Array{
		words: make([]uint64, want),
		slots: slots,
		bits:  bits,
	}
	copy(a.words, words)

	return a, nil
}

// Len returns the fixed slot count.
func (a *Array) Len() int {
	return a.slots
}

// Bits returns the current per-slot bit width.
func (a *Array) Bits() uint8 {
	return a.bits
}

// Words returns the backing word slice.
//
// The returned slice is the live buffer, valid until the next Resize.
// The caller must not modify it.
func (a *Array) Words() []uint64 {
	return a.words
}

// Get returns the value stored at the given slot.
//
// The slot must be in [0, Len()); violating this indicates a bug in the
// caller and panics.
func (a *Array) Get(slot int) uint32 {
	if slot < 0 || slot >= a.slots {
		panic(fmt.Sprintf("bitpack: slot %d out of range [0, %d)", slot, a.slots))
	}

	bits := int(a.bits)
	wordIdx, bitInWord := splitIndex(slot, bits)

	value := a.words[wordIdx] >> bitInWord
	if bitInWord+bits > wordBits {
		// Upper part lives in the next word.
		value |= a.words[wordIdx+1] << (wordBits - bitInWord)
	}

	mask := uint64(1)<<bits - 1

	return uint32(value & mask)
}

// Set stores value at the given slot, overwriting any previous value.
//
// The slot must be in [0, Len()) and value must fit in Bits() bits;
// violating either indicates a bug in the caller and panics.
func (a *Array) Set(slot int, value uint32) {
	if slot < 0 || slot >= a.slots {
		panic(fmt.Sprintf("bitpack: slot %d out of range [0, %d)", slot, a.slots))
	}
	bits := int(a.bits)
	mask := uint64(1)<<bits - 1
	if uint64(value) > mask {
		panic(fmt.Sprintf("bitpack: value %d does not fit in %d bits", value, bits))
	}

	wordIdx, bitInWord := splitIndex(slot, bits)
	bitsInFirstWord := wordBits - bitInWord

	if bits <= bitsInFirstWord {
		a.words[wordIdx] &^= mask << bitInWord
		a.words[wordIdx] |= uint64(value) << bitInWord

		return
	}

	// The value straddles two words: low bits fill the tail of the first
	// word, high bits land at the bottom of the second.
	firstMask := uint64(1)<<bitsInFirstWord - 1
	a.words[wordIdx] &^= firstMask << bitInWord
	a.words[wordIdx] |= (uint64(value) & firstMask) << bitInWord

	secondMask := uint64(1)<<(bits-bitsInFirstWord) - 1
	a.words[wordIdx+1] &^= secondMask
	a.words[wordIdx+1] |= (uint64(value) >> bitsInFirstWord) & secondMask
}

// Resize re-encodes every slot at newBits width. Slot values are preserved;
// only their encoding changes. The new buffer is fully built before it
// replaces the old one, so a panic mid-resize leaves the Array unchanged.
//
// Widths only grow: newBits must be at least the current width. Returns
// errs.ErrInvalidBitsPerItem for a degenerate or shrinking width.
func (a *Array) Resize(newBits uint8) error {
	if err := checkBits(newBits); err != nil {
		return err
	}
	if newBits < a.bits {
		return fmt.Errorf("%w: cannot shrink from %d to %d bits", errs.ErrInvalidBitsPerItem, a.bits, newBits)
	}
	if newBits == a.bits {
		return nil
	}

	resized := Array{
		words: make([]uint64, WordCount(a.slots, newBits)),
		slots: a.slots,
		bits:  newBits,
	}
	for slot := 0; slot < a.slots; slot++ {
		resized.Set(slot, a.Get(slot))
	}

	a.words = resized.words
	a.bits = newBits

	return nil
}

// Clone returns a deep copy of the Array.
func (a *Array) Clone() *Array {
	words := make([]uint64, len(a.words))
	copy(words, a.words)

	return &Array{
		words: words,
		slots: a.slots,
		bits:  a.bits,
	}
}

func splitIndex(slot int, bits int) (wordIdx int, bitInWord int) {
	bitOffset := slot * bits

	return bitOffset / wordBits, bitOffset % wordBits
}

func checkBits(bits uint8) error {
	if bits == 0 || bits > MaxBits {
		return fmt.Errorf("%w: %d (must be in [1, %d])", errs.ErrInvalidBitsPerItem, bits, MaxBits)
	}

	return nil
}
