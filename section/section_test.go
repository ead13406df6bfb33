package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/chroma/bitpack"
	"github.com/arloliu/chroma/errs"
)

// ==============================================================================
// Helper Functions
// ==============================================================================

func newTestSection(t *testing.T, initialBits uint8) *Section {
	t.Helper()

	sec, err := New(16, 16, 16, initialBits)
	require.NoError(t, err)
	require.NotNil(t, sec)

	return sec
}

// ==============================================================================
// Construction Tests
// ==============================================================================

func TestNew(t *testing.T) {
	sec := newTestSection(t, 2)

	width, height, depth := sec.Dimensions()
	require.Equal(t, int32(16), width)
	require.Equal(t, int32(16), height)
	require.Equal(t, int32(16), depth)
	require.Equal(t, 4096, sec.Volume())
	require.Equal(t, uint8(2), sec.BitsPerItem())
	require.True(t, sec.IsEmpty())
}

func TestNewInvalidConfiguration(t *testing.T) {
	tests := []struct {
		name    string
		w, h, d int32
		bits    uint8
		wantErr error
	}{
		{name: "zero bits", w: 16, h: 16, d: 16, bits: 0, wantErr: errs.ErrInvalidBitsPerItem},
		{name: "oversized bits", w: 16, h: 16, d: 16, bits: bitpack.MaxBits + 1, wantErr: errs.ErrInvalidBitsPerItem},
		{name: "zero width", w: 0, h: 16, d: 16, bits: 2, wantErr: errs.ErrInvalidDimension},
		{name: "negative height", w: 16, h: -1, d: 16, bits: 2, wantErr: errs.ErrInvalidDimension},
		{name: "zero depth", w: 16, h: 16, d: 0, bits: 2, wantErr: errs.ErrInvalidDimension},
		{name: "oversized width", w: MaxDimension + 1, h: 1, d: 1, bits: 2, wantErr: errs.ErrInvalidDimension},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.w, tt.h, tt.d, tt.bits)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ==============================================================================
// Get/Set Tests
// ==============================================================================

func TestSetAndGetItem(t *testing.T) {
	sec := newTestSection(t, 4)
	pos1 := Pos{X: 15, Y: 1, Z: 1}
	pos2 := Pos{X: 15, Y: 1, Z: 2}

	require.NoError(t, sec.SetItem(pos1, 3))
	require.NoError(t, sec.SetItem(pos1, 2))
	require.NoError(t, sec.SetItem(pos2, 1))

	item, err := sec.Item(pos1)
	require.NoError(t, err)
	require.Equal(t, uint64(2), item)

	item, err = sec.Item(pos2)
	require.NoError(t, err)
	require.Equal(t, uint64(1), item)
}

func TestRoundTripAllPositions(t *testing.T) {
	sec, err := New(4, 3, 5, 4)
	require.NoError(t, err)

	for x := int32(0); x < 4; x++ {
		for y := int32(0); y < 3; y++ {
			for z := int32(0); z < 5; z++ {
				item := uint64(x + y*10 + z*100)
				require.NoError(t, sec.SetItem(Pos{X: x, Y: y, Z: z}, item))
			}
		}
	}

	for x := int32(0); x < 4; x++ {
		for y := int32(0); y < 3; y++ {
			for z := int32(0); z < 5; z++ {
				item, err := sec.Item(Pos{X: x, Y: y, Z: z})
				require.NoError(t, err)
				require.Equal(t, uint64(x+y*10+z*100), item)
			}
		}
	}
}

func TestOutOfBounds(t *testing.T) {
	sec := newTestSection(t, 2)
	require.NoError(t, sec.SetItem(Pos{X: 1, Y: 2, Z: 3}, 7))

	outOfRange := []Pos{
		{X: 16, Y: 0, Z: 0},
		{X: 0, Y: 16, Z: 0},
		{X: 0, Y: 0, Z: 16},
		{X: -1, Y: 0, Z: 0},
		{X: 0, Y: -1, Z: 0},
		{X: 0, Y: 0, Z: -1},
	}
	for _, pos := range outOfRange {
		require.ErrorIs(t, sec.SetItem(pos, 99), errs.ErrOutOfBounds, "pos %+v", pos)

		_, err := sec.Item(pos)
		require.ErrorIs(t, err, errs.ErrOutOfBounds, "pos %+v", pos)
	}

	// A rejected set performs no observable mutation.
	require.Equal(t, 1, sec.PaletteLen())
	item, err := sec.Item(Pos{X: 1, Y: 2, Z: 3})
	require.NoError(t, err)
	require.Equal(t, uint64(7), item)
}

func TestIsEmpty(t *testing.T) {
	sec := newTestSection(t, 2)
	require.True(t, sec.IsEmpty())

	require.NoError(t, sec.SetItem(Pos{X: 0, Y: 0, Z: 0}, 2))
	require.False(t, sec.IsEmpty())

	// No transition back: overwriting with the same value keeps it populated.
	require.NoError(t, sec.SetItem(Pos{X: 0, Y: 0, Z: 0}, 2))
	require.False(t, sec.IsEmpty())
}

func TestUnwrittenSlots(t *testing.T) {
	sec := newTestSection(t, 2)

	// Before any set, every cell reads as the conventional empty item.
	item, err := sec.Item(Pos{X: 8, Y: 8, Z: 8})
	require.NoError(t, err)
	require.Equal(t, uint64(0), item)

	// After the first set, unwritten cells resolve through palette index 0,
	// the first value ever inserted.
	require.NoError(t, sec.SetItem(Pos{X: 0, Y: 0, Z: 0}, 5))
	item, err = sec.Item(Pos{X: 8, Y: 8, Z: 8})
	require.NoError(t, err)
	require.Equal(t, uint64(5), item)
}

// ==============================================================================
// Palette / Repack Tests
// ==============================================================================

func TestDeduplication(t *testing.T) {
	sec := newTestSection(t, 2)

	require.NoError(t, sec.SetItem(Pos{X: 0, Y: 0, Z: 0}, 9))
	require.NoError(t, sec.SetItem(Pos{X: 5, Y: 5, Z: 5}, 9))

	require.Equal(t, 1, sec.PaletteLen())
	require.Equal(t, uint8(2), sec.BitsPerItem(), "no repack for a duplicate value")
}

func TestIdempotentOverwrite(t *testing.T) {
	sec := newTestSection(t, 2)
	pos := Pos{X: 3, Y: 4, Z: 5}

	require.NoError(t, sec.SetItem(pos, 11))
	require.NoError(t, sec.SetItem(pos, 11))

	require.Equal(t, 1, sec.PaletteLen())
	item, err := sec.Item(pos)
	require.NoError(t, err)
	require.Equal(t, uint64(11), item)
}

func TestRepackGrowsBits(t *testing.T) {
	sec := newTestSection(t, 1)
	require.Equal(t, uint8(1), sec.BitsPerItem())

	positions := []Pos{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 2, Y: 0, Z: 0},
	}

	// Two distinct values fit in 1 bit (indices 0 and 1).
	require.NoError(t, sec.SetItem(positions[0], 100))
	require.NoError(t, sec.SetItem(positions[1], 200))
	require.Equal(t, uint8(1), sec.BitsPerItem())

	// The third distinct value needs index 2, forcing a repack to 2 bits.
	require.NoError(t, sec.SetItem(positions[2], 300))
	require.Equal(t, uint8(2), sec.BitsPerItem())

	for i, want := range []uint64{100, 200, 300} {
		item, err := sec.Item(positions[i])
		require.NoError(t, err)
		require.Equal(t, want, item, "position %d after repack", i)
	}
}

func TestRepackJumpsToSufficientWidth(t *testing.T) {
	sec := newTestSection(t, 1)

	// Insert 30 distinct values; the width must end at 5 bits (index 29)
	// with every value still readable.
	for i := 0; i < 30; i++ {
		pos := Pos{X: int32(i % 16), Y: int32(i / 16), Z: 3}
		require.NoError(t, sec.SetItem(pos, uint64(1000+i)))
	}

	require.Equal(t, uint8(5), sec.BitsPerItem())
	require.Equal(t, 30, sec.PaletteLen())

	for i := 0; i < 30; i++ {
		pos := Pos{X: int32(i % 16), Y: int32(i / 16), Z: 3}
		item, err := sec.Item(pos)
		require.NoError(t, err)
		require.Equal(t, uint64(1000+i), item)
	}
}

// ==============================================================================
// Independence / Copy Tests
// ==============================================================================

func TestDimensionIndependence(t *testing.T) {
	// Same capacity, different shapes: mutating one never affects the other.
	a, err := New(4, 2, 8, 2)
	require.NoError(t, err)
	b, err := New(8, 2, 4, 2)
	require.NoError(t, err)
	require.Equal(t, a.Volume(), b.Volume())

	require.NoError(t, a.SetItem(Pos{X: 3, Y: 1, Z: 7}, 42))

	require.True(t, b.IsEmpty())
	item, err := b.Item(Pos{X: 3, Y: 1, Z: 3})
	require.NoError(t, err)
	require.Equal(t, uint64(0), item)
}

func TestClone(t *testing.T) {
	sec := newTestSection(t, 1)
	pos := Pos{X: 3, Y: 5, Z: 3}
	require.NoError(t, sec.SetItem(pos, 30))

	clone := sec.Clone()
	require.Equal(t, sec.Fingerprint(), clone.Fingerprint())

	// Mutations do not leak in either direction, even across a repack.
	require.NoError(t, clone.SetItem(Pos{X: 0, Y: 0, Z: 0}, 31))
	require.NoError(t, clone.SetItem(Pos{X: 1, Y: 0, Z: 0}, 32))

	require.Equal(t, 1, sec.PaletteLen())
	require.Equal(t, 3, clone.PaletteLen())

	item, err := sec.Item(Pos{X: 0, Y: 0, Z: 0})
	require.NoError(t, err)
	require.Equal(t, uint64(30), item, "unwritten original cell resolves to its first value")

	item, err = clone.Item(pos)
	require.NoError(t, err)
	require.Equal(t, uint64(30), item)
}

func TestFingerprint(t *testing.T) {
	a := newTestSection(t, 2)
	b := newTestSection(t, 2)
	require.Equal(t, a.Fingerprint(), b.Fingerprint())

	require.NoError(t, a.SetItem(Pos{X: 1, Y: 1, Z: 1}, 5))
	require.NotEqual(t, a.Fingerprint(), b.Fingerprint())

	require.NoError(t, b.SetItem(Pos{X: 1, Y: 1, Z: 1}, 5))
	require.Equal(t, a.Fingerprint(), b.Fingerprint())
}

// ==============================================================================
// Restore Tests
// ==============================================================================

func TestRestoreRoundTrip(t *testing.T) {
	sec, err := New(2, 2, 2, 2)
	require.NoError(t, err)
	require.NoError(t, sec.SetItem(Pos{X: 0, Y: 0, Z: 0}, 10))
	require.NoError(t, sec.SetItem(Pos{X: 1, Y: 1, Z: 1}, 20))

	restored, err := Restore(2, 2, 2, sec.BitsPerItem(), sec.PaletteValues(), sec.StorageWords())
	require.NoError(t, err)
	require.Equal(t, sec.Fingerprint(), restored.Fingerprint())

	item, err := restored.Item(Pos{X: 1, Y: 1, Z: 1})
	require.NoError(t, err)
	require.Equal(t, uint64(20), item)
}

func TestRestoreValidation(t *testing.T) {
	t.Run("palette exceeds width", func(t *testing.T) {
		_, err := Restore(2, 2, 2, 1, []uint64{1, 2, 3}, make([]uint64, 1))
		require.ErrorIs(t, err, errs.ErrInvalidBitsPerItem)
	})

	t.Run("duplicate palette value", func(t *testing.T) {
		_, err := Restore(2, 2, 2, 2, []uint64{1, 1}, make([]uint64, 1))
		require.ErrorIs(t, err, errs.ErrDuplicatePaletteValue)
	})

	t.Run("wrong word count", func(t *testing.T) {
		_, err := Restore(2, 2, 2, 2, []uint64{1}, make([]uint64, 9))
		require.ErrorIs(t, err, errs.ErrPayloadTruncated)
	})

	t.Run("unissued slot index", func(t *testing.T) {
		// 8 slots at 2 bits in one word; slot 0 holds index 3 but the
		// palette only has 2 entries.
		words := []uint64{0x3}
		_, err := Restore(2, 2, 2, 2, []uint64{1, 2}, words)
		require.ErrorIs(t, err, errs.ErrInvalidPaletteIndex)
	})
}
