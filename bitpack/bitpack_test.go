package bitpack

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/chroma/errs"
)

func TestNew(t *testing.T) {
	a, err := New(4096, 4)
	require.NoError(t, err)
	require.Equal(t, 4096, a.Len())
	require.Equal(t, uint8(4), a.Bits())
	// 4096 slots * 4 bits = 16384 bits = 256 words
	require.Len(t, a.Words(), 256)

	for slot := 0; slot < a.Len(); slot += 257 {
		require.Equal(t, uint32(0), a.Get(slot))
	}
}

func TestNewInvalidBits(t *testing.T) {
	_, err := New(64, 0)
	require.ErrorIs(t, err, errs.ErrInvalidBitsPerItem)

	_, err = New(64, MaxBits+1)
	require.ErrorIs(t, err, errs.ErrInvalidBitsPerItem)
}

func TestWordCount(t *testing.T) {
	tests := []struct {
		name  string
		slots int
		bits  uint8
		want  int
	}{
		{name: "exact fit", slots: 64, bits: 1, want: 1},
		{name: "one bit over", slots: 65, bits: 1, want: 2},
		{name: "straddling width", slots: 64, bits: 5, want: 5},
		{name: "full width", slots: 3, bits: 32, want: 2},
		{name: "single slot", slots: 1, bits: 7, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, WordCount(tt.slots, tt.bits))
		})
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	// Widths that divide 64 evenly and widths that force values to straddle
	// word boundaries.
	for _, bitWidth := range []uint8{1, 2, 3, 4, 5, 7, 8, 11, 13, 16, 21, 31, 32} {
		a, err := New(300, bitWidth)
		require.NoError(t, err)

		mask := uint32(uint64(1)<<bitWidth - 1)
		for slot := 0; slot < a.Len(); slot++ {
			a.Set(slot, uint32(slot*2654435761)&mask)
		}
		for slot := 0; slot < a.Len(); slot++ {
			require.Equal(t, uint32(slot*2654435761)&mask, a.Get(slot),
				"width %d slot %d", bitWidth, slot)
		}
	}
}

func TestSetOverwrite(t *testing.T) {
	a, err := New(100, 5)
	require.NoError(t, err)

	// Slot 12 occupies bits 60-64, straddling the first word boundary.
	a.Set(12, 0b10101)
	require.Equal(t, uint32(0b10101), a.Get(12))

	a.Set(12, 0b01010)
	require.Equal(t, uint32(0b01010), a.Get(12))

	// Neighbors must be untouched by straddled writes.
	a.Set(11, 31)
	a.Set(13, 31)
	a.Set(12, 0)
	require.Equal(t, uint32(31), a.Get(11))
	require.Equal(t, uint32(0), a.Get(12))
	require.Equal(t, uint32(31), a.Get(13))
}

func TestSetGetPanics(t *testing.T) {
	a, err := New(16, 3)
	require.NoError(t, err)

	require.Panics(t, func() { a.Get(-1) })
	require.Panics(t, func() { a.Get(16) })
	require.Panics(t, func() { a.Set(16, 0) })
	require.Panics(t, func() { a.Set(0, 8) }) // 8 needs 4 bits
}

func TestResizePreservesValues(t *testing.T) {
	a, err := New(200, 1)
	require.NoError(t, err)

	for slot := 0; slot < a.Len(); slot++ {
		a.Set(slot, uint32(slot%2))
	}

	require.NoError(t, a.Resize(7))
	require.Equal(t, uint8(7), a.Bits())
	require.Len(t, a.Words(), WordCount(200, 7))

	for slot := 0; slot < a.Len(); slot++ {
		require.Equal(t, uint32(slot%2), a.Get(slot))
	}

	// Wider values fit after the resize.
	a.Set(0, 127)
	require.Equal(t, uint32(127), a.Get(0))
}

func TestResizeInvalid(t *testing.T) {
	a, err := New(64, 8)
	require.NoError(t, err)

	require.ErrorIs(t, a.Resize(0), errs.ErrInvalidBitsPerItem)
	require.ErrorIs(t, a.Resize(MaxBits+1), errs.ErrInvalidBitsPerItem)
	require.ErrorIs(t, a.Resize(7), errs.ErrInvalidBitsPerItem)

	// Same width is a no-op.
	require.NoError(t, a.Resize(8))
	require.Equal(t, uint8(8), a.Bits())
}

func TestNewFromWords(t *testing.T) {
	a, err := New(100, 6)
	require.NoError(t, err)
	for slot := 0; slot < a.Len(); slot++ {
		a.Set(slot, uint32(slot)%64)
	}

	b, err := NewFromWords(100, 6, a.Words())
	require.NoError(t, err)
	for slot := 0; slot < b.Len(); slot++ {
		require.Equal(t, a.Get(slot), b.Get(slot))
	}

	// The copy must not alias the source words.
	b.Set(0, 63)
	require.Equal(t, uint32(0), a.Get(0))
}

func TestNewFromWordsInvalid(t *testing.T) {
	_, err := NewFromWords(100, 6, make([]uint64, 3))
	require.ErrorIs(t, err, errs.ErrPayloadTruncated)

	_, err = NewFromWords(100, 0, nil)
	require.ErrorIs(t, err, errs.ErrInvalidBitsPerItem)
}

func TestClone(t *testing.T) {
	a, err := New(50, 9)
	require.NoError(t, err)
	for slot := 0; slot < a.Len(); slot++ {
		a.Set(slot, uint32(slot*11)%512)
	}

	c := a.Clone()
	require.Equal(t, a.Len(), c.Len())
	require.Equal(t, a.Bits(), c.Bits())

	c.Set(10, 500)
	require.Equal(t, uint32(110), a.Get(10))
	require.Equal(t, uint32(500), c.Get(10))
}
