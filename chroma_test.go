package chroma

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/chroma/format"
	"github.com/arloliu/chroma/section"
	"github.com/arloliu/chroma/snapshot"
)

func TestNewStandard(t *testing.T) {
	sec, err := NewStandard(2)
	require.NoError(t, err)

	width, height, depth := sec.Dimensions()
	require.Equal(t, int32(StandardDimension), width)
	require.Equal(t, int32(StandardDimension), height)
	require.Equal(t, int32(StandardDimension), depth)
	require.True(t, sec.IsEmpty())
}

func TestMarshalUnmarshal(t *testing.T) {
	sec, err := New(8, 8, 8, 2)
	require.NoError(t, err)

	require.NoError(t, sec.SetItem(section.Pos{X: 1, Y: 2, Z: 3}, 77))
	require.NoError(t, sec.SetItem(section.Pos{X: 7, Y: 7, Z: 7}, 88))

	data, err := Marshal(sec, snapshot.WithCompression(format.CompressionLZ4))
	require.NoError(t, err)

	restored, err := Unmarshal(data)
	require.NoError(t, err)
	require.Equal(t, sec.Fingerprint(), restored.Fingerprint())

	item, err := restored.Item(section.Pos{X: 1, Y: 2, Z: 3})
	require.NoError(t, err)
	require.Equal(t, uint64(77), item)
}
