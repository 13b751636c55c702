package page

import (
	"image"
	"testing"

	"github.com/bodgit/rcd/sprite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	pages []*image.Paletted
}

func (r *recorder) WritePage(m *image.Paletted) error {
	r.pages = append(r.pages, m)
	return nil
}

func solid(width, height int, index uint8) *sprite.Sprite {
	m := image.NewPaletted(image.Rect(0, 0, width, height), sprite.Palette)
	for i := range m.Pix {
		m.Pix[i] = index
	}
	return &sprite.Sprite{Image: m}
}

func TestLabel(t *testing.T) {
	assert.Equal(t, [labelRows]string{" x xxx", " x x x", " x xxx", " x   x", " x xx "}, label(19))
	assert.Equal(t, 2, labelWidth(1))
	assert.Equal(t, 5, labelWidth(4))
	assert.Equal(t, 11, labelWidth(140))
}

func TestCompositorAdd(t *testing.T) {
	r := new(recorder)
	c := New(r)
	assert.False(t, c.Pending())

	require.NoError(t, c.Add(solid(3, 2, 42), 1))
	require.NoError(t, c.Add(solid(20, 4, 43), 2))
	assert.True(t, c.Pending())
	assert.Empty(t, r.pages)

	require.NoError(t, c.Flush())
	assert.False(t, c.Pending())
	require.Len(t, r.pages, 1)
	m := r.pages[0]

	assert.Equal(t, image.Rect(0, 0, Width, Height), m.Bounds())
	assert.Equal(t, uint8(42), m.ColorIndexAt(10, 10))
	assert.Equal(t, uint8(42), m.ColorIndexAt(12, 11))
	assert.Equal(t, uint8(sprite.Background), m.ColorIndexAt(13, 10))
	assert.Equal(t, uint8(sprite.Background), m.ColorIndexAt(10, 12))

	// Label "1" is a single column one pixel in
	for y := 4; y < 9; y++ {
		assert.Equal(t, uint8(sprite.Background), m.ColorIndexAt(10, y))
		assert.Equal(t, uint8(sprite.Label), m.ColorIndexAt(11, y))
	}

	// Second sprite starts after the first plus the margin
	assert.Equal(t, uint8(43), m.ColorIndexAt(23, 10))
	assert.Equal(t, uint8(43), m.ColorIndexAt(42, 13))
	assert.Equal(t, uint8(sprite.Background), m.ColorIndexAt(22, 10))

	// Nothing more to write
	require.NoError(t, c.Flush())
	assert.Len(t, r.pages, 1)
}

func TestCompositorWrap(t *testing.T) {
	r := new(recorder)
	c := New(r)

	require.NoError(t, c.Add(solid(1000, 30, 50), 1))
	require.NoError(t, c.Add(solid(200, 10, 51), 2))
	require.NoError(t, c.Flush())
	require.Len(t, r.pages, 1)
	m := r.pages[0]

	// 10 + 1000 + 10 + 200 overflows, so the second sprite goes below
	assert.Equal(t, uint8(51), m.ColorIndexAt(10, 50))
	assert.Equal(t, uint8(sprite.Background), m.ColorIndexAt(1020, 10))
}

func TestCompositorNewPage(t *testing.T) {
	r := new(recorder)
	c := New(r)

	require.NoError(t, c.Add(solid(1100, 3000, 60), 1))
	require.NoError(t, c.Add(solid(1100, 3000, 61), 2))
	require.Len(t, r.pages, 1)
	require.NoError(t, c.Flush())
	require.Len(t, r.pages, 2)

	assert.Equal(t, uint8(60), r.pages[0].ColorIndexAt(10, 10))
	assert.Equal(t, uint8(61), r.pages[1].ColorIndexAt(10, 10))
}

func TestCompositorTooLarge(t *testing.T) {
	c := New(new(recorder))

	assert.Equal(t, ErrTooLarge, c.Add(solid(Width, 1, 1), 1))
	assert.Equal(t, ErrTooLarge, c.Add(solid(1, Height, 1), 1))
	assert.False(t, c.Pending())
}
