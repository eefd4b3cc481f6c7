package card

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSkin(width int, height int) *image.NRGBA {
	texture := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			texture.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 7, A: 255})
		}
	}

	// The hat layer is transparent by default
	for y := 8; y < 16; y++ {
		for x := 40; x < 48; x++ {
			texture.SetNRGBA(x, y, color.NRGBA{})
		}
	}

	return texture
}

func TestRenderSkin(t *testing.T) {
	texture := newSkin(64, 64)
	// Paint a hair pixel over the face in the top left corner
	texture.SetNRGBA(40, 8, color.NRGBA{R: 200, G: 100, B: 50, A: 255})

	rows, err := RenderSkin(texture)
	require.NoError(t, err)
	require.Len(t, rows, 8)

	for i, row := range rows {
		assert.Equal(t, 8, strings.Count(row, "██"), "row %d", i)
		assert.True(t, strings.HasSuffix(row, Reset), "row %d", i)
	}

	assert.True(t, strings.HasPrefix(rows[0], "\033[38;2;200;100;50m██\033[38;2;9;8;7m██"))
	assert.True(t, strings.HasPrefix(rows[7], "\033[38;2;8;15;7m██"))
	assert.True(t, strings.HasSuffix(rows[7], "\033[38;2;15;15;7m██"+Reset))
}

func TestRenderSkinWithShiftedBounds(t *testing.T) {
	texture := newSkin(80, 80).SubImage(image.Rect(4, 4, 68, 68))

	rows, err := RenderSkin(texture)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(rows[0], "\033[38;2;12;12;7m██"))
}

func TestRenderSkinWithPalettedTexture(t *testing.T) {
	palette := color.Palette{color.NRGBA{A: 0}, color.NRGBA{R: 255, A: 255}}
	texture := image.NewPaletted(image.Rect(0, 0, 64, 64), palette)
	for y := 8; y < 16; y++ {
		for x := 8; x < 16; x++ {
			texture.SetColorIndex(x, y, 1)
		}
	}

	rows, err := RenderSkin(texture)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("\033[38;2;255;0;0m██", 8)+Reset, rows[3])
}

func TestRenderSkinMalformed(t *testing.T) {
	for _, size := range [][2]int{{64, 32}, {32, 64}, {8, 8}, {0, 0}} {
		_, err := RenderSkin(newSkin(size[0], size[1]))
		assert.ErrorIs(t, err, ErrMalformedTexture)
	}

	_, err := RenderSkin(nil)
	assert.ErrorIs(t, err, ErrMalformedTexture)
}
