package card

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strings"
)

const (
	Rows = 8

	skinWidth  = 64
	skinHeight = 64

	headX        = 8
	headY        = 8
	headOverlayX = 40
	headSize     = 8

	glyph = "██"
)

var ErrMalformedTexture = errors.New("malformed skin texture")

// RenderSkin draws the front side of the skin's head as 8 rows of colored blocks.
// The hat layer is painted over the face wherever it isn't transparent.
func RenderSkin(texture image.Image) ([Rows]string, error) {
	var rows [Rows]string
	if texture == nil {
		return rows, fmt.Errorf("%w: no texture", ErrMalformedTexture)
	}

	bounds := texture.Bounds()
	if bounds.Dx() < skinWidth || bounds.Dy() < skinHeight {
		return rows, fmt.Errorf("%w: expected at least %dx%d, got %dx%d", ErrMalformedTexture, skinWidth, skinHeight, bounds.Dx(), bounds.Dy())
	}

	for i := 0; i < headSize; i++ {
		var row strings.Builder
		for x := 0; x < headSize; x++ {
			base := pixelAt(texture, bounds.Min.X+x+headX, bounds.Min.Y+i+headY)
			overlay := pixelAt(texture, bounds.Min.X+x+headOverlayX, bounds.Min.Y+i+headY)
			row.WriteString(Resolve(base, overlay))
			row.WriteString(glyph)
		}

		row.WriteString(Reset)
		rows[i] = row.String()
	}

	return rows, nil
}

func pixelAt(texture image.Image, x int, y int) Pixel {
	if nrgba, ok := texture.(*image.NRGBA); ok {
		return Pixel(nrgba.NRGBAAt(x, y))
	}

	return Pixel(color.NRGBAModel.Convert(texture.At(x, y)).(color.NRGBA))
}
