package mojang

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/png"

	"golang.org/x/image/draw"
)

var ErrNoSkin = errors.New("the profile has no skin texture")

// DecodeSkin turns the base64 encoded PNG file into a non-premultiplied RGBA image
func DecodeSkin(data string) (*image.NRGBA, error) {
	if data == "" {
		return nil, ErrNoSkin
	}

	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("unable to decode skin data: %w", err)
	}

	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("unable to decode skin image: %w", err)
	}

	if nrgba, ok := img.(*image.NRGBA); ok {
		return nrgba, nil
	}

	bounds := img.Bounds()
	result := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(result, result.Bounds(), img, bounds.Min, draw.Src)

	return result, nil
}

// Skin decodes the skin attached to the user response
func (r *UserResponse) Skin() (*image.NRGBA, error) {
	if r.Textures == nil || r.Textures.Skin == nil {
		return nil, ErrNoSkin
	}

	return DecodeSkin(r.Textures.Skin.Data)
}
