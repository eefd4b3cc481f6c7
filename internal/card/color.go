package card

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

const Reset = "\033[0m"

// ColorSource is anything which may resolve into a concrete color:
// a skin pixel or a named Minecraft chat color.
type ColorSource interface {
	NRGBA() (color.NRGBA, bool)
}

// Pixel is a single non-premultiplied sample of a skin texture.
// Zero alpha means the pixel is transparent.
type Pixel color.NRGBA

func (p Pixel) NRGBA() (color.NRGBA, bool) {
	return color.NRGBA(p), true
}

// Named is a Minecraft chat color name, like "GOLD" or "DARK_AQUA".
type Named string

func (n Named) NRGBA() (color.NRGBA, bool) {
	c, ok := palette[string(n)]
	if !ok {
		return color.NRGBA{}, false
	}

	r, g, b := c.RGB255()

	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, true
}

// IsKnown reports whether the name exists in the chat colors palette.
func (n Named) IsKnown() bool {
	_, ok := palette[string(n)]
	return ok
}

var palette = map[string]colorful.Color{
	"BLACK":        mustHex("#000000"),
	"DARK_BLUE":    mustHex("#0000aa"),
	"DARK_GREEN":   mustHex("#00aa00"),
	"DARK_AQUA":    mustHex("#00aaaa"),
	"DARK_RED":     mustHex("#aa0000"),
	"DARK_PURPLE":  mustHex("#aa00aa"),
	"GOLD":         mustHex("#ffaa00"),
	"GRAY":         mustHex("#aaaaaa"),
	"GREY":         mustHex("#aaaaaa"),
	"DARK_GRAY":    mustHex("#555555"),
	"DARK_GREY":    mustHex("#555555"),
	"BLUE":         mustHex("#5555ff"),
	"GREEN":        mustHex("#55ff55"),
	"AQUA":         mustHex("#55ffff"),
	"RED":          mustHex("#ff5555"),
	"LIGHT_PURPLE": mustHex("#ff55ff"),
	"YELLOW":       mustHex("#ffff55"),
	"WHITE":        mustHex("#ffffff"),
}

func mustHex(hex string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		panic(err)
	}

	return c
}

// Resolve returns the truecolor foreground sequence for the primary color.
// An overlay with non-zero alpha takes precedence over the primary color.
// When nothing resolves, the reset sequence is returned.
func Resolve(primary ColorSource, overlay ColorSource) string {
	if overlay != nil {
		if c, ok := overlay.NRGBA(); ok && c.A != 0 {
			return foreground(c)
		}
	}

	if primary != nil {
		if c, ok := primary.NRGBA(); ok {
			return foreground(c)
		}
	}

	return Reset
}

func foreground(c color.NRGBA) string {
	return fmt.Sprintf("\033[38;2;%d;%d;%dm", c.R, c.G, c.B)
}
