package card

import (
	"image"
	"time"

	"github.com/elyby/hyfetch/internal/profile"
)

// Renderer draws a profile card for one of the registered modes.
type Renderer struct {
	Modes *Registry
	Now   func() time.Time
}

func NewRenderer(modes *Registry) *Renderer {
	return &Renderer{
		Modes: modes,
		Now:   time.Now,
	}
}

func (r *Renderer) Render(mode Mode, username string, skin image.Image, summary *profile.Summary) (string, error) {
	extractor, err := r.Modes.Get(mode)
	if err != nil {
		return "", err
	}

	rows, err := RenderSkin(skin)
	if err != nil {
		return "", err
	}

	return Present(ResolveRank(summary), username, rows, extractor.Extract(summary), r.Now()), nil
}
