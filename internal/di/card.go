package di

import (
	"github.com/defval/di"

	"github.com/elyby/hyfetch/internal/card"
)

var cardDiOptions = di.Options(
	di.Provide(card.DefaultRegistry),
	di.Provide(card.NewRenderer),
)
