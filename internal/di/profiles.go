package di

import (
	"github.com/defval/di"

	"github.com/elyby/hyfetch/internal/profiles"
)

var profilesDiOptions = di.Options(
	di.Provide(newProfilesProvider),
)

func newProfilesProvider(
	mojangApi profiles.MojangApi,
	hypixelApi profiles.HypixelApi,
	emitter profiles.Emitter,
) *profiles.Provider {
	return profiles.NewProvider(mojangApi, hypixelApi, emitter)
}
