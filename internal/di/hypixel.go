package di

import (
	"net/http"
	"net/url"

	"github.com/defval/di"
	"github.com/spf13/viper"

	"github.com/elyby/hyfetch/internal/config"
	"github.com/elyby/hyfetch/internal/hypixel"
	"github.com/elyby/hyfetch/internal/profiles"
)

var hypixelDiOptions = di.Options(
	di.Provide(newHypixelApi, di.As(new(profiles.HypixelApi))),
)

func newHypixelApi(cfg *viper.Viper, httpClient *http.Client) (*hypixel.HypixelApi, error) {
	apiUrl := cfg.GetString("hypixel.api_url")
	if apiUrl != "" {
		if _, err := url.ParseRequestURI(apiUrl); err != nil {
			return nil, err
		}
	}

	return hypixel.NewHypixelApi(httpClient, apiUrl, cfg.GetString(config.ApiKey)), nil
}
