package di

import (
	"net/http"
	"net/url"

	"github.com/defval/di"
	"github.com/spf13/viper"

	"github.com/elyby/hyfetch/internal/mojang"
	"github.com/elyby/hyfetch/internal/profiles"
)

var mojangDiOptions = di.Options(
	di.Provide(newMojangApi, di.As(new(profiles.MojangApi))),
)

func newMojangApi(config *viper.Viper, httpClient *http.Client) (*mojang.MojangApi, error) {
	userUrl := config.GetString("mojang.user_url")
	if userUrl != "" {
		if _, err := url.ParseRequestURI(userUrl); err != nil {
			return nil, err
		}
	}

	return mojang.NewMojangApi(httpClient, userUrl), nil
}
