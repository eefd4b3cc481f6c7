package di

import (
	"fmt"
	"os"

	"github.com/defval/di"
	"github.com/getsentry/raven-go"
	"github.com/mono83/slf"
	"github.com/mono83/slf/filters"
	"github.com/mono83/slf/wd"
	"github.com/spf13/viper"

	"github.com/elyby/hyfetch/internal/logger/receivers/sentry"
	"github.com/elyby/hyfetch/internal/logger/receivers/stderr"
	"github.com/elyby/hyfetch/internal/version"
)

var loggerDiOptions = di.Options(
	di.Provide(newLogger),
	di.Provide(newSentry),
)

type loggerParams struct {
	di.Inject

	Config      *viper.Viper  `di:""`
	SentryRaven *raven.Client `di:"" optional:"true"`
}

func newLogger(params loggerParams) (slf.Logger, error) {
	params.Config.SetDefault("log.level", "error")

	level, ok := slf.ParseType(params.Config.GetString("log.level"))
	if !ok {
		return nil, fmt.Errorf("unknown log level %s", params.Config.GetString("log.level"))
	}

	dispatcher := &slf.Dispatcher{}
	dispatcher.AddReceiver(filters.MinLogLevel(level, stderr.New(os.Stderr)))

	if params.SentryRaven != nil {
		sentryReceiver, err := sentry.NewReceiver(params.SentryRaven, "warn", "identity")
		if err != nil {
			return nil, err
		}

		dispatcher.AddReceiver(sentryReceiver)
	}

	return wd.Custom("", "", dispatcher), nil
}

func newSentry(config *viper.Viper) (*raven.Client, error) {
	sentryAddr := config.GetString("sentry.dsn")
	if sentryAddr == "" {
		return nil, nil
	}

	ravenClient, err := raven.New(sentryAddr)
	if err != nil {
		return nil, err
	}

	ravenClient.SetEnvironment("production")
	ravenClient.SetDefaultLoggerName("sentry-watchdog-receiver")
	ravenClient.SetRelease(version.Version())

	raven.DefaultClient = ravenClient

	return ravenClient, nil
}
