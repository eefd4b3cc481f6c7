package di

import (
	"github.com/defval/di"
	"github.com/mono83/slf"

	d "github.com/elyby/hyfetch/internal/dispatcher"
	"github.com/elyby/hyfetch/internal/eventsubscribers"
	"github.com/elyby/hyfetch/internal/profiles"
)

var dispatcherDiOptions = di.Options(
	di.Provide(newDispatcher,
		di.As(new(d.Emitter)),
		di.As(new(d.Subscriber)),
		di.As(new(profiles.Emitter)),
		di.As(new(eventsubscribers.Subscriber)),
	),
	di.Invoke(enableEventsHandlers),
)

func newDispatcher() d.Dispatcher {
	return d.New()
}

func enableEventsHandlers(dispatcher d.Subscriber, logger slf.Logger) {
	(&eventsubscribers.Logger{Logger: logger}).ConfigureWithDispatcher(dispatcher)
}
