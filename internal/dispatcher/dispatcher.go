package dispatcher

import "github.com/asaskevich/EventBus"

const (
	// Args: username string, err error
	MojangUserAfterCall = "mojang:user:after_call"
	// Args: uuid string, err error
	HypixelPlayerAfterCall = "hypixel:player:after_call"
	// Args: uuid string, err error
	HypixelFriendsAfterCall = "hypixel:friends:after_call"
	// Args: mode string, username string, err error
	CardAfterRender = "card:after_render"
)

type Subscriber interface {
	Subscribe(topic string, fn interface{})
}

type Emitter interface {
	Emit(topic string, args ...interface{})
}

type Dispatcher interface {
	Subscriber
	Emitter
}

type localEventDispatcher struct {
	bus EventBus.Bus
}

func (d *localEventDispatcher) Subscribe(topic string, fn interface{}) {
	_ = d.bus.Subscribe(topic, fn)
}

func (d *localEventDispatcher) Emit(topic string, args ...interface{}) {
	d.bus.Publish(topic, args...)
}

func New() Dispatcher {
	return &localEventDispatcher{
		bus: EventBus.New(),
	}
}
