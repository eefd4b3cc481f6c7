package eventsubscribers

import (
	"context"
	"errors"
	"net"

	"github.com/mono83/slf"
	"github.com/mono83/slf/wd"

	"github.com/elyby/hyfetch/internal/dispatcher"
	"github.com/elyby/hyfetch/internal/hypixel"
	"github.com/elyby/hyfetch/internal/mojang"
)

type Subscriber interface {
	dispatcher.Subscriber
}

type Logger struct {
	slf.Logger
}

func (l *Logger) ConfigureWithDispatcher(d Subscriber) {
	d.Subscribe(dispatcher.MojangUserAfterCall, l.createApiErrorHandler("mojang"))
	d.Subscribe(dispatcher.HypixelPlayerAfterCall, l.createApiErrorHandler("hypixel"))
	d.Subscribe(dispatcher.HypixelFriendsAfterCall, l.createApiErrorHandler("hypixel"))
	d.Subscribe(dispatcher.CardAfterRender, l.handleAfterRender)
}

func (l *Logger) createApiErrorHandler(provider string) func(identity string, err error) {
	providerParam := wd.NameParam(provider)
	return func(identity string, err error) {
		identityParam := wd.StringParam("identity", identity)
		if err == nil {
			l.Debug(":name: successfully fetched :identity", providerParam, identityParam)
			return
		}

		errParam := wd.ErrParam(err)

		var netErr net.Error
		switch {
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			l.Warning(":name: request for :identity was cancelled: :err", providerParam, identityParam, errParam)
		case errors.As(err, &netErr):
			l.Warning(":name: network error while fetching :identity: :err", providerParam, identityParam, errParam)
		case isExpectedApiError(err):
			l.Warning(":name: :err", providerParam, errParam)
		default:
			l.Error(":name: unexpected response for :identity: :err", providerParam, identityParam, errParam)
		}
	}
}

func (l *Logger) handleAfterRender(mode string, username string, err error) {
	if err == nil {
		l.Debug("Rendered :mode card for :username", wd.StringParam("mode", mode), wd.StringParam("username", username))
		return
	}

	l.Error("Unable to render :mode card for :username: :err", wd.StringParam("mode", mode), wd.StringParam("username", username), wd.ErrParam(err))
}

func isExpectedApiError(err error) bool {
	if errors.Is(err, mojang.ErrUserNotFound) || errors.Is(err, mojang.ErrInvalidUsername) || errors.Is(err, hypixel.ErrPlayerNotFound) {
		return true
	}

	var (
		mojangBadRequest  *mojang.BadRequestError
		mojangForbidden   *mojang.ForbiddenError
		mojangTooMany     *mojang.TooManyRequestsError
		hypixelBadRequest *hypixel.BadRequestError
		hypixelForbidden  *hypixel.ForbiddenError
		hypixelTooMany    *hypixel.TooManyRequestsError
	)

	return errors.As(err, &mojangBadRequest) ||
		errors.As(err, &mojangForbidden) ||
		errors.As(err, &mojangTooMany) ||
		errors.As(err, &hypixelBadRequest) ||
		errors.As(err, &hypixelForbidden) ||
		errors.As(err, &hypixelTooMany)
}
