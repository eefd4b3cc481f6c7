package profiles

import (
	"context"
	"fmt"
	"image"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/elyby/hyfetch/internal/dispatcher"
	"github.com/elyby/hyfetch/internal/hypixel"
	"github.com/elyby/hyfetch/internal/mojang"
	"github.com/elyby/hyfetch/internal/profile"
)

type MojangApi interface {
	User(ctx context.Context, username string) (*mojang.UserResponse, error)
}

type HypixelApi interface {
	Player(ctx context.Context, id uuid.UUID) ([]byte, error)
	Friends(ctx context.Context, id uuid.UUID) ([]byte, error)
}

type Emitter interface {
	dispatcher.Emitter
}

// Profile is everything required to render a card for a single player
type Profile struct {
	Username string
	Skin     image.Image
	Summary  *profile.Summary
}

type Provider struct {
	MojangApi
	HypixelApi
	Emitter
}

func NewProvider(mojangApi MojangApi, hypixelApi HypixelApi, emitter Emitter) *Provider {
	return &Provider{
		MojangApi:  mojangApi,
		HypixelApi: hypixelApi,
		Emitter:    emitter,
	}
}

// Fetch resolves the username into the Mojang profile with its skin and then loads
// the Hypixel player data. The friends list is requested in parallel with the player
// document only when withFriends is set.
func (p *Provider) Fetch(ctx context.Context, username string, withFriends bool) (*Profile, error) {
	user, err := p.MojangApi.User(ctx, username)
	p.Emit(dispatcher.MojangUserAfterCall, username, err)
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve the Mojang profile: %w", err)
	}

	skin, err := user.Skin()
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve the skin: %w", err)
	}

	id, err := uuid.Parse(user.Uuid)
	if err != nil {
		return nil, fmt.Errorf("unable to parse uuid %q: %w", user.Uuid, err)
	}

	var summary *profile.Summary
	friends := 0

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		body, err := p.HypixelApi.Player(groupCtx, id)
		p.Emit(dispatcher.HypixelPlayerAfterCall, id.String(), err)
		if err != nil {
			return fmt.Errorf("unable to retrieve the Hypixel player: %w", err)
		}

		summary, err = hypixel.ParsePlayer(body)

		return err
	})

	if withFriends {
		group.Go(func() error {
			body, err := p.HypixelApi.Friends(groupCtx, id)
			p.Emit(dispatcher.HypixelFriendsAfterCall, id.String(), err)
			if err != nil {
				return fmt.Errorf("unable to retrieve the friends list: %w", err)
			}

			friends, err = hypixel.ParseFriends(body)

			return err
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	summary.Friends = friends

	return &Profile{
		Username: user.Username,
		Skin:     skin,
		Summary:  summary,
	}, nil
}
