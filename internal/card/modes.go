package card

import (
	"errors"
	"fmt"
	"sort"

	"github.com/elyby/hyfetch/internal/profile"
)

type Mode string

const (
	ModeGeneral Mode = "general"
	ModeBedwars Mode = "bedwars"
	ModeSkywars Mode = "skywars"
	ModeDuels   Mode = "duels"
)

var ErrUnknownMode = errors.New("unknown mode")

// Extractor produces the ordered stat lines of a single game mode.
type Extractor interface {
	Extract(summary *profile.Summary) []StatLine
}

type ExtractorFunc func(summary *profile.Summary) []StatLine

func (f ExtractorFunc) Extract(summary *profile.Summary) []StatLine {
	return f(summary)
}

// FriendsAware is implemented by extractors which display the friends count,
// so the caller knows that the friends list has to be fetched.
type FriendsAware interface {
	NeedsFriends() bool
}

type Registry struct {
	extractors map[Mode]Extractor
}

func NewRegistry() *Registry {
	return &Registry{extractors: make(map[Mode]Extractor)}
}

// DefaultRegistry returns a registry with all the built-in modes.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(ModeGeneral, &General{})
	r.Register(ModeBedwars, ExtractorFunc(Bedwars))
	r.Register(ModeSkywars, ExtractorFunc(Skywars))
	r.Register(ModeDuels, ExtractorFunc(Duels))

	return r
}

func (r *Registry) Register(mode Mode, extractor Extractor) {
	r.extractors[mode] = extractor
}

func (r *Registry) Get(mode Mode) (Extractor, error) {
	extractor, ok := r.extractors[mode]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMode, mode)
	}

	return extractor, nil
}

// NeedsFriends reports whether the mode displays the friends count.
func (r *Registry) NeedsFriends(mode Mode) bool {
	extractor, ok := r.extractors[mode]
	if !ok {
		return false
	}

	aware, ok := extractor.(FriendsAware)

	return ok && aware.NeedsFriends()
}

func (r *Registry) Modes() []Mode {
	modes := make([]Mode, 0, len(r.extractors))
	for mode := range r.extractors {
		modes = append(modes, mode)
	}

	sort.Slice(modes, func(i, j int) bool {
		return modes[i] < modes[j]
	})

	return modes
}

func neverPlayed(mode Mode) []StatLine {
	return []StatLine{Literal("this player has never played " + string(mode))}
}

type General struct{}

func (*General) NeedsFriends() bool {
	return true
}

func (*General) Extract(s *profile.Summary) []StatLine {
	var lastOnline Value = Timestamp(s.LastLogout)
	if s.IsOnline() {
		lastOnline = Text("now")
	}

	return []StatLine{
		Keyed{"first joined", Timestamp(s.FirstLogin)},
		Keyed{"last online", lastOnline},
		Keyed{"karma", Number(s.Karma)},
		Keyed{"friends", Number(s.Friends)},
		Keyed{"most recent game played", Text(profile.GameName(s.MostRecentGameType))},
		Keyed{"discord", Text(s.SocialMedia.Discord)},
		Keyed{"twitter", Text(s.SocialMedia.Twitter)},
		Keyed{"youtube", Text(s.SocialMedia.Youtube)},
	}
}

func Bedwars(s *profile.Summary) []StatLine {
	stats := s.Bedwars
	if stats == nil {
		return neverPlayed(ModeBedwars)
	}

	return []StatLine{
		Keyed{"games played", Number(stats.GamesPlayed)},
		Keyed{"kdr", ratioWithCounts(stats.Kills, "kills", stats.Deaths, "deaths")},
		Keyed{"fkdr", ratioWithCounts(stats.FinalKills, "final kills", stats.FinalDeaths, "final deaths")},
		Keyed{"beds broken", Number(stats.BedsBroken)},
		Keyed{"beds lost", Number(stats.BedsLost)},
	}
}

func Skywars(s *profile.Summary) []StatLine {
	stats := s.Skywars
	if stats == nil {
		return neverPlayed(ModeSkywars)
	}

	return []StatLine{
		Keyed{"games played", Number(stats.GamesPlayed)},
		Keyed{"kdr", ratioWithCounts(stats.Kills, "kills", stats.Deaths, "deaths")},
		Keyed{"tokens", Number(stats.Tokens)},
		Keyed{"souls", Number(stats.Souls)},
		Keyed{"wins", Number(stats.Wins)},
		Keyed{"losses", Number(stats.Losses)},
	}
}

func Duels(s *profile.Summary) []StatLine {
	stats := s.Duels
	if stats == nil {
		return neverPlayed(ModeDuels)
	}

	return []StatLine{
		Keyed{"wlr", ratioWithCounts(stats.Wins, "wins", stats.Losses, "losses")},
		Keyed{"rounds played", Number(stats.Wins + stats.Losses)},
		Keyed{"coins", Number(stats.Coins)},
	}
}
