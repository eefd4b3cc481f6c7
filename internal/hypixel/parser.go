package hypixel

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"github.com/elyby/hyfetch/internal/profile"
)

var ErrInvalidPayload = errors.New("invalid player payload")

// ParsePlayer reads the player document once and decides for every game mode
// whether the player has ever played it.
func ParsePlayer(body []byte) (*profile.Summary, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: not a json", ErrInvalidPayload)
	}

	player := gjson.GetBytes(body, "player")
	if !player.IsObject() {
		return nil, ErrPlayerNotFound
	}

	id, err := uuid.Parse(player.Get("uuid").String())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	summary := &profile.Summary{
		Uuid:               id,
		DisplayName:        player.Get("displayname").String(),
		PackageRank:        player.Get("packageRank").String(),
		NewPackageRank:     player.Get("newPackageRank").String(),
		MonthlyPackageRank: player.Get("monthlyPackageRank").String(),
		StaffRank:          player.Get("rank").String(),
		RankPlusColor:      player.Get("rankPlusColor").String(),
		FirstLogin:         millis(player.Get("firstLogin")),
		LastLogin:          millis(player.Get("lastLogin")),
		LastLogout:         millis(player.Get("lastLogout")),
		Karma:              player.Get("karma").Int(),
		MostRecentGameType: player.Get("mostRecentGameType").String(),
		SocialMedia: profile.SocialMedia{
			Discord: player.Get("socialMedia.links.DISCORD").String(),
			Twitter: player.Get("socialMedia.links.TWITTER").String(),
			Youtube: player.Get("socialMedia.links.YOUTUBE").String(),
		},
	}

	stats := player.Get("stats")

	if bedwars := stats.Get("Bedwars"); bedwars.Get("games_played_bedwars").Exists() {
		summary.Bedwars = &profile.BedwarsStats{
			GamesPlayed: bedwars.Get("games_played_bedwars").Int(),
			Kills:       bedwars.Get("kills_bedwars").Int(),
			Deaths:      bedwars.Get("deaths_bedwars").Int(),
			FinalKills:  bedwars.Get("final_kills_bedwars").Int(),
			FinalDeaths: bedwars.Get("final_deaths_bedwars").Int(),
			BedsBroken:  bedwars.Get("beds_broken_bedwars").Int(),
			BedsLost:    bedwars.Get("beds_lost_bedwars").Int(),
		}
	}

	if skywars := stats.Get("SkyWars"); skywars.Get("games_played_skywars").Exists() {
		summary.Skywars = &profile.SkywarsStats{
			GamesPlayed: skywars.Get("games_played_skywars").Int(),
			Kills:       skywars.Get("kills").Int(),
			Deaths:      skywars.Get("deaths").Int(),
			Tokens:      skywars.Get("cosmetic_tokens").Int(),
			Souls:       skywars.Get("souls").Int(),
			Wins:        skywars.Get("wins").Int(),
			Losses:      skywars.Get("losses").Int(),
		}
	}

	if duels := stats.Get("Duels"); duels.Get("coins").Exists() {
		summary.Duels = &profile.DuelsStats{
			Wins:   duels.Get("wins").Int(),
			Losses: duels.Get("losses").Int(),
			Coins:  duels.Get("coins").Int(),
		}
	}

	return summary, nil
}

// ParseFriends counts the records of the friends document. A missing list counts as no friends.
func ParseFriends(body []byte) (int, error) {
	if !gjson.ValidBytes(body) {
		return 0, fmt.Errorf("%w: not a json", ErrInvalidPayload)
	}

	records := gjson.GetBytes(body, "records")
	if !records.IsArray() {
		return 0, nil
	}

	return len(records.Array()), nil
}

func millis(value gjson.Result) time.Time {
	if !value.Exists() || value.Int() == 0 {
		return time.Time{}
	}

	return time.UnixMilli(value.Int()).UTC()
}
