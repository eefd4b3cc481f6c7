package profile

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var gameNames = map[string]string{
	"ARCADE":         "Arcade",
	"ARENA":          "Arena Brawl",
	"BATTLEGROUND":   "Warlords",
	"BEDWARS":        "Bed Wars",
	"BUILD_BATTLE":   "Build Battle",
	"DUELS":          "Duels",
	"GINGERBREAD":    "Turbo Kart Racers",
	"HOUSING":        "Housing",
	"LEGACY":         "Classic Games",
	"MAIN":           "Main Lobby",
	"MCGO":           "Cops and Crims",
	"MURDER_MYSTERY": "Murder Mystery",
	"PAINTBALL":      "Paintball",
	"PIT":            "Pit",
	"PROTOTYPE":      "Prototype",
	"QUAKECRAFT":     "Quakecraft",
	"REPLAY":         "Replay",
	"SKYBLOCK":       "SkyBlock",
	"SKYWARS":        "SkyWars",
	"SMP":            "SMP",
	"SPEED_UHC":      "Speed UHC",
	"SUPER_SMASH":    "Smash Heroes",
	"SURVIVAL_GAMES": "Blitz Survival Games",
	"TNTGAMES":       "The TNT Games",
	"UHC":            "UHC Champions",
	"VAMPIREZ":       "VampireZ",
	"WALLS":          "Walls",
	"WALLS3":         "Mega Walls",
	"WOOL_GAMES":     "Wool Games",
}

var titleCaser = cases.Title(language.English)

// GameName converts a Hypixel game type id (e.g. "BEDWARS") into its display name.
// Unknown ids are title-cased.
func GameName(gameType string) string {
	if gameType == "" {
		return ""
	}

	if name, ok := gameNames[strings.ToUpper(gameType)]; ok {
		return name
	}

	return titleCaser.String(strings.ReplaceAll(strings.ToLower(gameType), "_", " "))
}
