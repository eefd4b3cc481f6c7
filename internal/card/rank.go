package card

import (
	"strings"

	"github.com/elyby/hyfetch/internal/profile"
)

const noRank = "non"

var rankColors = map[string]Named{
	"VIP":       "GREEN",
	"VIP_PLUS":  "GREEN",
	"MVP":       "AQUA",
	"MVP_PLUS":  "AQUA",
	"SUPERSTAR": "AQUA",
	"YOUTUBER":  "RED",
	"ADMIN":     "RED",
	"MODERATOR": "DARK_GREEN",
	"HELPER":    "BLUE",
}

var defaultPlusColors = map[string]Named{
	"VIP_PLUS":  "GOLD",
	"MVP_PLUS":  "RED",
	"SUPERSTAR": "RED",
}

var rankNames = map[string]string{
	"VIP":       "VIP",
	"VIP_PLUS":  "VIP+",
	"MVP":       "MVP",
	"MVP_PLUS":  "MVP+",
	"SUPERSTAR": "MVP++",
	"YOUTUBER":  "YOUTUBE",
	"ADMIN":     "ADMIN",
	"MODERATOR": "MOD",
	"HELPER":    "HELPER",
}

var staffRanks = map[string]bool{
	"ADMIN":     true,
	"MODERATOR": true,
	"HELPER":    true,
	"YOUTUBER":  true,
}

// RankID picks the rank that Hypixel would display for the player.
// An empty result means that the player has no rank at all.
func RankID(summary *profile.Summary) string {
	if summary.MonthlyPackageRank == "SUPERSTAR" {
		return "SUPERSTAR"
	}

	if staffRanks[summary.StaffRank] {
		return summary.StaffRank
	}

	for _, rank := range []string{summary.NewPackageRank, summary.PackageRank} {
		if rank != "" && rank != "NONE" {
			return rank
		}
	}

	return ""
}

// ResolveRank builds the colored rank label, e.g. "MVP+" in aqua with a red plus sign.
func ResolveRank(summary *profile.Summary) string {
	rankID := RankID(summary)
	if rankID == "" {
		return noRank
	}

	name, ok := rankNames[rankID]
	if !ok {
		name = rankID
	}

	if strings.Contains(name, "+") {
		name = strings.Replace(name, "+", Resolve(plusColor(rankID, summary.RankPlusColor), nil)+"+", 1)
	}

	return Resolve(rankColors[rankID], nil) + name + Reset
}

func plusColor(rankID string, custom string) ColorSource {
	if Named(custom).IsKnown() {
		return Named(custom)
	}

	if def, ok := defaultPlusColors[rankID]; ok {
		return def
	}

	return nil
}
