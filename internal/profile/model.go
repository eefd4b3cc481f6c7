package profile

import (
	"time"

	"github.com/google/uuid"
)

// Summary is the parsed subset of a Hypixel player document needed to draw a card.
// Per-mode stats are nil when the player has never played the mode.
type Summary struct {
	Uuid        uuid.UUID
	DisplayName string

	PackageRank        string
	NewPackageRank     string
	MonthlyPackageRank string
	StaffRank          string
	RankPlusColor      string

	FirstLogin time.Time
	LastLogin  time.Time
	LastLogout time.Time

	Karma              int64
	MostRecentGameType string
	Friends            int

	SocialMedia SocialMedia

	Bedwars *BedwarsStats
	Skywars *SkywarsStats
	Duels   *DuelsStats
}

type SocialMedia struct {
	Discord string
	Twitter string
	Youtube string
}

type BedwarsStats struct {
	GamesPlayed int64
	Kills       int64
	Deaths      int64
	FinalKills  int64
	FinalDeaths int64
	BedsBroken  int64
	BedsLost    int64
}

type SkywarsStats struct {
	GamesPlayed int64
	Kills       int64
	Deaths      int64
	Tokens      int64
	Souls       int64
	Wins        int64
	Losses      int64
}

type DuelsStats struct {
	Wins   int64
	Losses int64
	Coins  int64
}

// IsOnline reports whether the last login happened after the last logout.
func (s *Summary) IsOnline() bool {
	return s.LastLogin.After(s.LastLogout)
}
