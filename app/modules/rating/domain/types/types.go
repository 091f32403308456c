// types.go
package ratingtypes

import (
	"fmt"

	"github.com/google/uuid"
)

// Tier classifies a program's competitive level. It selects the conference
// multipliers applied to cross-tier results and the preseason rating baseline.
type Tier string

const (
	TierPower Tier = "power"
	TierG5    Tier = "g5"
	TierFCS   Tier = "fcs"
)

// Valid reports whether t is one of the known tiers.
func (t Tier) Valid() bool {
	switch t {
	case TierPower, TierG5, TierFCS:
		return true
	}
	return false
}

// UnrankedSentinel marks a team with no recruiting or transfer-portal rank.
const UnrankedSentinel = 999

// Team is one program for the current season. Name is the identity.
// CurrentRating is only ever mutated by game processing; InitialRating is the
// frozen preseason value and never changes after initialization.
type Team struct {
	Name                string  `json:"name"`
	Tier                Tier    `json:"tier"`
	RecruitingRank      int     `json:"recruiting_rank"`
	TransferRank        int     `json:"transfer_rank"`
	ReturningProduction float64 `json:"returning_production"`
	CurrentRating       float64 `json:"current_rating"`
	InitialRating       float64 `json:"initial_rating"`
	Wins                int     `json:"wins"`
	Losses              int     `json:"losses"`
}

// QuarterLine is a per-quarter score breakdown for one game. It is
// all-or-nothing: either every quarter is present and sums to the final
// score on both sides, or the game carries no breakdown at all.
type QuarterLine struct {
	Home [4]int `json:"home"`
	Away [4]int `json:"away"`
}

// Game is one scheduled or completed matchup. Scores of 0-0 mean the game has
// not been played yet. A Game references its teams by name only.
type Game struct {
	ID          uuid.UUID    `json:"id"`
	Season      int          `json:"season"`
	Week        int          `json:"week"`
	HomeTeam    string       `json:"home_team"`
	AwayTeam    string       `json:"away_team"`
	HomeScore   int          `json:"home_score"`
	AwayScore   int          `json:"away_score"`
	NeutralSite bool         `json:"neutral_site"`
	Quarters    *QuarterLine `json:"quarters,omitempty"`

	Processed            bool    `json:"processed"`
	ExcludedFromRankings bool    `json:"excluded_from_rankings"`
	HomeRatingDelta      float64 `json:"home_rating_delta"`
	AwayRatingDelta      float64 `json:"away_rating_delta"`
}

// HasScore reports whether a real result has been recorded.
func (g *Game) HasScore() bool {
	return g.HomeScore != 0 || g.AwayScore != 0
}

// QuartersConsistent reports whether the quarter breakdown, when present,
// sums to the recorded final score on both sides.
func (g *Game) QuartersConsistent() bool {
	if g.Quarters == nil {
		return true
	}
	var home, away int
	for i := 0; i < 4; i++ {
		home += g.Quarters.Home[i]
		away += g.Quarters.Away[i]
	}
	return home == g.HomeScore && away == g.AwayScore
}

// GameResult is the audit record returned after a game has been applied to
// both teams. Ratings and deltas are rounded to two decimals, the win
// probability to three, so stored and displayed values always agree.
type GameResult struct {
	GameID         uuid.UUID `json:"game_id"`
	Winner         string    `json:"winner"`
	Loser          string    `json:"loser"`
	Score          string    `json:"score"`
	HomeDelta      float64   `json:"home_delta"`
	AwayDelta      float64   `json:"away_delta"`
	HomeNewRating  float64   `json:"home_new_rating"`
	AwayNewRating  float64   `json:"away_new_rating"`
	WinProbability float64   `json:"win_probability"`
	MOVMultiplier  float64   `json:"mov_multiplier"`
}

// AlreadyProcessed signals an idempotent no-op: the game was applied before
// and no state was touched. It is a result variant, not an error, so callers
// can retry deliveries without special-casing.
type AlreadyProcessed struct {
	GameID uuid.UUID `json:"game_id"`
}

func (a AlreadyProcessed) String() string {
	return fmt.Sprintf("game %s already processed", a.GameID)
}
