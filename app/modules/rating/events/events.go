package ratingevents

import "github.com/google/uuid"

// Topics published by the rating module.
const (
	GameProcessedTopic = "rating.game.processed"
)

// GameProcessedPayload announces that a game was applied to both teams.
type GameProcessedPayload struct {
	GameID         uuid.UUID `json:"game_id"`
	Season         int       `json:"season"`
	Week           int       `json:"week"`
	Winner         string    `json:"winner"`
	Loser          string    `json:"loser"`
	Score          string    `json:"score"`
	HomeDelta      float64   `json:"home_delta"`
	AwayDelta      float64   `json:"away_delta"`
	WinProbability float64   `json:"win_probability"`
}
