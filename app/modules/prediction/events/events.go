package predictionevents

import "github.com/google/uuid"

// Topics published by the prediction module.
const (
	PredictionCreatedTopic = "prediction.created"
	BackfillCompletedTopic = "prediction.backfill.completed"
)

// PredictionCreatedPayload announces a stored forecast.
type PredictionCreatedPayload struct {
	GameID          uuid.UUID `json:"game_id"`
	Season          int       `json:"season"`
	Week            int       `json:"week"`
	PredictedWinner string    `json:"predicted_winner"`
	WinProbability  float64   `json:"win_probability"`
}

// BackfillCompletedPayload summarizes a finished backfill batch.
type BackfillCompletedPayload struct {
	Season    int `json:"season"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
	Warnings  int `json:"warnings"`
}
