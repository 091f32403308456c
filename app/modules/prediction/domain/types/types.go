// types.go
package predictiontypes

import (
	"time"

	"github.com/google/uuid"
)

// Confidence buckets a forecast by how far its probability sits from even.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Prediction is a pre-game forecast. The two rating fields freeze what the
// model saw at forecast time so the call can be audited after ratings move.
// Correct and ActualHomeWin stay nil until the real result is scored.
type Prediction struct {
	ID       uuid.UUID `json:"id"`
	GameID   uuid.UUID `json:"game_id"`
	Season   int       `json:"season"`
	Week     int       `json:"week"`
	HomeTeam string    `json:"home_team"`
	AwayTeam string    `json:"away_team"`

	PredictedWinner    string     `json:"predicted_winner"`
	PredictedHomeScore float64    `json:"predicted_home_score"`
	PredictedAwayScore float64    `json:"predicted_away_score"`
	HomeWinProbability float64    `json:"home_win_probability"`
	WinProbability     float64    `json:"win_probability"`
	Confidence         Confidence `json:"confidence"`

	// ProjectedRatingSwing is the winner-side rating movement implied by the
	// projected margin, using the analysis MOV cap rather than the
	// processing one.
	ProjectedRatingSwing float64 `json:"projected_rating_swing"`

	HomeRatingAtPrediction float64 `json:"home_rating_at_prediction"`
	AwayRatingAtPrediction float64 `json:"away_rating_at_prediction"`

	// UsedFallbackRating marks a degraded historical forecast where at least
	// one side had no snapshot and the default rating stood in.
	UsedFallbackRating bool `json:"used_fallback_rating"`

	Correct       *bool     `json:"correct,omitempty"`
	ActualHomeWin *bool     `json:"actual_home_win,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// Resolved reports whether the prediction has been scored against a result.
func (p *Prediction) Resolved() bool {
	return p.Correct != nil
}

// AccuracyReport aggregates forecast quality over a set of resolved
// predictions. These four numbers are the model's only quality signals.
type AccuracyReport struct {
	Accuracy       float64 `json:"accuracy"`
	BrierScore     float64 `json:"brier_score"`
	LogLoss        float64 `json:"log_loss"`
	MeanConfidence float64 `json:"mean_confidence"`
	Samples        int     `json:"samples"`
}

// BackfillReport summarizes one batch backfill run. Individual item failures
// are recorded here instead of aborting the batch.
type BackfillReport struct {
	Succeeded int      `json:"succeeded"`
	Failed    int      `json:"failed"`
	Warnings  int      `json:"warnings"`
	Errors    []string `json:"errors,omitempty"`
}
