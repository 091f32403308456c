package predictiondb

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	predictiontypes "github.com/gridiron-analytics/gridrank/app/modules/prediction/domain/types"
)

// Prediction is one persisted forecast row. The rating columns freeze what
// the model saw at forecast time; correct and actual_home_win stay NULL until
// the game is scored.
type Prediction struct {
	bun.BaseModel `bun:"table:predictions,alias:p"`

	ID       uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	GameID   uuid.UUID `bun:"game_id,notnull,type:uuid,unique" json:"game_id"`
	Season   int       `bun:"season,notnull" json:"season"`
	Week     int       `bun:"week,notnull" json:"week"`
	HomeTeam string    `bun:"home_team,notnull" json:"home_team"`
	AwayTeam string    `bun:"away_team,notnull" json:"away_team"`

	PredictedWinner      string  `bun:"predicted_winner,notnull" json:"predicted_winner"`
	PredictedHomeScore   float64 `bun:"predicted_home_score,notnull" json:"predicted_home_score"`
	PredictedAwayScore   float64 `bun:"predicted_away_score,notnull" json:"predicted_away_score"`
	HomeWinProbability   float64 `bun:"home_win_probability,notnull" json:"home_win_probability"`
	WinProbability       float64 `bun:"win_probability,notnull" json:"win_probability"`
	Confidence           string  `bun:"confidence,notnull" json:"confidence"`
	ProjectedRatingSwing float64 `bun:"projected_rating_swing,notnull,default:0" json:"projected_rating_swing"`

	HomeRatingAtPrediction float64 `bun:"home_rating_at_prediction,notnull" json:"home_rating_at_prediction"`
	AwayRatingAtPrediction float64 `bun:"away_rating_at_prediction,notnull" json:"away_rating_at_prediction"`
	UsedFallbackRating     bool    `bun:"used_fallback_rating,notnull,default:false" json:"used_fallback_rating"`

	Correct       *bool     `bun:"correct" json:"correct,omitempty"`
	ActualHomeWin *bool     `bun:"actual_home_win" json:"actual_home_win,omitempty"`
	CreatedAt     time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
}

// ToDomain converts the row into the domain prediction.
func (p *Prediction) ToDomain() *predictiontypes.Prediction {
	return &predictiontypes.Prediction{
		ID:                     p.ID,
		GameID:                 p.GameID,
		Season:                 p.Season,
		Week:                   p.Week,
		HomeTeam:               p.HomeTeam,
		AwayTeam:               p.AwayTeam,
		PredictedWinner:        p.PredictedWinner,
		PredictedHomeScore:     p.PredictedHomeScore,
		PredictedAwayScore:     p.PredictedAwayScore,
		HomeWinProbability:     p.HomeWinProbability,
		WinProbability:         p.WinProbability,
		Confidence:             predictiontypes.Confidence(p.Confidence),
		ProjectedRatingSwing:   p.ProjectedRatingSwing,
		HomeRatingAtPrediction: p.HomeRatingAtPrediction,
		AwayRatingAtPrediction: p.AwayRatingAtPrediction,
		UsedFallbackRating:     p.UsedFallbackRating,
		Correct:                p.Correct,
		ActualHomeWin:          p.ActualHomeWin,
		CreatedAt:              p.CreatedAt,
	}
}

func rowFromDomain(p *predictiontypes.Prediction) *Prediction {
	return &Prediction{
		ID:                     p.ID,
		GameID:                 p.GameID,
		Season:                 p.Season,
		Week:                   p.Week,
		HomeTeam:               p.HomeTeam,
		AwayTeam:               p.AwayTeam,
		PredictedWinner:        p.PredictedWinner,
		PredictedHomeScore:     p.PredictedHomeScore,
		PredictedAwayScore:     p.PredictedAwayScore,
		HomeWinProbability:     p.HomeWinProbability,
		WinProbability:         p.WinProbability,
		Confidence:             string(p.Confidence),
		ProjectedRatingSwing:   p.ProjectedRatingSwing,
		HomeRatingAtPrediction: p.HomeRatingAtPrediction,
		AwayRatingAtPrediction: p.AwayRatingAtPrediction,
		UsedFallbackRating:     p.UsedFallbackRating,
		Correct:                p.Correct,
		ActualHomeWin:          p.ActualHomeWin,
		CreatedAt:              p.CreatedAt,
	}
}
