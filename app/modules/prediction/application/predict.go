package predictionservice

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	predictionevents "github.com/gridiron-analytics/gridrank/app/modules/prediction/events"

	predictiontypes "github.com/gridiron-analytics/gridrank/app/modules/prediction/domain/types"
	ratingtypes "github.com/gridiron-analytics/gridrank/app/modules/rating/domain/types"
)

// Predict forecasts an unplayed game from both teams' live ratings and
// stores the result. It returns (nil, nil) when the game cannot be
// forecast: a team is missing or has a corrupted rating, or the game was
// already applied to the ratings. Those are expected states, not failures.
func (s *PredictionService) Predict(ctx context.Context, gameID uuid.UUID) (*predictiontypes.Prediction, error) {
	ctx, span := s.tracer.Start(ctx, "Predict")
	defer span.End()

	s.metrics.RecordOperationAttempt(ctx, "Predict")

	game, err := s.gameRepo.GetByID(ctx, nil, gameID)
	if err != nil {
		s.metrics.RecordOperationFailure(ctx, "Predict")
		return nil, err
	}
	if game.Processed {
		s.logger.DebugContext(ctx, "Skipping forecast for processed game",
			slog.String("game_id", gameID.String()),
		)
		return nil, nil
	}

	home, err := s.teamRepo.GetByName(ctx, nil, game.HomeTeam)
	if err != nil {
		s.logger.DebugContext(ctx, "Cannot forecast: home team unavailable",
			slog.String("game_id", gameID.String()),
			slog.String("team", game.HomeTeam),
		)
		return nil, nil
	}
	away, err := s.teamRepo.GetByName(ctx, nil, game.AwayTeam)
	if err != nil {
		s.logger.DebugContext(ctx, "Cannot forecast: away team unavailable",
			slog.String("game_id", gameID.String()),
			slog.String("team", game.AwayTeam),
		)
		return nil, nil
	}
	if home.CurrentRating <= 0 || away.CurrentRating <= 0 {
		s.logger.DebugContext(ctx, "Cannot forecast: uninitialized rating",
			slog.String("game_id", gameID.String()),
			slog.Float64("home_rating", home.CurrentRating),
			slog.Float64("away_rating", away.CurrentRating),
		)
		return nil, nil
	}

	prediction := s.buildForecast(game, home.CurrentRating, away.CurrentRating, false)
	if err := s.predictionRepo.Upsert(ctx, nil, prediction); err != nil {
		s.metrics.RecordOperationFailure(ctx, "Predict")
		return nil, err
	}

	if s.eventBus != nil {
		payload := predictionevents.PredictionCreatedPayload{
			GameID:          prediction.GameID,
			Season:          prediction.Season,
			Week:            prediction.Week,
			PredictedWinner: prediction.PredictedWinner,
			WinProbability:  prediction.WinProbability,
		}
		if err := s.eventBus.Publish(ctx, predictionevents.PredictionCreatedTopic, payload); err != nil {
			s.logger.WarnContext(ctx, "Failed to publish prediction created event",
				slog.String("game_id", gameID.String()),
				slog.Any("error", err),
			)
		}
	}

	s.metrics.RecordOperationSuccess(ctx, "Predict")
	return prediction, nil
}

// buildForecast derives the full forecast from the two ratings as seen right
// now. Every numeric field is rounded once here so stored and displayed
// values agree.
func (s *PredictionService) buildForecast(game *ratingtypes.Game, homeRating, awayRating float64, usedFallback bool) *predictiontypes.Prediction {
	effectiveHome := homeRating
	if !game.NeutralSite {
		effectiveHome += s.config.HomeFieldAdvantage
	}

	homeProb := ratingtypes.ExpectedScore(effectiveHome, awayRating)
	winner := game.AwayTeam
	winProb := 1 - homeProb
	if homeProb > 0.5 {
		winner = game.HomeTeam
		winProb = homeProb
	}

	homeScore, awayScore := predictiontypes.ProjectScores(s.config, effectiveHome, awayRating)
	swing := predictiontypes.ProjectedRatingSwing(s.config, game.Week, winProb, homeScore-awayScore)

	return &predictiontypes.Prediction{
		ID:                     uuid.New(),
		GameID:                 game.ID,
		Season:                 game.Season,
		Week:                   game.Week,
		HomeTeam:               game.HomeTeam,
		AwayTeam:               game.AwayTeam,
		PredictedWinner:        winner,
		PredictedHomeScore:     round1(homeScore),
		PredictedAwayScore:     round1(awayScore),
		HomeWinProbability:     round3(homeProb),
		WinProbability:         round3(winProb),
		Confidence:             predictiontypes.ClassifyConfidence(homeProb),
		ProjectedRatingSwing:   round2(swing),
		HomeRatingAtPrediction: round2(homeRating),
		AwayRatingAtPrediction: round2(awayRating),
		UsedFallbackRating:     usedFallback,
		CreatedAt:              time.Now().UTC(),
	}
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
