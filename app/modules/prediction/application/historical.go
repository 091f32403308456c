package predictionservice

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	predictiontypes "github.com/gridiron-analytics/gridrank/app/modules/prediction/domain/types"
	rankingdb "github.com/gridiron-analytics/gridrank/app/modules/ranking/infrastructure/repositories"
)

// DefaultFallbackRating stands in when a team has no snapshot for the week a
// retrospective forecast needs. Forecasts built on it are degraded, not
// wrong, and are flagged as such.
const DefaultFallbackRating = 1500.0

// PredictUsingHistoricalRatings forecasts a game from the ratings recorded in
// the snapshot for the week before it was played, so a retrospective
// forecast never sees the game's own outcome. Week-1 games read the
// preseason (week 0) snapshot.
func (s *PredictionService) PredictUsingHistoricalRatings(ctx context.Context, gameID uuid.UUID) (*predictiontypes.Prediction, error) {
	ctx, span := s.tracer.Start(ctx, "PredictUsingHistoricalRatings")
	defer span.End()

	s.metrics.RecordOperationAttempt(ctx, "PredictUsingHistoricalRatings")

	game, err := s.gameRepo.GetByID(ctx, nil, gameID)
	if err != nil {
		s.metrics.RecordOperationFailure(ctx, "PredictUsingHistoricalRatings")
		return nil, err
	}

	snapshotWeek := game.Week - 1
	if snapshotWeek < 0 {
		snapshotWeek = 0
	}

	homeRating, homeFellBack, err := s.historicalRating(ctx, game.Season, snapshotWeek, game.HomeTeam)
	if err != nil {
		s.metrics.RecordOperationFailure(ctx, "PredictUsingHistoricalRatings")
		return nil, err
	}
	awayRating, awayFellBack, err := s.historicalRating(ctx, game.Season, snapshotWeek, game.AwayTeam)
	if err != nil {
		s.metrics.RecordOperationFailure(ctx, "PredictUsingHistoricalRatings")
		return nil, err
	}

	prediction := s.buildForecast(game, homeRating, awayRating, homeFellBack || awayFellBack)
	if err := s.predictionRepo.Upsert(ctx, nil, prediction); err != nil {
		s.metrics.RecordOperationFailure(ctx, "PredictUsingHistoricalRatings")
		return nil, err
	}

	s.metrics.RecordOperationSuccess(ctx, "PredictUsingHistoricalRatings")
	return prediction, nil
}

// historicalRating reads one team's snapshot rating, falling back to the
// default with a warning when the snapshot is missing.
func (s *PredictionService) historicalRating(ctx context.Context, season, week int, team string) (float64, bool, error) {
	rating, err := s.snapshotRepo.GetTeamRating(ctx, nil, season, week, team)
	if err != nil {
		if errors.Is(err, rankingdb.ErrSnapshotNotFound) {
			s.logger.WarnContext(ctx, "No historical snapshot; using default rating",
				slog.String("team", team),
				slog.Int("season", season),
				slog.Int("week", week),
				slog.Float64("fallback_rating", DefaultFallbackRating),
			)
			return DefaultFallbackRating, true, nil
		}
		return 0, false, err
	}
	return rating, false, nil
}
