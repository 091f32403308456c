package predictionservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	predictionevents "github.com/gridiron-analytics/gridrank/app/modules/prediction/events"

	predictiontypes "github.com/gridiron-analytics/gridrank/app/modules/prediction/domain/types"
	predictiondb "github.com/gridiron-analytics/gridrank/app/modules/prediction/infrastructure/repositories"
)

// Backfill generates and scores retrospective forecasts for every completed
// game of a season that has none yet. Per-game failures are recorded in the
// report and the batch keeps going; only a failure to enumerate the season
// aborts the run.
func (s *PredictionService) Backfill(ctx context.Context, season int) (predictiontypes.BackfillReport, error) {
	ctx, span := s.tracer.Start(ctx, "Backfill")
	defer span.End()

	s.metrics.RecordOperationAttempt(ctx, "Backfill")

	games, err := s.gameRepo.ListCompletedForSeason(ctx, nil, season)
	if err != nil {
		s.metrics.RecordOperationFailure(ctx, "Backfill")
		return predictiontypes.BackfillReport{}, err
	}

	var report predictiontypes.BackfillReport
	for _, game := range games {
		existing, err := s.predictionRepo.GetByGameID(ctx, nil, game.ID)
		if err != nil && !errors.Is(err, predictiondb.ErrPredictionNotFound) {
			report.Failed++
			report.Errors = append(report.Errors, fmt.Sprintf("game %s: %v", game.ID, err))
			continue
		}
		if existing != nil {
			continue
		}

		prediction, err := s.PredictUsingHistoricalRatings(ctx, game.ID)
		if err != nil {
			report.Failed++
			report.Errors = append(report.Errors, fmt.Sprintf("game %s: %v", game.ID, err))
			continue
		}
		if prediction.UsedFallbackRating {
			report.Warnings++
		}

		if _, err := s.ScorePrediction(ctx, game.ID, game.HomeScore, game.AwayScore); err != nil {
			report.Failed++
			report.Errors = append(report.Errors, fmt.Sprintf("game %s: score: %v", game.ID, err))
			continue
		}
		report.Succeeded++
	}

	if s.eventBus != nil {
		payload := predictionevents.BackfillCompletedPayload{
			Season:    season,
			Succeeded: report.Succeeded,
			Failed:    report.Failed,
			Warnings:  report.Warnings,
		}
		if err := s.eventBus.Publish(ctx, predictionevents.BackfillCompletedTopic, payload); err != nil {
			s.logger.WarnContext(ctx, "Failed to publish backfill completed event",
				slog.Int("season", season),
				slog.Any("error", err),
			)
		}
	}

	s.logger.InfoContext(ctx, "Completed prediction backfill",
		slog.Int("season", season),
		slog.Int("succeeded", report.Succeeded),
		slog.Int("failed", report.Failed),
		slog.Int("warnings", report.Warnings),
	)
	s.metrics.RecordOperationSuccess(ctx, "Backfill")
	return report, nil
}
