package rankingservice

import (
	"context"
	"fmt"
	"log/slog"

	rankingevents "github.com/gridiron-analytics/gridrank/app/modules/ranking/events"
)

// SaveWeeklySnapshot persists one snapshot row per team for the given week.
// It is a pure write-through of GetCurrentRankings' output.
func (s *RankingService) SaveWeeklySnapshot(ctx context.Context, season, week int) error {
	ctx, span := s.tracer.Start(ctx, "SaveWeeklySnapshot")
	defer span.End()

	s.metrics.RecordOperationAttempt(ctx, "SaveWeeklySnapshot")

	if !s.config.WeekInRange(week) {
		s.metrics.RecordOperationFailure(ctx, "SaveWeeklySnapshot")
		return fmt.Errorf("week %d outside [%d, %d]", week, s.config.MinWeek, s.config.MaxWeek)
	}

	entries, err := s.GetCurrentRankings(ctx, season, 0)
	if err != nil {
		s.metrics.RecordOperationFailure(ctx, "SaveWeeklySnapshot")
		return fmt.Errorf("failed to compute rankings for snapshot: %w", err)
	}

	if err := s.snapshotRepo.UpsertEntries(ctx, nil, season, week, entries); err != nil {
		s.metrics.RecordOperationFailure(ctx, "SaveWeeklySnapshot")
		return err
	}

	if s.eventBus != nil {
		payload := rankingevents.WeeklySnapshotSavedPayload{Season: season, Week: week, Teams: len(entries)}
		if err := s.eventBus.Publish(ctx, rankingevents.WeeklySnapshotSavedTopic, payload); err != nil {
			s.logger.WarnContext(ctx, "Failed to publish snapshot saved event",
				slog.Int("season", season),
				slog.Int("week", week),
				slog.Any("error", err),
			)
		}
	}

	s.logger.InfoContext(ctx, "Saved weekly ranking snapshot",
		slog.Int("season", season),
		slog.Int("week", week),
		slog.Int("teams", len(entries)),
	)
	s.metrics.RecordOperationSuccess(ctx, "SaveWeeklySnapshot")
	return nil
}
