package rankingservice

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/uptrace/bun"

	ratingtypes "github.com/gridiron-analytics/gridrank/app/modules/rating/domain/types"
	rankingevents "github.com/gridiron-analytics/gridrank/app/modules/ranking/events"
)

// ResetSeason reinitializes every team's current and initial rating from its
// preseason inputs and zeroes all records. This is a season-boundary
// operation and is irreversible without an external backup.
func (s *RankingService) ResetSeason(ctx context.Context, season int) error {
	ctx, span := s.tracer.Start(ctx, "ResetSeason")
	defer span.End()

	s.metrics.RecordOperationAttempt(ctx, "ResetSeason")

	teams, err := s.teamRepo.List(ctx, nil)
	if err != nil {
		s.metrics.RecordOperationFailure(ctx, "ResetSeason")
		return err
	}

	reset := func(ctx context.Context, db bun.IDB) error {
		for _, team := range teams {
			composite := ratingtypes.PreseasonComposite(team)
			team.CurrentRating = composite
			team.InitialRating = composite
			team.Wins = 0
			team.Losses = 0
			if err := s.teamRepo.UpdateRatingState(ctx, db, team); err != nil {
				return err
			}
		}
		return nil
	}

	if s.db != nil {
		err = s.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
			return reset(ctx, tx)
		})
	} else {
		err = reset(ctx, nil)
	}
	if err != nil {
		s.metrics.RecordOperationFailure(ctx, "ResetSeason")
		return err
	}

	if s.eventBus != nil {
		payload := rankingevents.SeasonResetPayload{Season: season, Teams: len(teams)}
		if err := s.eventBus.Publish(ctx, rankingevents.SeasonResetTopic, payload); err != nil {
			s.logger.WarnContext(ctx, "Failed to publish season reset event",
				slog.Int("season", season),
				slog.Any("error", err),
			)
		}
	}

	s.logger.InfoContext(ctx, "Reset season rating state",
		slog.Int("season", season),
		slog.Int("teams", len(teams)),
	)
	s.metrics.RecordOperationSuccess(ctx, "ResetSeason")
	return nil
}
