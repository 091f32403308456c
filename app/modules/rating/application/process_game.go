package ratingservice

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	ratingevents "github.com/gridiron-analytics/gridrank/app/modules/rating/events"

	ratingtypes "github.com/gridiron-analytics/gridrank/app/modules/rating/domain/types"
	ratingdb "github.com/gridiron-analytics/gridrank/app/modules/rating/infrastructure/repositories"
	"github.com/gridiron-analytics/gridrank/app/shared/results"
)

// ProcessGame atomically applies one completed, eligible game to both
// participating teams. Both team updates and the game's processing state are
// written in a single transaction; nothing is persisted when any
// precondition fails. Calling it again for the same game is a no-op that
// returns an AlreadyProcessed failure payload.
func (s *RatingService) ProcessGame(ctx context.Context, gameID uuid.UUID) (ProcessGameResult, error) {
	return withTelemetry(s, ctx, "ProcessGame", gameID.String(), func(ctx context.Context) (ProcessGameResult, error) {
		return runInTx(s, ctx, func(ctx context.Context, db bun.IDB) (ProcessGameResult, error) {
			game, err := s.gameRepo.GetByID(ctx, db, gameID)
			if err != nil {
				return ProcessGameResult{}, err
			}

			if game.Processed {
				return results.FailureResult[ratingtypes.GameResult](
					ratingtypes.AlreadyProcessed{GameID: gameID},
				), nil
			}

			home, err := s.teamRepo.GetByName(ctx, db, game.HomeTeam)
			if err != nil {
				if errors.Is(err, ratingdb.ErrTeamNotFound) {
					return ProcessGameResult{}, ratingtypes.NewValidationError(gameID, ratingtypes.ErrUnknownTeam, game.HomeTeam)
				}
				return ProcessGameResult{}, err
			}
			away, err := s.teamRepo.GetByName(ctx, db, game.AwayTeam)
			if err != nil {
				if errors.Is(err, ratingdb.ErrTeamNotFound) {
					return ProcessGameResult{}, ratingtypes.NewValidationError(gameID, ratingtypes.ErrUnknownTeam, game.AwayTeam)
				}
				return ProcessGameResult{}, err
			}

			result, err := applyGame(s.config, game, home, away)
			if err != nil {
				return ProcessGameResult{}, err
			}

			if err := s.teamRepo.UpdateRatingState(ctx, db, home); err != nil {
				return ProcessGameResult{}, err
			}
			if err := s.teamRepo.UpdateRatingState(ctx, db, away); err != nil {
				return ProcessGameResult{}, err
			}
			if err := s.gameRepo.UpdateProcessingState(ctx, db, game); err != nil {
				return ProcessGameResult{}, err
			}

			if s.eventBus != nil {
				payload := ratingevents.GameProcessedPayload{
					GameID:         game.ID,
					Season:         game.Season,
					Week:           game.Week,
					Winner:         result.Winner,
					Loser:          result.Loser,
					Score:          result.Score,
					HomeDelta:      result.HomeDelta,
					AwayDelta:      result.AwayDelta,
					WinProbability: result.WinProbability,
				}
				if err := s.eventBus.Publish(ctx, ratingevents.GameProcessedTopic, payload); err != nil {
					// The rating write is the source of truth; a publish
					// failure is observable but must not roll it back.
					s.logger.WarnContext(ctx, "Failed to publish game processed event",
						slog.String("game_id", gameID.String()),
						slog.Any("error", err),
					)
				}
			}

			return results.SuccessResult[ratingtypes.GameResult, ratingtypes.AlreadyProcessed](*result), nil
		})
	})
}
