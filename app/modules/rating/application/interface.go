package ratingservice

import (
	"context"

	"github.com/google/uuid"

	ratingtypes "github.com/gridiron-analytics/gridrank/app/modules/rating/domain/types"
	"github.com/gridiron-analytics/gridrank/app/shared/results"
)

// ProcessGameResult is the outcome variant pair for game processing: a
// computed GameResult on success, or an AlreadyProcessed marker when the
// game was applied before and nothing was touched.
type ProcessGameResult = results.OperationResult[ratingtypes.GameResult, ratingtypes.AlreadyProcessed]

// Service is the rating module's application surface.
type Service interface {
	ProcessGame(ctx context.Context, gameID uuid.UUID) (ProcessGameResult, error)
}
