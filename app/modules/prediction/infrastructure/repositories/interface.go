package predictiondb

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	predictiontypes "github.com/gridiron-analytics/gridrank/app/modules/prediction/domain/types"
)

// PredictionRepository is the storage surface for forecasts. One prediction
// exists per game; re-forecasting overwrites it.
type PredictionRepository interface {
	GetByGameID(ctx context.Context, db bun.IDB, gameID uuid.UUID) (*predictiontypes.Prediction, error)
	Upsert(ctx context.Context, db bun.IDB, prediction *predictiontypes.Prediction) error
	ListForSeason(ctx context.Context, db bun.IDB, season int) ([]*predictiontypes.Prediction, error)
	ListResolvedForSeason(ctx context.Context, db bun.IDB, season int) ([]*predictiontypes.Prediction, error)
}
