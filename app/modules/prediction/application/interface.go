package predictionservice

import (
	"context"

	"github.com/google/uuid"

	predictiontypes "github.com/gridiron-analytics/gridrank/app/modules/prediction/domain/types"
)

// Service is the prediction module's application surface. Predict returns
// (nil, nil) when a forecast cannot be made; callers filter that out rather
// than treating it as a failure.
type Service interface {
	Predict(ctx context.Context, gameID uuid.UUID) (*predictiontypes.Prediction, error)
	PredictUsingHistoricalRatings(ctx context.Context, gameID uuid.UUID) (*predictiontypes.Prediction, error)
	ScorePrediction(ctx context.Context, gameID uuid.UUID, actualHomeScore, actualAwayScore int) (*predictiontypes.Prediction, error)
	AccuracyMetrics(predictions []*predictiontypes.Prediction) predictiontypes.AccuracyReport
	GetSeasonAccuracy(ctx context.Context, season int) (predictiontypes.AccuracyReport, error)
	Backfill(ctx context.Context, season int) (predictiontypes.BackfillReport, error)
}
