package predictionservice

import (
	"log/slog"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"

	"github.com/gridiron-analytics/gridrank/app/eventbus"
	predictiondb "github.com/gridiron-analytics/gridrank/app/modules/prediction/infrastructure/repositories"
	rankingdb "github.com/gridiron-analytics/gridrank/app/modules/ranking/infrastructure/repositories"
	ratingtypes "github.com/gridiron-analytics/gridrank/app/modules/rating/domain/types"
	ratingdb "github.com/gridiron-analytics/gridrank/app/modules/rating/infrastructure/repositories"
	"github.com/gridiron-analytics/gridrank/internal/observability"
)

// PredictionService forecasts unplayed games and scores those forecasts once
// results arrive. Live forecasts read current ratings; retrospective ones
// read the snapshot history so no future information leaks in.
type PredictionService struct {
	teamRepo       ratingdb.TeamRepository
	gameRepo       ratingdb.GameRepository
	snapshotRepo   rankingdb.SnapshotRepository
	predictionRepo predictiondb.PredictionRepository
	eventBus       eventbus.EventBus
	logger         *slog.Logger
	metrics        observability.OperationMetrics
	tracer         trace.Tracer
	db             *bun.DB
	config         ratingtypes.EngineConfig
}

// NewPredictionService creates a new PredictionService.
func NewPredictionService(
	teamRepo ratingdb.TeamRepository,
	gameRepo ratingdb.GameRepository,
	snapshotRepo rankingdb.SnapshotRepository,
	predictionRepo predictiondb.PredictionRepository,
	eventBus eventbus.EventBus,
	logger *slog.Logger,
	metrics observability.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
	config ratingtypes.EngineConfig,
) *PredictionService {
	return &PredictionService{
		teamRepo:       teamRepo,
		gameRepo:       gameRepo,
		snapshotRepo:   snapshotRepo,
		predictionRepo: predictionRepo,
		eventBus:       eventBus,
		logger:         logger,
		metrics:        metrics,
		tracer:         tracer,
		db:             db,
		config:         config,
	}
}
