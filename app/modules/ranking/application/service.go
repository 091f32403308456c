package rankingservice

import (
	"log/slog"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"

	"github.com/gridiron-analytics/gridrank/app/eventbus"
	ratingtypes "github.com/gridiron-analytics/gridrank/app/modules/rating/domain/types"
	ratingdb "github.com/gridiron-analytics/gridrank/app/modules/rating/infrastructure/repositories"
	rankingdb "github.com/gridiron-analytics/gridrank/app/modules/ranking/infrastructure/repositories"
	"github.com/gridiron-analytics/gridrank/internal/observability"
)

// RankingService computes standings, strength of schedule, and snapshot
// history. All of its reads are side-effect free; the only writers are
// SaveWeeklySnapshot and ResetSeason.
type RankingService struct {
	teamRepo     ratingdb.TeamRepository
	gameRepo     ratingdb.GameRepository
	snapshotRepo rankingdb.SnapshotRepository
	eventBus     eventbus.EventBus
	logger       *slog.Logger
	metrics      observability.OperationMetrics
	tracer       trace.Tracer
	db           *bun.DB
	config       ratingtypes.EngineConfig
}

// NewRankingService creates a new RankingService.
func NewRankingService(
	teamRepo ratingdb.TeamRepository,
	gameRepo ratingdb.GameRepository,
	snapshotRepo rankingdb.SnapshotRepository,
	eventBus eventbus.EventBus,
	logger *slog.Logger,
	metrics observability.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
	config ratingtypes.EngineConfig,
) *RankingService {
	return &RankingService{
		teamRepo:     teamRepo,
		gameRepo:     gameRepo,
		snapshotRepo: snapshotRepo,
		eventBus:     eventBus,
		logger:       logger,
		metrics:      metrics,
		tracer:       tracer,
		db:           db,
		config:       config,
	}
}
