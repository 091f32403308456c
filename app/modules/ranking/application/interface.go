package rankingservice

import (
	"context"

	rankingtypes "github.com/gridiron-analytics/gridrank/app/modules/ranking/domain/types"
)

// Service is the ranking module's application surface.
type Service interface {
	GetCurrentRankings(ctx context.Context, season, limit int) ([]rankingtypes.RankingEntry, error)
	CalculateSOS(ctx context.Context, team string, season int) (float64, error)
	SaveWeeklySnapshot(ctx context.Context, season, week int) error
	ResetSeason(ctx context.Context, season int) error
	GetRatingHistoryChart(ctx context.Context, season int, team string) ([]byte, error)
	ExportRankings(ctx context.Context, season int) ([]byte, error)
}
