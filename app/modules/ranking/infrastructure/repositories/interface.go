package rankingdb

import (
	"context"

	"github.com/uptrace/bun"

	rankingtypes "github.com/gridiron-analytics/gridrank/app/modules/ranking/domain/types"
)

// SnapshotRepository is the storage surface for weekly ranking snapshots.
type SnapshotRepository interface {
	UpsertEntries(ctx context.Context, db bun.IDB, season, week int, entries []rankingtypes.RankingEntry) error
	GetTeamRating(ctx context.Context, db bun.IDB, season, week int, team string) (float64, error)
	ListForTeam(ctx context.Context, db bun.IDB, season int, team string) ([]rankingtypes.SnapshotView, error)
}
