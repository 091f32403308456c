package ratingdb

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	ratingtypes "github.com/gridiron-analytics/gridrank/app/modules/rating/domain/types"
)

// TeamRepository is the storage surface for team rating state. Every method
// accepts a bun.IDB so callers can supply a transaction; passing nil uses the
// repository's own connection.
type TeamRepository interface {
	GetByName(ctx context.Context, db bun.IDB, name string) (*ratingtypes.Team, error)
	List(ctx context.Context, db bun.IDB) ([]*ratingtypes.Team, error)
	Upsert(ctx context.Context, db bun.IDB, team *ratingtypes.Team) error
	UpdateRatingState(ctx context.Context, db bun.IDB, team *ratingtypes.Team) error
}

// GameRepository is the storage surface for games.
type GameRepository interface {
	GetByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*ratingtypes.Game, error)
	Upsert(ctx context.Context, db bun.IDB, game *ratingtypes.Game) error
	UpdateProcessingState(ctx context.Context, db bun.IDB, game *ratingtypes.Game) error
	ListEligibleForTeam(ctx context.Context, db bun.IDB, team string, season int) ([]*ratingtypes.Game, error)
	ListCompletedForSeason(ctx context.Context, db bun.IDB, season int) ([]*ratingtypes.Game, error)
}
