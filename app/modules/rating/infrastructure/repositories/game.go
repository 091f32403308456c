package ratingdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	ratingtypes "github.com/gridiron-analytics/gridrank/app/modules/rating/domain/types"
)

// GameRepositoryImpl implements GameRepository on bun.
type GameRepositoryImpl struct {
	DB *bun.DB
}

func (r *GameRepositoryImpl) idb(db bun.IDB) bun.IDB {
	if db != nil {
		return db
	}
	return r.DB
}

func (r *GameRepositoryImpl) GetByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*ratingtypes.Game, error) {
	var row Game
	err := r.idb(db).NewSelect().
		Model(&row).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrGameNotFound, id)
		}
		return nil, fmt.Errorf("failed to fetch game %s: %w", id, err)
	}
	return row.ToDomain(), nil
}

func (r *GameRepositoryImpl) Upsert(ctx context.Context, db bun.IDB, game *ratingtypes.Game) error {
	row := gameRowFromDomain(game)
	row.UpdatedAt = time.Now().UTC()

	_, err := r.idb(db).NewInsert().
		Model(row).
		On("CONFLICT (id) DO UPDATE").
		Set("home_score = EXCLUDED.home_score").
		Set("away_score = EXCLUDED.away_score").
		Set("neutral_site = EXCLUDED.neutral_site").
		Set("quarters = EXCLUDED.quarters").
		Set("excluded_from_rankings = EXCLUDED.excluded_from_rankings").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert game %s: %w", game.ID, err)
	}
	return nil
}

// UpdateProcessingState records the outcome of rating application: the
// processed flag and both rating deltas.
func (r *GameRepositoryImpl) UpdateProcessingState(ctx context.Context, db bun.IDB, game *ratingtypes.Game) error {
	res, err := r.idb(db).NewUpdate().
		Model((*Game)(nil)).
		Set("processed = ?", game.Processed).
		Set("home_rating_delta = ?", game.HomeRatingDelta).
		Set("away_rating_delta = ?", game.AwayRatingDelta).
		Set("updated_at = ?", time.Now().UTC()).
		Where("id = ?", game.ID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update processing state for game %s: %w", game.ID, err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("%w: %s", ErrGameNotFound, game.ID)
	}
	return nil
}

// ListEligibleForTeam returns the processed, ranking-eligible games a team
// played in a season, ordered chronologically.
func (r *GameRepositoryImpl) ListEligibleForTeam(ctx context.Context, db bun.IDB, team string, season int) ([]*ratingtypes.Game, error) {
	var rows []Game
	err := r.idb(db).NewSelect().
		Model(&rows).
		Where("season = ?", season).
		Where("processed = TRUE").
		Where("excluded_from_rankings = FALSE").
		WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.WhereOr("home_team = ?", team).WhereOr("away_team = ?", team)
		}).
		Order("week ASC", "id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list eligible games for team %s: %w", team, err)
	}

	games := make([]*ratingtypes.Game, 0, len(rows))
	for i := range rows {
		games = append(games, rows[i].ToDomain())
	}
	return games, nil
}

// ListCompletedForSeason returns every game in a season with a real score,
// ordered by week then id so processing order is well defined.
func (r *GameRepositoryImpl) ListCompletedForSeason(ctx context.Context, db bun.IDB, season int) ([]*ratingtypes.Game, error) {
	var rows []Game
	err := r.idb(db).NewSelect().
		Model(&rows).
		Where("season = ?", season).
		WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.WhereOr("home_score <> 0").WhereOr("away_score <> 0")
		}).
		Order("week ASC", "id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list completed games for season %d: %w", season, err)
	}

	games := make([]*ratingtypes.Game, 0, len(rows))
	for i := range rows {
		games = append(games, rows[i].ToDomain())
	}
	return games, nil
}
