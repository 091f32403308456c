package ratingdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	ratingtypes "github.com/gridiron-analytics/gridrank/app/modules/rating/domain/types"
)

// TeamRepositoryImpl implements TeamRepository on bun.
type TeamRepositoryImpl struct {
	DB *bun.DB
}

func (r *TeamRepositoryImpl) idb(db bun.IDB) bun.IDB {
	if db != nil {
		return db
	}
	return r.DB
}

func (r *TeamRepositoryImpl) GetByName(ctx context.Context, db bun.IDB, name string) (*ratingtypes.Team, error) {
	var row Team
	err := r.idb(db).NewSelect().
		Model(&row).
		Where("name = ?", name).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrTeamNotFound, name)
		}
		return nil, fmt.Errorf("failed to fetch team %s: %w", name, err)
	}
	return row.ToDomain(), nil
}

// List returns all teams in insertion order. The stable ordering matters:
// ranking ties are broken by this order rather than by a secondary key.
func (r *TeamRepositoryImpl) List(ctx context.Context, db bun.IDB) ([]*ratingtypes.Team, error) {
	var rows []Team
	err := r.idb(db).NewSelect().
		Model(&rows).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	teams := make([]*ratingtypes.Team, 0, len(rows))
	for i := range rows {
		teams = append(teams, rows[i].ToDomain())
	}
	return teams, nil
}

func (r *TeamRepositoryImpl) Upsert(ctx context.Context, db bun.IDB, team *ratingtypes.Team) error {
	row := teamRowFromDomain(team)
	row.UpdatedAt = time.Now().UTC()

	_, err := r.idb(db).NewInsert().
		Model(row).
		On("CONFLICT (name) DO UPDATE").
		Set("tier = EXCLUDED.tier").
		Set("recruiting_rank = EXCLUDED.recruiting_rank").
		Set("transfer_rank = EXCLUDED.transfer_rank").
		Set("returning_production = EXCLUDED.returning_production").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert team %s: %w", team.Name, err)
	}
	return nil
}

// UpdateRatingState writes the mutable rating fields of one team. Preseason
// inputs are deliberately untouched here.
func (r *TeamRepositoryImpl) UpdateRatingState(ctx context.Context, db bun.IDB, team *ratingtypes.Team) error {
	res, err := r.idb(db).NewUpdate().
		Model((*Team)(nil)).
		Set("current_rating = ?", team.CurrentRating).
		Set("initial_rating = ?", team.InitialRating).
		Set("wins = ?", team.Wins).
		Set("losses = ?", team.Losses).
		Set("updated_at = ?", time.Now().UTC()).
		Where("name = ?", team.Name).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update rating state for team %s: %w", team.Name, err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("%w: %s", ErrTeamNotFound, team.Name)
	}
	return nil
}
