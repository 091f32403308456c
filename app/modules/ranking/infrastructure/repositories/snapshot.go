package rankingdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	rankingtypes "github.com/gridiron-analytics/gridrank/app/modules/ranking/domain/types"
)

// SnapshotRepositoryImpl implements SnapshotRepository on bun.
type SnapshotRepositoryImpl struct {
	DB *bun.DB
}

func (r *SnapshotRepositoryImpl) idb(db bun.IDB) bun.IDB {
	if db != nil {
		return db
	}
	return r.DB
}

// UpsertEntries writes one snapshot row per ranking entry for the given week.
func (r *SnapshotRepositoryImpl) UpsertEntries(ctx context.Context, db bun.IDB, season, week int, entries []rankingtypes.RankingEntry) error {
	if len(entries) == 0 {
		return nil
	}

	rows := make([]RankingSnapshot, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, RankingSnapshot{
			Season:  season,
			Week:    week,
			Team:    e.Team,
			Rank:    e.Rank,
			Rating:  e.Rating,
			Wins:    e.Wins,
			Losses:  e.Losses,
			SOS:     e.SOS,
			SOSRank: e.SOSRank,
		})
	}

	_, err := r.idb(db).NewInsert().
		Model(&rows).
		On("CONFLICT (season, week, team) DO UPDATE").
		Set("rank = EXCLUDED.rank").
		Set("rating = EXCLUDED.rating").
		Set("wins = EXCLUDED.wins").
		Set("losses = EXCLUDED.losses").
		Set("sos = EXCLUDED.sos").
		Set("sos_rank = EXCLUDED.sos_rank").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert %d snapshot rows for season %d week %d: %w", len(rows), season, week, err)
	}
	return nil
}

// GetTeamRating returns a team's rating as recorded in one week's snapshot.
func (r *SnapshotRepositoryImpl) GetTeamRating(ctx context.Context, db bun.IDB, season, week int, team string) (float64, error) {
	var row RankingSnapshot
	err := r.idb(db).NewSelect().
		Model(&row).
		Where("season = ?", season).
		Where("week = ?", week).
		Where("team = ?", team).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("%w: season %d week %d team %s", ErrSnapshotNotFound, season, week, team)
		}
		return 0, fmt.Errorf("failed to fetch snapshot rating: %w", err)
	}
	return row.Rating, nil
}

// ListForTeam returns a team's snapshot history for one season in week order.
func (r *SnapshotRepositoryImpl) ListForTeam(ctx context.Context, db bun.IDB, season int, team string) ([]rankingtypes.SnapshotView, error) {
	var rows []RankingSnapshot
	err := r.idb(db).NewSelect().
		Model(&rows).
		Where("season = ?", season).
		Where("team = ?", team).
		Order("week ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots for team %s: %w", team, err)
	}

	views := make([]rankingtypes.SnapshotView, 0, len(rows))
	for i := range rows {
		views = append(views, rows[i].ToView())
	}
	return views, nil
}
