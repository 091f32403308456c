package predictiondb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	predictiontypes "github.com/gridiron-analytics/gridrank/app/modules/prediction/domain/types"
)

// PredictionRepositoryImpl implements PredictionRepository on bun.
type PredictionRepositoryImpl struct {
	DB *bun.DB
}

func (r *PredictionRepositoryImpl) idb(db bun.IDB) bun.IDB {
	if db != nil {
		return db
	}
	return r.DB
}

// GetByGameID returns the forecast stored for one game.
func (r *PredictionRepositoryImpl) GetByGameID(ctx context.Context, db bun.IDB, gameID uuid.UUID) (*predictiontypes.Prediction, error) {
	var row Prediction
	err := r.idb(db).NewSelect().
		Model(&row).
		Where("game_id = ?", gameID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: game %s", ErrPredictionNotFound, gameID)
		}
		return nil, fmt.Errorf("failed to fetch prediction for game %s: %w", gameID, err)
	}
	return row.ToDomain(), nil
}

// Upsert inserts or replaces the forecast for a game, keyed by game id.
func (r *PredictionRepositoryImpl) Upsert(ctx context.Context, db bun.IDB, prediction *predictiontypes.Prediction) error {
	row := rowFromDomain(prediction)
	_, err := r.idb(db).NewInsert().
		Model(row).
		On("CONFLICT (game_id) DO UPDATE").
		Set("predicted_winner = EXCLUDED.predicted_winner").
		Set("predicted_home_score = EXCLUDED.predicted_home_score").
		Set("predicted_away_score = EXCLUDED.predicted_away_score").
		Set("home_win_probability = EXCLUDED.home_win_probability").
		Set("win_probability = EXCLUDED.win_probability").
		Set("confidence = EXCLUDED.confidence").
		Set("projected_rating_swing = EXCLUDED.projected_rating_swing").
		Set("home_rating_at_prediction = EXCLUDED.home_rating_at_prediction").
		Set("away_rating_at_prediction = EXCLUDED.away_rating_at_prediction").
		Set("used_fallback_rating = EXCLUDED.used_fallback_rating").
		Set("correct = EXCLUDED.correct").
		Set("actual_home_win = EXCLUDED.actual_home_win").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert prediction for game %s: %w", prediction.GameID, err)
	}
	return nil
}

// ListForSeason returns every forecast recorded for one season.
func (r *PredictionRepositoryImpl) ListForSeason(ctx context.Context, db bun.IDB, season int) ([]*predictiontypes.Prediction, error) {
	return r.list(ctx, db, season, false)
}

// ListResolvedForSeason returns only forecasts already scored against a
// result; accuracy metrics are defined over this subset.
func (r *PredictionRepositoryImpl) ListResolvedForSeason(ctx context.Context, db bun.IDB, season int) ([]*predictiontypes.Prediction, error) {
	return r.list(ctx, db, season, true)
}

func (r *PredictionRepositoryImpl) list(ctx context.Context, db bun.IDB, season int, resolvedOnly bool) ([]*predictiontypes.Prediction, error) {
	var rows []Prediction
	q := r.idb(db).NewSelect().
		Model(&rows).
		Where("season = ?", season).
		Order("week ASC", "id ASC")
	if resolvedOnly {
		q = q.Where("correct IS NOT NULL")
	}
	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list predictions for season %d: %w", season, err)
	}

	out := make([]*predictiontypes.Prediction, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}
	return out, nil
}
