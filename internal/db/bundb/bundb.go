// Package bundb owns the Postgres connection and hands out the per-module
// repositories bound to it.
package bundb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	predictiondb "github.com/gridiron-analytics/gridrank/app/modules/prediction/infrastructure/repositories"
	rankingdb "github.com/gridiron-analytics/gridrank/app/modules/ranking/infrastructure/repositories"
	ratingdb "github.com/gridiron-analytics/gridrank/app/modules/rating/infrastructure/repositories"
)

// DBService bundles the repositories with the shared connection pool.
type DBService struct {
	Team       ratingdb.TeamRepository
	Game       ratingdb.GameRepository
	Snapshot   rankingdb.SnapshotRepository
	Prediction predictiondb.PredictionRepository

	db *bun.DB
}

// GetDB returns the underlying database connection pool.
func (s *DBService) GetDB() *bun.DB {
	return s.db
}

// Close closes the connection pool.
func (s *DBService) Close() error {
	return s.db.Close()
}

// NewBunDBService connects to Postgres and builds the repository set.
func NewBunDBService(ctx context.Context, dsn string) (*DBService, error) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	if err := sqldb.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db := bun.NewDB(sqldb, pgdialect.New())

	return &DBService{
		Team:       &ratingdb.TeamRepositoryImpl{DB: db},
		Game:       &ratingdb.GameRepositoryImpl{DB: db},
		Snapshot:   &rankingdb.SnapshotRepositoryImpl{DB: db},
		Prediction: &predictiondb.PredictionRepositoryImpl{DB: db},
		db:         db,
	}, nil
}
