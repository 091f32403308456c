package predictionmigrations

import (
	"context"

	"github.com/uptrace/bun"

	predictiondb "github.com/gridiron-analytics/gridrank/app/modules/prediction/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		if _, err := db.NewCreateTable().Model((*predictiondb.Prediction)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewCreateIndex().
			Model((*predictiondb.Prediction)(nil)).
			Index("idx_predictions_season_week").
			Column("season", "week").
			IfNotExists().
			Exec(ctx); err != nil {
			return err
		}
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		_, err := db.NewDropTable().Model((*predictiondb.Prediction)(nil)).IfExists().Exec(ctx)
		return err
	})
}
