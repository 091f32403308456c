package rankingmigrations

import (
	"context"

	"github.com/uptrace/bun"

	rankingdb "github.com/gridiron-analytics/gridrank/app/modules/ranking/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		if _, err := db.NewCreateTable().Model((*rankingdb.RankingSnapshot)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewCreateIndex().
			Model((*rankingdb.RankingSnapshot)(nil)).
			Index("idx_ranking_snapshots_season_week_team").
			Column("season", "week", "team").
			Unique().
			IfNotExists().
			Exec(ctx); err != nil {
			return err
		}
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		_, err := db.NewDropTable().Model((*rankingdb.RankingSnapshot)(nil)).IfExists().Exec(ctx)
		return err
	})
}
