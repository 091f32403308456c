package rankingdb

import (
	"time"

	"github.com/uptrace/bun"

	rankingtypes "github.com/gridiron-analytics/gridrank/app/modules/ranking/domain/types"
)

// RankingSnapshot is one persisted standings row: a team's rank, rating, and
// schedule strength as of a given week. History is append-only; the same
// (season, week, team) is overwritten on recomputation.
type RankingSnapshot struct {
	bun.BaseModel `bun:"table:ranking_snapshots,alias:rs"`

	ID        int64     `bun:"id,pk,autoincrement" json:"id"`
	Season    int       `bun:"season,notnull" json:"season"`
	Week      int       `bun:"week,notnull" json:"week"`
	Team      string    `bun:"team,notnull" json:"team"`
	Rank      int       `bun:"rank,notnull" json:"rank"`
	Rating    float64   `bun:"rating,notnull" json:"rating"`
	Wins      int       `bun:"wins,notnull,default:0" json:"wins"`
	Losses    int       `bun:"losses,notnull,default:0" json:"losses"`
	SOS       float64   `bun:"sos,notnull,default:0" json:"sos"`
	SOSRank   int       `bun:"sos_rank,notnull,default:0" json:"sos_rank"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
}

// ToView converts the row into the history view used by charts and
// historical forecasts.
func (s *RankingSnapshot) ToView() rankingtypes.SnapshotView {
	return rankingtypes.SnapshotView{
		Season: s.Season,
		Week:   s.Week,
		Rank:   s.Rank,
		Rating: s.Rating,
	}
}
