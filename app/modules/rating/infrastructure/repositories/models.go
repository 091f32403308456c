package ratingdb

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	ratingtypes "github.com/gridiron-analytics/gridrank/app/modules/rating/domain/types"
)

// Team is the persisted row for one program.
type Team struct {
	bun.BaseModel `bun:"table:teams,alias:t"`

	ID                  int64     `bun:"id,pk,autoincrement" json:"id"`
	Name                string    `bun:"name,unique,notnull" json:"name"`
	Tier                string    `bun:"tier,notnull" json:"tier"`
	RecruitingRank      int       `bun:"recruiting_rank,notnull,default:999" json:"recruiting_rank"`
	TransferRank        int       `bun:"transfer_rank,notnull,default:999" json:"transfer_rank"`
	ReturningProduction float64   `bun:"returning_production,notnull,default:0" json:"returning_production"`
	CurrentRating       float64   `bun:"current_rating,notnull,default:1500" json:"current_rating"`
	InitialRating       float64   `bun:"initial_rating,notnull,default:1500" json:"initial_rating"`
	Wins                int       `bun:"wins,notnull,default:0" json:"wins"`
	Losses              int       `bun:"losses,notnull,default:0" json:"losses"`
	CreatedAt           time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt           time.Time `bun:"updated_at,notnull,default:current_timestamp" json:"updated_at"`
}

// ToDomain converts the row into the engine's team state.
func (t *Team) ToDomain() *ratingtypes.Team {
	return &ratingtypes.Team{
		Name:                t.Name,
		Tier:                ratingtypes.Tier(t.Tier),
		RecruitingRank:      t.RecruitingRank,
		TransferRank:        t.TransferRank,
		ReturningProduction: t.ReturningProduction,
		CurrentRating:       t.CurrentRating,
		InitialRating:       t.InitialRating,
		Wins:                t.Wins,
		Losses:              t.Losses,
	}
}

func teamRowFromDomain(d *ratingtypes.Team) *Team {
	return &Team{
		Name:                d.Name,
		Tier:                string(d.Tier),
		RecruitingRank:      d.RecruitingRank,
		TransferRank:        d.TransferRank,
		ReturningProduction: d.ReturningProduction,
		CurrentRating:       d.CurrentRating,
		InitialRating:       d.InitialRating,
		Wins:                d.Wins,
		Losses:              d.Losses,
	}
}

// Game is the persisted row for one matchup.
type Game struct {
	bun.BaseModel `bun:"table:games,alias:g"`

	ID                   uuid.UUID                `bun:"id,pk,type:uuid" json:"id"`
	Season               int                      `bun:"season,notnull" json:"season"`
	Week                 int                      `bun:"week,notnull" json:"week"`
	HomeTeam             string                   `bun:"home_team,notnull" json:"home_team"`
	AwayTeam             string                   `bun:"away_team,notnull" json:"away_team"`
	HomeScore            int                      `bun:"home_score,notnull,default:0" json:"home_score"`
	AwayScore            int                      `bun:"away_score,notnull,default:0" json:"away_score"`
	NeutralSite          bool                     `bun:"neutral_site,notnull,default:false" json:"neutral_site"`
	Quarters             *ratingtypes.QuarterLine `bun:"quarters,type:jsonb,nullzero" json:"quarters,omitempty"`
	Processed            bool                     `bun:"processed,notnull,default:false" json:"processed"`
	ExcludedFromRankings bool                     `bun:"excluded_from_rankings,notnull,default:false" json:"excluded_from_rankings"`
	HomeRatingDelta      float64                  `bun:"home_rating_delta,notnull,default:0" json:"home_rating_delta"`
	AwayRatingDelta      float64                  `bun:"away_rating_delta,notnull,default:0" json:"away_rating_delta"`
	CreatedAt            time.Time                `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt            time.Time                `bun:"updated_at,notnull,default:current_timestamp" json:"updated_at"`
}

// ToDomain converts the row into the engine's game state.
func (g *Game) ToDomain() *ratingtypes.Game {
	return &ratingtypes.Game{
		ID:                   g.ID,
		Season:               g.Season,
		Week:                 g.Week,
		HomeTeam:             g.HomeTeam,
		AwayTeam:             g.AwayTeam,
		HomeScore:            g.HomeScore,
		AwayScore:            g.AwayScore,
		NeutralSite:          g.NeutralSite,
		Quarters:             g.Quarters,
		Processed:            g.Processed,
		ExcludedFromRankings: g.ExcludedFromRankings,
		HomeRatingDelta:      g.HomeRatingDelta,
		AwayRatingDelta:      g.AwayRatingDelta,
	}
}

func gameRowFromDomain(d *ratingtypes.Game) *Game {
	return &Game{
		ID:                   d.ID,
		Season:               d.Season,
		Week:                 d.Week,
		HomeTeam:             d.HomeTeam,
		AwayTeam:             d.AwayTeam,
		HomeScore:            d.HomeScore,
		AwayScore:            d.AwayScore,
		NeutralSite:          d.NeutralSite,
		Quarters:             d.Quarters,
		Processed:            d.Processed,
		ExcludedFromRankings: d.ExcludedFromRankings,
		HomeRatingDelta:      d.HomeRatingDelta,
		AwayRatingDelta:      d.AwayRatingDelta,
	}
}
