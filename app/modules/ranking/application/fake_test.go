package rankingservice

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	rankingtypes "github.com/gridiron-analytics/gridrank/app/modules/ranking/domain/types"
	rankingdb "github.com/gridiron-analytics/gridrank/app/modules/ranking/infrastructure/repositories"
	ratingtypes "github.com/gridiron-analytics/gridrank/app/modules/rating/domain/types"
	ratingdb "github.com/gridiron-analytics/gridrank/app/modules/rating/infrastructure/repositories"
)

// ------------------------
// Fake Team Repo
// ------------------------

// FakeTeamRepository is an in-memory stub for ratingdb.TeamRepository that
// preserves insertion order on List, matching the stable ordering the real
// store provides.
type FakeTeamRepository struct {
	order []string
	Teams map[string]*ratingtypes.Team

	ListFunc              func(ctx context.Context, db bun.IDB) ([]*ratingtypes.Team, error)
	UpdateRatingStateFunc func(ctx context.Context, db bun.IDB, team *ratingtypes.Team) error
}

func NewFakeTeamRepository(teams ...*ratingtypes.Team) *FakeTeamRepository {
	f := &FakeTeamRepository{Teams: map[string]*ratingtypes.Team{}}
	for _, t := range teams {
		copied := *t
		f.Teams[t.Name] = &copied
		f.order = append(f.order, t.Name)
	}
	return f
}

func (f *FakeTeamRepository) GetByName(ctx context.Context, db bun.IDB, name string) (*ratingtypes.Team, error) {
	team, ok := f.Teams[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ratingdb.ErrTeamNotFound, name)
	}
	copied := *team
	return &copied, nil
}

func (f *FakeTeamRepository) List(ctx context.Context, db bun.IDB) ([]*ratingtypes.Team, error) {
	if f.ListFunc != nil {
		return f.ListFunc(ctx, db)
	}
	out := make([]*ratingtypes.Team, 0, len(f.order))
	for _, name := range f.order {
		copied := *f.Teams[name]
		out = append(out, &copied)
	}
	return out, nil
}

func (f *FakeTeamRepository) Upsert(ctx context.Context, db bun.IDB, team *ratingtypes.Team) error {
	if _, ok := f.Teams[team.Name]; !ok {
		f.order = append(f.order, team.Name)
	}
	copied := *team
	f.Teams[team.Name] = &copied
	return nil
}

func (f *FakeTeamRepository) UpdateRatingState(ctx context.Context, db bun.IDB, team *ratingtypes.Team) error {
	if f.UpdateRatingStateFunc != nil {
		return f.UpdateRatingStateFunc(ctx, db, team)
	}
	stored, ok := f.Teams[team.Name]
	if !ok {
		return fmt.Errorf("%w: %s", ratingdb.ErrTeamNotFound, team.Name)
	}
	stored.CurrentRating = team.CurrentRating
	stored.InitialRating = team.InitialRating
	stored.Wins = team.Wins
	stored.Losses = team.Losses
	return nil
}

// ------------------------
// Fake Game Repo
// ------------------------

// FakeGameRepository is an in-memory stub for ratingdb.GameRepository.
type FakeGameRepository struct {
	Games map[uuid.UUID]*ratingtypes.Game

	ListEligibleForTeamFunc func(ctx context.Context, db bun.IDB, team string, season int) ([]*ratingtypes.Game, error)
}

func NewFakeGameRepository(games ...*ratingtypes.Game) *FakeGameRepository {
	f := &FakeGameRepository{Games: map[uuid.UUID]*ratingtypes.Game{}}
	for _, g := range games {
		copied := *g
		f.Games[g.ID] = &copied
	}
	return f
}

func (f *FakeGameRepository) GetByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*ratingtypes.Game, error) {
	game, ok := f.Games[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ratingdb.ErrGameNotFound, id)
	}
	copied := *game
	return &copied, nil
}

func (f *FakeGameRepository) Upsert(ctx context.Context, db bun.IDB, game *ratingtypes.Game) error {
	copied := *game
	f.Games[game.ID] = &copied
	return nil
}

func (f *FakeGameRepository) UpdateProcessingState(ctx context.Context, db bun.IDB, game *ratingtypes.Game) error {
	stored, ok := f.Games[game.ID]
	if !ok {
		return fmt.Errorf("%w: %s", ratingdb.ErrGameNotFound, game.ID)
	}
	stored.Processed = game.Processed
	stored.HomeRatingDelta = game.HomeRatingDelta
	stored.AwayRatingDelta = game.AwayRatingDelta
	return nil
}

func (f *FakeGameRepository) ListEligibleForTeam(ctx context.Context, db bun.IDB, team string, season int) ([]*ratingtypes.Game, error) {
	if f.ListEligibleForTeamFunc != nil {
		return f.ListEligibleForTeamFunc(ctx, db, team, season)
	}
	var out []*ratingtypes.Game
	for _, g := range f.Games {
		if g.Season != season || !g.Processed || g.ExcludedFromRankings {
			continue
		}
		if g.HomeTeam == team || g.AwayTeam == team {
			copied := *g
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *FakeGameRepository) ListCompletedForSeason(ctx context.Context, db bun.IDB, season int) ([]*ratingtypes.Game, error) {
	var out []*ratingtypes.Game
	for _, g := range f.Games {
		if g.Season == season && g.HasScore() {
			copied := *g
			out = append(out, &copied)
		}
	}
	return out, nil
}

// ------------------------
// Fake Snapshot Repo
// ------------------------

type savedSnapshot struct {
	Season  int
	Week    int
	Entries []rankingtypes.RankingEntry
}

// FakeSnapshotRepository is an in-memory stub for rankingdb.SnapshotRepository.
type FakeSnapshotRepository struct {
	Saved []savedSnapshot

	UpsertEntriesFunc func(ctx context.Context, db bun.IDB, season, week int, entries []rankingtypes.RankingEntry) error
	GetTeamRatingFunc func(ctx context.Context, db bun.IDB, season, week int, team string) (float64, error)
}

func NewFakeSnapshotRepository() *FakeSnapshotRepository {
	return &FakeSnapshotRepository{}
}

func (f *FakeSnapshotRepository) UpsertEntries(ctx context.Context, db bun.IDB, season, week int, entries []rankingtypes.RankingEntry) error {
	if f.UpsertEntriesFunc != nil {
		return f.UpsertEntriesFunc(ctx, db, season, week, entries)
	}
	copied := make([]rankingtypes.RankingEntry, len(entries))
	copy(copied, entries)
	f.Saved = append(f.Saved, savedSnapshot{Season: season, Week: week, Entries: copied})
	return nil
}

func (f *FakeSnapshotRepository) GetTeamRating(ctx context.Context, db bun.IDB, season, week int, team string) (float64, error) {
	if f.GetTeamRatingFunc != nil {
		return f.GetTeamRatingFunc(ctx, db, season, week, team)
	}
	for _, snap := range f.Saved {
		if snap.Season != season || snap.Week != week {
			continue
		}
		for _, e := range snap.Entries {
			if e.Team == team {
				return e.Rating, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %s season %d week %d", rankingdb.ErrSnapshotNotFound, team, season, week)
}

func (f *FakeSnapshotRepository) ListForTeam(ctx context.Context, db bun.IDB, season int, team string) ([]rankingtypes.SnapshotView, error) {
	var out []rankingtypes.SnapshotView
	for _, snap := range f.Saved {
		if snap.Season != season {
			continue
		}
		for _, e := range snap.Entries {
			if e.Team == team {
				out = append(out, rankingtypes.SnapshotView{
					Season: season,
					Week:   snap.Week,
					Rank:   e.Rank,
					Rating: e.Rating,
				})
			}
		}
	}
	return out, nil
}

// ------------------------
// Fake Event Bus
// ------------------------

type publishedEvent struct {
	Topic   string
	Payload any
}

// FakeEventBus records published events.
type FakeEventBus struct {
	Published []publishedEvent
}

func NewFakeEventBus() *FakeEventBus {
	return &FakeEventBus{}
}

func (f *FakeEventBus) Publish(ctx context.Context, topic string, payload any) error {
	f.Published = append(f.Published, publishedEvent{Topic: topic, Payload: payload})
	return nil
}

func (f *FakeEventBus) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	return nil, nil
}

func (f *FakeEventBus) Close() error { return nil }
