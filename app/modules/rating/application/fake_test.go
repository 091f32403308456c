package ratingservice

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	ratingtypes "github.com/gridiron-analytics/gridrank/app/modules/rating/domain/types"
	ratingdb "github.com/gridiron-analytics/gridrank/app/modules/rating/infrastructure/repositories"
)

// ------------------------
// Fake Team Repo
// ------------------------

// FakeTeamRepository provides a programmable in-memory stub for the
// ratingdb.TeamRepository interface. Reads hand out copies so callers mutate
// state the way they would against a real store: via UpdateRatingState.
type FakeTeamRepository struct {
	trace []string
	Teams map[string]*ratingtypes.Team

	GetByNameFunc         func(ctx context.Context, db bun.IDB, name string) (*ratingtypes.Team, error)
	UpdateRatingStateFunc func(ctx context.Context, db bun.IDB, team *ratingtypes.Team) error
}

func NewFakeTeamRepository(teams ...*ratingtypes.Team) *FakeTeamRepository {
	f := &FakeTeamRepository{
		trace: []string{},
		Teams: map[string]*ratingtypes.Team{},
	}
	for _, t := range teams {
		copied := *t
		f.Teams[t.Name] = &copied
	}
	return f
}

// Trace returns the sequence of method calls made to the fake.
func (f *FakeTeamRepository) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeTeamRepository) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeTeamRepository) GetByName(ctx context.Context, db bun.IDB, name string) (*ratingtypes.Team, error) {
	f.record("GetByName")
	if f.GetByNameFunc != nil {
		return f.GetByNameFunc(ctx, db, name)
	}
	team, ok := f.Teams[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ratingdb.ErrTeamNotFound, name)
	}
	copied := *team
	return &copied, nil
}

func (f *FakeTeamRepository) List(ctx context.Context, db bun.IDB) ([]*ratingtypes.Team, error) {
	f.record("List")
	out := make([]*ratingtypes.Team, 0, len(f.Teams))
	for _, t := range f.Teams {
		copied := *t
		out = append(out, &copied)
	}
	return out, nil
}

func (f *FakeTeamRepository) Upsert(ctx context.Context, db bun.IDB, team *ratingtypes.Team) error {
	f.record("Upsert")
	copied := *team
	f.Teams[team.Name] = &copied
	return nil
}

func (f *FakeTeamRepository) UpdateRatingState(ctx context.Context, db bun.IDB, team *ratingtypes.Team) error {
	f.record("UpdateRatingState")
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

// FakeGameRepository provides a programmable in-memory stub for the
// ratingdb.GameRepository interface.
type FakeGameRepository struct {
	trace []string
	Games map[uuid.UUID]*ratingtypes.Game

	GetByIDFunc               func(ctx context.Context, db bun.IDB, id uuid.UUID) (*ratingtypes.Game, error)
	UpdateProcessingStateFunc func(ctx context.Context, db bun.IDB, game *ratingtypes.Game) error
}

func NewFakeGameRepository(games ...*ratingtypes.Game) *FakeGameRepository {
	f := &FakeGameRepository{
		trace: []string{},
		Games: map[uuid.UUID]*ratingtypes.Game{},
	}
	for _, g := range games {
		copied := *g
		f.Games[g.ID] = &copied
	}
	return f
}

func (f *FakeGameRepository) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeGameRepository) GetByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*ratingtypes.Game, error) {
	f.record("GetByID")
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, db, id)
	}
	game, ok := f.Games[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ratingdb.ErrGameNotFound, id)
	}
	copied := *game
	return &copied, nil
}

func (f *FakeGameRepository) Upsert(ctx context.Context, db bun.IDB, game *ratingtypes.Game) error {
	f.record("Upsert")
	copied := *game
	f.Games[game.ID] = &copied
	return nil
}

func (f *FakeGameRepository) UpdateProcessingState(ctx context.Context, db bun.IDB, game *ratingtypes.Game) error {
	f.record("UpdateProcessingState")
	if f.UpdateProcessingStateFunc != nil {
		return f.UpdateProcessingStateFunc(ctx, db, game)
	}
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
	f.record("ListEligibleForTeam")
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
	f.record("ListCompletedForSeason")
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
// Fake Event Bus
// ------------------------

type publishedEvent struct {
	Topic   string
	Payload any
}

// FakeEventBus records published events.
type FakeEventBus struct {
	Published   []publishedEvent
	PublishFunc func(ctx context.Context, topic string, payload any) error
}

func NewFakeEventBus() *FakeEventBus {
	return &FakeEventBus{}
}

func (f *FakeEventBus) Publish(ctx context.Context, topic string, payload any) error {
	f.Published = append(f.Published, publishedEvent{Topic: topic, Payload: payload})
	if f.PublishFunc != nil {
		return f.PublishFunc(ctx, topic, payload)
	}
	return nil
}

func (f *FakeEventBus) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	return nil, nil
}

func (f *FakeEventBus) Close() error { return nil }
