package predictionservice

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	predictiontypes "github.com/gridiron-analytics/gridrank/app/modules/prediction/domain/types"
	predictiondb "github.com/gridiron-analytics/gridrank/app/modules/prediction/infrastructure/repositories"
	rankingtypes "github.com/gridiron-analytics/gridrank/app/modules/ranking/domain/types"
	rankingdb "github.com/gridiron-analytics/gridrank/app/modules/ranking/infrastructure/repositories"
	ratingtypes "github.com/gridiron-analytics/gridrank/app/modules/rating/domain/types"
	ratingdb "github.com/gridiron-analytics/gridrank/app/modules/rating/infrastructure/repositories"
)

// ------------------------
// Fake Team Repo
// ------------------------

// FakeTeamRepository is an in-memory stub for ratingdb.TeamRepository.
type FakeTeamRepository struct {
	Teams map[string]*ratingtypes.Team
}

func NewFakeTeamRepository(teams ...*ratingtypes.Team) *FakeTeamRepository {
	f := &FakeTeamRepository{Teams: map[string]*ratingtypes.Team{}}
	for _, t := range teams {
		copied := *t
		f.Teams[t.Name] = &copied
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
	out := make([]*ratingtypes.Team, 0, len(f.Teams))
	for _, t := range f.Teams {
		copied := *t
		out = append(out, &copied)
	}
	return out, nil
}

func (f *FakeTeamRepository) Upsert(ctx context.Context, db bun.IDB, team *ratingtypes.Team) error {
	copied := *team
	f.Teams[team.Name] = &copied
	return nil
}

func (f *FakeTeamRepository) UpdateRatingState(ctx context.Context, db bun.IDB, team *ratingtypes.Team) error {
	return f.Upsert(ctx, db, team)
}

// ------------------------
// Fake Game Repo
// ------------------------

// FakeGameRepository is an in-memory stub for ratingdb.GameRepository. Games
// enumerate in insertion order so batch tests are deterministic.
type FakeGameRepository struct {
	order []uuid.UUID
	Games map[uuid.UUID]*ratingtypes.Game
}

func NewFakeGameRepository(games ...*ratingtypes.Game) *FakeGameRepository {
	f := &FakeGameRepository{Games: map[uuid.UUID]*ratingtypes.Game{}}
	for _, g := range games {
		copied := *g
		f.Games[g.ID] = &copied
		f.order = append(f.order, g.ID)
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
	if _, ok := f.Games[game.ID]; !ok {
		f.order = append(f.order, game.ID)
	}
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
	var out []*ratingtypes.Game
	for _, id := range f.order {
		g := f.Games[id]
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
	for _, id := range f.order {
		g := f.Games[id]
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

// FakeSnapshotRepository stubs rankingdb.SnapshotRepository with a flat
// (season, week, team) → rating map.
type FakeSnapshotRepository struct {
	Ratings map[string]float64

	GetTeamRatingFunc func(ctx context.Context, db bun.IDB, season, week int, team string) (float64, error)
}

func NewFakeSnapshotRepository() *FakeSnapshotRepository {
	return &FakeSnapshotRepository{Ratings: map[string]float64{}}
}

func snapshotKey(season, week int, team string) string {
	return fmt.Sprintf("%d/%d/%s", season, week, team)
}

// SetRating seeds one snapshot rating.
func (f *FakeSnapshotRepository) SetRating(season, week int, team string, rating float64) {
	f.Ratings[snapshotKey(season, week, team)] = rating
}

func (f *FakeSnapshotRepository) UpsertEntries(ctx context.Context, db bun.IDB, season, week int, entries []rankingtypes.RankingEntry) error {
	for _, e := range entries {
		f.SetRating(season, week, e.Team, e.Rating)
	}
	return nil
}

func (f *FakeSnapshotRepository) GetTeamRating(ctx context.Context, db bun.IDB, season, week int, team string) (float64, error) {
	if f.GetTeamRatingFunc != nil {
		return f.GetTeamRatingFunc(ctx, db, season, week, team)
	}
	rating, ok := f.Ratings[snapshotKey(season, week, team)]
	if !ok {
		return 0, fmt.Errorf("%w: season %d week %d team %s", rankingdb.ErrSnapshotNotFound, season, week, team)
	}
	return rating, nil
}

func (f *FakeSnapshotRepository) ListForTeam(ctx context.Context, db bun.IDB, season int, team string) ([]rankingtypes.SnapshotView, error) {
	return nil, nil
}

// ------------------------
// Fake Prediction Repo
// ------------------------

// FakePredictionRepository is an in-memory stub keyed by game id.
type FakePredictionRepository struct {
	Predictions map[uuid.UUID]*predictiontypes.Prediction

	UpsertFunc func(ctx context.Context, db bun.IDB, prediction *predictiontypes.Prediction) error
}

func NewFakePredictionRepository() *FakePredictionRepository {
	return &FakePredictionRepository{Predictions: map[uuid.UUID]*predictiontypes.Prediction{}}
}

func (f *FakePredictionRepository) GetByGameID(ctx context.Context, db bun.IDB, gameID uuid.UUID) (*predictiontypes.Prediction, error) {
	p, ok := f.Predictions[gameID]
	if !ok {
		return nil, fmt.Errorf("%w: game %s", predictiondb.ErrPredictionNotFound, gameID)
	}
	copied := *p
	return &copied, nil
}

func (f *FakePredictionRepository) Upsert(ctx context.Context, db bun.IDB, prediction *predictiontypes.Prediction) error {
	if f.UpsertFunc != nil {
		return f.UpsertFunc(ctx, db, prediction)
	}
	copied := *prediction
	f.Predictions[prediction.GameID] = &copied
	return nil
}

func (f *FakePredictionRepository) ListForSeason(ctx context.Context, db bun.IDB, season int) ([]*predictiontypes.Prediction, error) {
	var out []*predictiontypes.Prediction
	for _, p := range f.Predictions {
		if p.Season == season {
			copied := *p
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *FakePredictionRepository) ListResolvedForSeason(ctx context.Context, db bun.IDB, season int) ([]*predictiontypes.Prediction, error) {
	var out []*predictiontypes.Prediction
	for _, p := range f.Predictions {
		if p.Season == season && p.Resolved() {
			copied := *p
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
