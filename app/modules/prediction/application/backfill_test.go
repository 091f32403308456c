package predictionservice

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	predictionevents "github.com/gridiron-analytics/gridrank/app/modules/prediction/events"

	rankingdb "github.com/gridiron-analytics/gridrank/app/modules/ranking/infrastructure/repositories"
	ratingtypes "github.com/gridiron-analytics/gridrank/app/modules/rating/domain/types"
)

func completedGame(home, away string, week, homeScore, awayScore int) *ratingtypes.Game {
	g := unplayedGame(home, away, week)
	g.HomeScore = homeScore
	g.AwayScore = awayScore
	g.Processed = true
	return g
}

func TestBackfillPredictsAndScoresCompletedGames(t *testing.T) {
	g1 := completedGame("Georgia", "Vanderbilt", 8, 45, 10)
	g2 := completedGame("Vanderbilt", "Georgia", 10, 24, 21)
	unplayed := unplayedGame("Georgia", "Alabama", 12)

	snapshots := NewFakeSnapshotRepository()
	snapshots.SetRating(2025, 7, "Georgia", 1700)
	snapshots.SetRating(2025, 7, "Vanderbilt", 1400)
	snapshots.SetRating(2025, 9, "Georgia", 1720)
	snapshots.SetRating(2025, 9, "Vanderbilt", 1380)

	predictions := NewFakePredictionRepository()
	bus := NewFakeEventBus()
	s := newTestService(NewFakeTeamRepository(), NewFakeGameRepository(g1, g2, unplayed), snapshots, predictions, bus)

	report, err := s.Backfill(context.Background(), 2025)
	if err != nil {
		t.Fatalf("Backfill() error = %v", err)
	}
	if report.Succeeded != 2 || report.Failed != 0 || report.Warnings != 0 {
		t.Errorf("report = %+v, want 2 succeeded", report)
	}

	// Both completed games got scored; the unplayed one was never touched.
	for _, id := range []uuid.UUID{g1.ID, g2.ID} {
		p, ok := predictions.Predictions[id]
		if !ok {
			t.Fatalf("no prediction stored for game %s", id)
		}
		if !p.Resolved() {
			t.Errorf("prediction for game %s not scored", id)
		}
	}
	if _, ok := predictions.Predictions[unplayed.ID]; ok {
		t.Error("prediction created for unplayed game")
	}

	// Favorite won g1, underdog won g2.
	if c := predictions.Predictions[g1.ID].Correct; c == nil || !*c {
		t.Errorf("g1 correct = %v, want true", c)
	}
	if c := predictions.Predictions[g2.ID].Correct; c == nil || *c {
		t.Errorf("g2 correct = %v, want false", c)
	}

	var sawCompleted bool
	for _, e := range bus.Published {
		if e.Topic == predictionevents.BackfillCompletedTopic {
			sawCompleted = true
		}
	}
	if !sawCompleted {
		t.Error("no BackfillCompleted event published")
	}
}

func TestBackfillSkipsExistingPredictions(t *testing.T) {
	g := completedGame("Georgia", "Vanderbilt", 8, 45, 10)
	snapshots := NewFakeSnapshotRepository()
	snapshots.SetRating(2025, 7, "Georgia", 1700)
	snapshots.SetRating(2025, 7, "Vanderbilt", 1400)

	predictions := NewFakePredictionRepository()
	existing := storedPrediction(g.ID, "Georgia", "Vanderbilt", "Georgia", 0.9)
	predictions.Predictions[g.ID] = existing
	s := newTestService(NewFakeTeamRepository(), NewFakeGameRepository(g), snapshots, predictions, NewFakeEventBus())

	report, err := s.Backfill(context.Background(), 2025)
	if err != nil {
		t.Fatalf("Backfill() error = %v", err)
	}
	if report.Succeeded != 0 || report.Failed != 0 {
		t.Errorf("report = %+v, want all-zero counts", report)
	}
	if predictions.Predictions[g.ID].ID != existing.ID {
		t.Error("existing prediction was overwritten")
	}
}

func TestBackfillCountsFallbackWarnings(t *testing.T) {
	g := completedGame("Georgia", "New Program", 8, 45, 10)
	snapshots := NewFakeSnapshotRepository()
	snapshots.SetRating(2025, 7, "Georgia", 1700)
	// New Program has no snapshot: forecast degrades but does not fail.
	s := newTestService(NewFakeTeamRepository(), NewFakeGameRepository(g), snapshots, NewFakePredictionRepository(), NewFakeEventBus())

	report, err := s.Backfill(context.Background(), 2025)
	if err != nil {
		t.Fatalf("Backfill() error = %v", err)
	}
	if report.Succeeded != 1 || report.Warnings != 1 {
		t.Errorf("report = %+v, want 1 succeeded with 1 warning", report)
	}
}

func TestBackfillContinuesPastPerItemFailures(t *testing.T) {
	bad := completedGame("Georgia", "Vanderbilt", 8, 31, 14)
	good := completedGame("Vanderbilt", "Georgia", 9, 10, 45)

	snapshots := NewFakeSnapshotRepository()
	snapshots.SetRating(2025, 7, "Georgia", 1700)
	snapshots.SetRating(2025, 7, "Vanderbilt", 1400)
	snapshots.SetRating(2025, 8, "Georgia", 1720)
	snapshots.SetRating(2025, 8, "Vanderbilt", 1380)
	// Week 7 lookups (feeding the week-8 game) blow up outright, not as a
	// missing-snapshot fallback.
	inner := snapshots.Ratings
	snapshots.GetTeamRatingFunc = func(ctx context.Context, db bun.IDB, season, week int, team string) (float64, error) {
		if week == 7 {
			return 0, errors.New("storage offline")
		}
		rating, ok := inner[snapshotKey(season, week, team)]
		if !ok {
			return 0, rankingdb.ErrSnapshotNotFound
		}
		return rating, nil
	}

	predictions := NewFakePredictionRepository()
	s := newTestService(NewFakeTeamRepository(), NewFakeGameRepository(bad, good), snapshots, predictions, NewFakeEventBus())

	report, err := s.Backfill(context.Background(), 2025)
	if err != nil {
		t.Fatalf("Backfill() error = %v", err)
	}
	if report.Succeeded != 1 || report.Failed != 1 {
		t.Errorf("report = %+v, want 1 succeeded and 1 failed", report)
	}
	if len(report.Errors) != 1 {
		t.Errorf("report errors = %v, want one entry", report.Errors)
	}
	if _, ok := predictions.Predictions[good.ID]; !ok {
		t.Error("batch aborted instead of continuing past the failure")
	}
}
