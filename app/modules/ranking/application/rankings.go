package rankingservice

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"time"

	rankingtypes "github.com/gridiron-analytics/gridrank/app/modules/ranking/domain/types"
)

// GetCurrentRankings orders all teams strictly descending by current rating
// and attaches strength of schedule and its secondary ordering. Ties keep
// the teams' stable storage order; there is no secondary sort key. When
// limit is positive the primary list is truncated after ranking, so SOS
// ranks always reflect the full pool.
func (s *RankingService) GetCurrentRankings(ctx context.Context, season, limit int) ([]rankingtypes.RankingEntry, error) {
	ctx, span := s.tracer.Start(ctx, "GetCurrentRankings")
	defer span.End()

	start := time.Now()
	s.metrics.RecordOperationAttempt(ctx, "GetCurrentRankings")
	defer func() { s.metrics.RecordOperationDuration(ctx, "GetCurrentRankings", time.Since(start)) }()

	teams, err := s.teamRepo.List(ctx, nil)
	if err != nil {
		s.metrics.RecordOperationFailure(ctx, "GetCurrentRankings")
		return nil, err
	}

	ratingByName := make(map[string]float64, len(teams))
	for _, t := range teams {
		ratingByName[t.Name] = t.CurrentRating
	}

	entries := make([]rankingtypes.RankingEntry, 0, len(teams))
	for _, t := range teams {
		sos, err := s.sosForTeam(ctx, t.Name, season, ratingByName)
		if err != nil {
			s.metrics.RecordOperationFailure(ctx, "GetCurrentRankings")
			return nil, err
		}
		entries = append(entries, rankingtypes.RankingEntry{
			Team:   t.Name,
			Rating: round2(t.CurrentRating),
			Wins:   t.Wins,
			Losses: t.Losses,
			SOS:    round2(sos),
		})
	}

	// Stable sort: equal ratings keep storage order.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Rating > entries[j].Rating
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}

	// SOS ranks are computed over the full pool before any truncation.
	order := make([]int, len(entries))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return entries[order[a]].SOS > entries[order[b]].SOS
	})
	for pos, idx := range order {
		entries[idx].SOSRank = pos + 1
	}

	if limit > 0 && limit < len(entries) {
		entries = entries[:limit]
	}

	s.logger.DebugContext(ctx, "Computed rankings",
		slog.Int("season", season),
		slog.Int("teams", len(entries)),
	)
	s.metrics.RecordOperationSuccess(ctx, "GetCurrentRankings")
	return entries, nil
}

// CalculateSOS returns the average current rating of the opponents a team
// faced in processed, ranking-eligible games this season. A team with no
// eligible games has an SOS of exactly 0.
func (s *RankingService) CalculateSOS(ctx context.Context, team string, season int) (float64, error) {
	ctx, span := s.tracer.Start(ctx, "CalculateSOS")
	defer span.End()

	if _, err := s.teamRepo.GetByName(ctx, nil, team); err != nil {
		return 0, err
	}

	teams, err := s.teamRepo.List(ctx, nil)
	if err != nil {
		return 0, err
	}
	ratingByName := make(map[string]float64, len(teams))
	for _, t := range teams {
		ratingByName[t.Name] = t.CurrentRating
	}

	return s.sosForTeam(ctx, team, season, ratingByName)
}

// sosForTeam averages opponents' ratings as known now, not as they were when
// the games were played: SOS keeps moving as past opponents keep playing.
func (s *RankingService) sosForTeam(ctx context.Context, team string, season int, ratingByName map[string]float64) (float64, error) {
	games, err := s.gameRepo.ListEligibleForTeam(ctx, nil, team, season)
	if err != nil {
		return 0, err
	}
	if len(games) == 0 {
		return 0.0, nil
	}

	var sum float64
	var count int
	for _, g := range games {
		opponent := g.HomeTeam
		if opponent == team {
			opponent = g.AwayTeam
		}
		rating, ok := ratingByName[opponent]
		if !ok {
			// Untracked opponent; nothing to average in.
			continue
		}
		sum += rating
		count++
	}
	if count == 0 {
		return 0.0, nil
	}
	return sum / float64(count), nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
