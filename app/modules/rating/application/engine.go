package ratingservice

import (
	"fmt"

	ratingtypes "github.com/gridiron-analytics/gridrank/app/modules/rating/domain/types"
)

// validateGame checks every precondition for rating application. It never
// mutates state; the first violated invariant is returned as a
// ValidationError naming the game.
func validateGame(cfg ratingtypes.EngineConfig, game *ratingtypes.Game) error {
	if !game.HasScore() {
		return ratingtypes.NewValidationError(game.ID, ratingtypes.ErrNoScores, "")
	}
	if !cfg.WeekInRange(game.Week) {
		return ratingtypes.NewValidationError(game.ID, ratingtypes.ErrWeekOutOfRange,
			fmt.Sprintf("week %d outside [%d, %d]", game.Week, cfg.MinWeek, cfg.MaxWeek))
	}
	if !cfg.SeasonInRange(game.Season) {
		return ratingtypes.NewValidationError(game.ID, ratingtypes.ErrSeasonOutOfRange,
			fmt.Sprintf("season %d outside [%d, %d]", game.Season, cfg.MinSeason, cfg.MaxSeason))
	}
	if game.ExcludedFromRankings {
		return ratingtypes.NewValidationError(game.ID, ratingtypes.ErrExcludedGame, "")
	}
	if !game.QuartersConsistent() {
		return ratingtypes.NewValidationError(game.ID, ratingtypes.ErrInconsistentScores, "")
	}
	return nil
}

// applyGame runs the rating update for one validated game, mutating both
// teams and the game in place, and returns the audit result. The caller owns
// persistence and must have resolved home/away to the game's teams.
//
// Equal final scores credit the away side unless configured otherwise; the
// sport does not produce ties for graded games, so this is a documented
// policy for bad data rather than a designed rule.
func applyGame(cfg ratingtypes.EngineConfig, game *ratingtypes.Game, home, away *ratingtypes.Team) (*ratingtypes.GameResult, error) {
	if err := validateGame(cfg, game); err != nil {
		return nil, err
	}

	var winner, loser *ratingtypes.Team
	var winnerScore, loserScore int
	homeWon := game.HomeScore > game.AwayScore
	if game.HomeScore == game.AwayScore {
		homeWon = cfg.TieGoesToHome
	}
	if homeWon {
		winner, loser = home, away
		winnerScore, loserScore = game.HomeScore, game.AwayScore
	} else {
		winner, loser = away, home
		winnerScore, loserScore = game.AwayScore, game.HomeScore
	}

	// Home-field advantage is a rating offset, not a stored mutation.
	effectiveHome := home.CurrentRating
	if !game.NeutralSite {
		effectiveHome += cfg.HomeFieldAdvantage
	}

	var winnerExpected float64
	if winner == home {
		winnerExpected = ratingtypes.ExpectedScore(effectiveHome, away.CurrentRating)
	} else {
		winnerExpected = ratingtypes.ExpectedScore(away.CurrentRating, effectiveHome)
	}
	loserExpected := 1 - winnerExpected

	diff := winnerScore - loserScore
	if diff < 0 {
		diff = -diff
	}
	mov := ratingtypes.MOVMultiplier(diff, cfg.ProcessMOVCap)
	factors := ratingtypes.ConferenceMultipliers(winner.Tier, loser.Tier)
	k := cfg.KForWeek(game.Week)

	winnerDelta := k * (1 - winnerExpected) * mov * factors.Winner
	loserDelta := k * (0 - loserExpected) * mov * factors.Loser

	winner.CurrentRating += winnerDelta
	winner.Wins++
	loser.CurrentRating += loserDelta
	loser.Losses++

	if winner == home {
		game.HomeRatingDelta = round2(winnerDelta)
		game.AwayRatingDelta = round2(loserDelta)
	} else {
		game.HomeRatingDelta = round2(loserDelta)
		game.AwayRatingDelta = round2(winnerDelta)
	}
	game.Processed = true

	return &ratingtypes.GameResult{
		GameID:         game.ID,
		Winner:         winner.Name,
		Loser:          loser.Name,
		Score:          fmt.Sprintf("%d-%d", winnerScore, loserScore),
		HomeDelta:      game.HomeRatingDelta,
		AwayDelta:      game.AwayRatingDelta,
		HomeNewRating:  round2(home.CurrentRating),
		AwayNewRating:  round2(away.CurrentRating),
		WinProbability: round3(winnerExpected),
		MOVMultiplier:  round2(mov),
	}, nil
}
