package predictiontypes

import (
	"math"

	ratingtypes "github.com/gridiron-analytics/gridrank/app/modules/rating/domain/types"
)

// ClassifyConfidence buckets a win probability by its distance from even
// money: more than 30 probability points away is high, more than 15 is
// medium, anything closer is low.
func ClassifyConfidence(probability float64) Confidence {
	distance := math.Abs(probability - 0.5)
	switch {
	case distance > 0.30:
		return ConfidenceHigh
	case distance > 0.15:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// ProjectScores derives a naive score forecast from the effective rating
// difference: both sides anchor at the baseline and shift proportionally to
// the gap, clamped to the configured range. This is a deliberate linear
// heuristic, not a fitted scoring model; any replacement must keep the same
// input/output contract.
func ProjectScores(cfg ratingtypes.EngineConfig, effectiveHomeRating, awayRating float64) (home, away float64) {
	shift := (effectiveHomeRating - awayRating) / 100.0 * cfg.PointsPerHundred
	home = clampScore(cfg.BaselinePoints+shift, cfg.MaxProjectedPts)
	away = clampScore(cfg.BaselinePoints-shift, cfg.MaxProjectedPts)
	return home, away
}

func clampScore(v, max float64) float64 {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}

// ProjectedRatingSwing estimates how far the favorite's rating would move if
// the projected result came true. It uses the analysis MOV cap, which
// saturates earlier than the processing one.
func ProjectedRatingSwing(cfg ratingtypes.EngineConfig, week int, winnerProbability, projectedMargin float64) float64 {
	margin := int(math.Round(math.Abs(projectedMargin)))
	mov := ratingtypes.MOVMultiplier(margin, cfg.AnalysisMOVCap)
	return cfg.KForWeek(week) * (1 - winnerProbability) * mov
}
