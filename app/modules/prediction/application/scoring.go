package predictionservice

import (
	"context"
	"log/slog"
	"math"

	"github.com/google/uuid"

	predictiontypes "github.com/gridiron-analytics/gridrank/app/modules/prediction/domain/types"
)

// ScorePrediction resolves a stored forecast against the real final score.
// Only the correctness fields change; the probability and projected scores
// stay as forecast for honest accuracy tracking.
func (s *PredictionService) ScorePrediction(ctx context.Context, gameID uuid.UUID, actualHomeScore, actualAwayScore int) (*predictiontypes.Prediction, error) {
	ctx, span := s.tracer.Start(ctx, "ScorePrediction")
	defer span.End()

	s.metrics.RecordOperationAttempt(ctx, "ScorePrediction")

	prediction, err := s.predictionRepo.GetByGameID(ctx, nil, gameID)
	if err != nil {
		s.metrics.RecordOperationFailure(ctx, "ScorePrediction")
		return nil, err
	}

	homeWon := actualHomeScore > actualAwayScore
	if actualHomeScore == actualAwayScore {
		homeWon = s.config.TieGoesToHome
	}
	actualWinner := prediction.AwayTeam
	if homeWon {
		actualWinner = prediction.HomeTeam
	}

	correct := prediction.PredictedWinner == actualWinner
	prediction.Correct = &correct
	prediction.ActualHomeWin = &homeWon

	if err := s.predictionRepo.Upsert(ctx, nil, prediction); err != nil {
		s.metrics.RecordOperationFailure(ctx, "ScorePrediction")
		return nil, err
	}

	s.logger.InfoContext(ctx, "Scored prediction",
		slog.String("game_id", gameID.String()),
		slog.String("predicted_winner", prediction.PredictedWinner),
		slog.String("actual_winner", actualWinner),
		slog.Bool("correct", correct),
	)
	s.metrics.RecordOperationSuccess(ctx, "ScorePrediction")
	return prediction, nil
}

// Probability clamp bounds for log-loss, so a maximally confident miss costs
// a large finite penalty instead of an infinite one.
const (
	minClampedProbability = 0.001
	maxClampedProbability = 0.999
)

// AccuracyMetrics aggregates forecast quality over resolved predictions.
// Unresolved entries are skipped; an empty input yields a zero report.
func (s *PredictionService) AccuracyMetrics(predictions []*predictiontypes.Prediction) predictiontypes.AccuracyReport {
	var (
		samples    int
		hits       int
		brierSum   float64
		logLossSum float64
		confSum    float64
	)

	for _, p := range predictions {
		if p == nil || !p.Resolved() || p.ActualHomeWin == nil {
			continue
		}
		samples++

		actual := 0.0
		if *p.ActualHomeWin {
			actual = 1.0
		}

		if (p.HomeWinProbability > 0.5) == *p.ActualHomeWin {
			hits++
		}

		diff := p.HomeWinProbability - actual
		brierSum += diff * diff

		probOfActual := p.HomeWinProbability
		if !*p.ActualHomeWin {
			probOfActual = 1 - p.HomeWinProbability
		}
		logLossSum += -math.Log(clampProbability(probOfActual))

		confSum += math.Abs(p.HomeWinProbability - 0.5)
	}

	if samples == 0 {
		return predictiontypes.AccuracyReport{}
	}
	n := float64(samples)
	return predictiontypes.AccuracyReport{
		Accuracy:       float64(hits) / n,
		BrierScore:     brierSum / n,
		LogLoss:        logLossSum / n,
		MeanConfidence: confSum / n,
		Samples:        samples,
	}
}

// GetSeasonAccuracy computes the accuracy report over every resolved
// forecast stored for one season.
func (s *PredictionService) GetSeasonAccuracy(ctx context.Context, season int) (predictiontypes.AccuracyReport, error) {
	ctx, span := s.tracer.Start(ctx, "GetSeasonAccuracy")
	defer span.End()

	predictions, err := s.predictionRepo.ListResolvedForSeason(ctx, nil, season)
	if err != nil {
		return predictiontypes.AccuracyReport{}, err
	}
	return s.AccuracyMetrics(predictions), nil
}

func clampProbability(p float64) float64 {
	if p < minClampedProbability {
		return minClampedProbability
	}
	if p > maxClampedProbability {
		return maxClampedProbability
	}
	return p
}
