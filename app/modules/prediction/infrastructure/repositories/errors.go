package predictiondb

import "errors"

var (
	// ErrPredictionNotFound is returned when no forecast exists for a game.
	ErrPredictionNotFound = errors.New("prediction not found")
)
