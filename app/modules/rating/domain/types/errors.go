package ratingtypes

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Invariant sentinels. A ValidationError wraps exactly one of these so
// callers can branch with errors.Is while the message still names the game.
var (
	ErrNoScores           = errors.New("no scores available")
	ErrUnknownTeam        = errors.New("unknown team")
	ErrWeekOutOfRange     = errors.New("week out of range")
	ErrSeasonOutOfRange   = errors.New("season out of range")
	ErrExcludedGame       = errors.New("game excluded from rankings")
	ErrInconsistentScores = errors.New("quarter scores inconsistent with final")
	ErrUninitializedTeam  = errors.New("team rating not initialized")
)

// ValidationError reports a precondition failure for a specific game. No
// state is mutated before one is returned.
type ValidationError struct {
	GameID uuid.UUID
	Detail string
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("game %s: %s: %s", e.GameID, e.Err, e.Detail)
	}
	return fmt.Sprintf("game %s: %s", e.GameID, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError builds a ValidationError for the given game and
// invariant sentinel.
func NewValidationError(gameID uuid.UUID, sentinel error, detail string) *ValidationError {
	return &ValidationError{GameID: gameID, Err: sentinel, Detail: detail}
}
