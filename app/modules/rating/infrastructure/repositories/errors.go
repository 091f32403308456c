package ratingdb

import "errors"

var (
	// ErrTeamNotFound indicates no team row exists for the requested name.
	ErrTeamNotFound = errors.New("team not found")

	// ErrGameNotFound indicates no game row exists for the requested id.
	ErrGameNotFound = errors.New("game not found")
)
