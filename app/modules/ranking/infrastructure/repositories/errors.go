package rankingdb

import "errors"

// ErrSnapshotNotFound indicates no snapshot row exists for the requested
// season/week/team combination.
var ErrSnapshotNotFound = errors.New("ranking snapshot not found")
