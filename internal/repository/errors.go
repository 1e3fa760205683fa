// Package repository defines error types that are reused across multiple
// repositories. These values allow higher layers such as handlers to
// distinguish between different failure scenarios. Validation errors
// (an invalid location type, a trip with no valid participants) are
// rejected before or during the write attempt and nothing is committed.
// Uniqueness violations surface as *ConflictError carrying the violated
// constraint, so handlers can translate any of them into an HTTP 409
// with a meaningful field.
package repository

import (
	"errors"
	"strings"
)

// ErrInvalidLocationType is returned when a location type is not a
// member of the closed enumeration. Handlers should translate this
// into an HTTP 400 response.
var ErrInvalidLocationType = errors.New("invalid location type")

// ErrNoValidParticipants is returned when trip creation is left with
// zero valid participants after deduplication and filtering against
// existing users. The whole trip creation rolls back.
var ErrNoValidParticipants = errors.New("no valid participants")

// ErrEndNotAfterStart is returned when a trip's end day does not fall
// strictly after its start day. The storage CHECK constraint enforces
// the same rule as a backstop.
var ErrEndNotAfterStart = errors.New("end day must be after start day")

// ConflictError reports a uniqueness violation. Constraint names the
// violated index in table.column form (e.g. "users.username").
type ConflictError struct {
	Constraint string
}

func (e *ConflictError) Error() string {
	return "conflict on " + e.Constraint
}

// IsConflict reports whether err is (or wraps) a ConflictError.
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}

// conflictConstraint extracts the violated constraint from a SQLite
// driver error. The driver reports uniqueness violations as
// "UNIQUE constraint failed: table.column"; the suffix after the
// colon is the constraint name.
func conflictConstraint(err error) (string, bool) {
	if err == nil {
		return "", false
	}
	const marker = "UNIQUE constraint failed:"
	msg := err.Error()
	i := strings.Index(msg, marker)
	if i < 0 {
		return "", false
	}
	rest := strings.TrimSpace(msg[i+len(marker):])
	if j := strings.IndexAny(rest, " ("); j > 0 {
		rest = rest[:j]
	}
	return rest, true
}
