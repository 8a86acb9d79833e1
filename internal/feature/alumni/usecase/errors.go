// Package usecase implements the alumni directory.
package usecase

import "ccps_backend/internal/shared/apperr"

var (
	// ErrAlumniNotFound is returned when no entry has the requested id.
	ErrAlumniNotFound = apperr.New(apperr.NotFound, "Alumni not found")

	// ErrOwnProfileNotFound is returned when the caller's account is not linked to an entry.
	ErrOwnProfileNotFound = apperr.New(apperr.NotFound, "Alumni profile not found")

	// ErrNoMatches is returned when a search finds nothing.
	ErrNoMatches = apperr.New(apperr.NotFound, "No alumni found")

	// ErrUserAlreadyLinked is returned when a second entry is linked to the same account.
	ErrUserAlreadyLinked = apperr.New(apperr.Conflict, "user is already linked to an alumni entry")

	// ErrNameRequired is returned when creating an entry without a name.
	ErrNameRequired = apperr.New(apperr.Validation, "name is required")
)
