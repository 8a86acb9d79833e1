// Package usecase implements job posting management and voting.
package usecase

import "ccps_backend/internal/shared/apperr"

var (
	// ErrJobNotFound is returned when no posting has the requested id.
	ErrJobNotFound = apperr.New(apperr.NotFound, "Job not found")

	// ErrInvalidJobType is returned for a type other than on-campus or off-campus.
	ErrInvalidJobType = apperr.New(apperr.Validation, "type must be on-campus or off-campus")

	// ErrDeadlineAfterExpiry is returned when the application deadline falls after the posting expires.
	ErrDeadlineAfterExpiry = apperr.New(apperr.Validation, "deadline must not be after expiry")

	// ErrInvalidVote is returned for a vote value other than +1 or -1.
	ErrInvalidVote = apperr.New(apperr.Validation, "vote must be +1 or -1")
)
