// Package usecase implements saving job postings for later.
package usecase

import "ccps_backend/internal/shared/apperr"

var (
	// ErrJobNotFound is returned when the job to save does not exist.
	ErrJobNotFound = apperr.New(apperr.NotFound, "Job not found")

	// ErrSavedJobNotFound is returned when removing a job the user never saved.
	ErrSavedJobNotFound = apperr.New(apperr.NotFound, "Saved job not found")

	// ErrAlreadySaved is returned by the store when the (user, job) pair exists.
	// Save treats it as success.
	ErrAlreadySaved = apperr.New(apperr.Conflict, "Already saved.")
)
