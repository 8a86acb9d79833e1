// Package usecase implements student profile management.
package usecase

import "ccps_backend/internal/shared/apperr"

var (
	ErrProfileNotFound = apperr.New(apperr.NotFound, "Student profile not found")
	ErrUserNotFound    = apperr.New(apperr.NotFound, "User not found")

	// ErrProfileExists is returned when the caller already has a profile.
	ErrProfileExists = apperr.New(apperr.Conflict, "Student profile already exists")

	// ErrStudentIDTaken is returned when another profile uses the same student id.
	ErrStudentIDTaken = apperr.New(apperr.Conflict, "Student ID already in use")

	// ErrEmailTaken is returned when a profile update moves the account to an email another account uses.
	ErrEmailTaken = apperr.New(apperr.Conflict, "email already exists")

	// ErrMissingFields is returned when a profile is created without its required fields.
	ErrMissingFields = apperr.New(apperr.Validation, "Missing required fields: studentID, discipline, batch, status")
)
