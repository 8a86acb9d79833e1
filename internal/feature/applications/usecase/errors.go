// Package usecase implements applying to jobs and reviewing applications.
package usecase

import "ccps_backend/internal/shared/apperr"

var (
	// ErrJobNotFound is returned when the referenced job does not exist.
	ErrJobNotFound = apperr.New(apperr.NotFound, "Job not found")

	// ErrApplicationNotFound is returned when no matching application exists.
	ErrApplicationNotFound = apperr.New(apperr.NotFound, "Application not found or already withdrawn")

	// ErrAlreadyApplied is returned when the (student, job) unique index rejects an application.
	ErrAlreadyApplied = apperr.New(apperr.Conflict, "Already applied")

	// ErrApplicationLocked is returned when a student tries to withdraw a decided application.
	ErrApplicationLocked = apperr.New(apperr.Conflict, "application has been decided and can no longer be withdrawn")

	// ErrInvalidTransition is returned for a status change the review lifecycle does not allow.
	ErrInvalidTransition = apperr.New(apperr.Conflict, "invalid application status transition")

	// ErrInvalidStatus is returned for an unknown status value.
	ErrInvalidStatus = apperr.New(apperr.Validation, "status must be one of applied, in-review, accepted, rejected")

	// ErrStudentRequired is returned when a cancellation does not name the student.
	ErrStudentRequired = apperr.New(apperr.Validation, "studentId is required")

	// ErrDeadlinePassed is returned when applying after the job's deadline.
	ErrDeadlinePassed = apperr.New(apperr.Conflict, "application deadline has passed")
)
