// Package usecase implements the business logic for the auth feature.
package usecase

import "ccps_backend/internal/shared/apperr"

var (
	// ErrUserNotFound is returned when a user cannot be found by email, id or reset token.
	ErrUserNotFound = apperr.New(apperr.NotFound, "user not found")

	// ErrEmailAlreadyExists is returned when the email unique index rejects a new user.
	ErrEmailAlreadyExists = apperr.New(apperr.Conflict, "email already exists")

	// ErrInvalidCredentials is returned for an unknown email and for a wrong password alike.
	ErrInvalidCredentials = apperr.New(apperr.Unauthenticated, "invalid email or password")

	// ErrWrongPassword is returned when the current password given to change-password does not match.
	ErrWrongPassword = apperr.New(apperr.Validation, "current password is incorrect")

	// ErrRoleNotAllowed is returned when signup asks for a role visitors cannot pick.
	ErrRoleNotAllowed = apperr.New(apperr.Forbidden, "role cannot be self-assigned")

	// ErrWeakPassword is returned when a password is shorter than minPasswordLength.
	ErrWeakPassword = apperr.New(apperr.Validation, "password must be at least 8 characters long")

	// ErrPasswordTooLong is returned when a password exceeds maxPasswordLength bytes, which bcrypt cannot hash.
	ErrPasswordTooLong = apperr.New(apperr.Validation, "password must be at most 72 bytes long")

	// ErrResetTokenInvalid is returned for an unknown, used or expired reset token.
	ErrResetTokenInvalid = apperr.New(apperr.Validation, "reset token is invalid or has expired")
)
