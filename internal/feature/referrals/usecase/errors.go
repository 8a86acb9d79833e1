// Package usecase implements the referral request workflow.
package usecase

import "ccps_backend/internal/shared/apperr"

var (
	// ErrReferralNotFound is returned when no referral has the requested id.
	ErrReferralNotFound = apperr.New(apperr.NotFound, "Referral not found")

	// ErrAlreadyProvided is returned when a referral link was already supplied.
	ErrAlreadyProvided = apperr.New(apperr.Conflict, "referral has already been provided")

	// ErrReferralLinkRequired is returned when providing a referral without a link.
	ErrReferralLinkRequired = apperr.New(apperr.Validation, "referralLink is required")
)
