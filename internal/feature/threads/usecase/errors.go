// Package usecase implements the discussion forum.
package usecase

import "ccps_backend/internal/shared/apperr"

var (
	ErrThreadNotFound  = apperr.New(apperr.NotFound, "Thread not found")
	ErrCommentNotFound = apperr.New(apperr.NotFound, "Comment not found")
	ErrEmptyText       = apperr.New(apperr.Validation, "text is required")
	ErrEmptyTitle      = apperr.New(apperr.Validation, "title is required")
)
