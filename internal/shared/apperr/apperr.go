// Package apperr classifies domain errors so that transport layers can map them
// to status codes without knowing every feature's sentinel values.
package apperr

import "errors"

// Kind is the coarse category of a failure.
type Kind int

const (
	// Internal is the zero value: anything unclassified is treated as an infrastructure failure.
	Internal Kind = iota
	Validation
	Unauthenticated
	Forbidden
	NotFound
	Conflict
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case Unauthenticated:
		return "unauthenticated"
	case Forbidden:
		return "forbidden"
	case NotFound:
		return "not_found"
	case Conflict:
		return "conflict"
	default:
		return "internal"
	}
}

// Error is a classified error with a client-safe message.
type Error struct {
	Kind    Kind
	Message string
}

// New creates a classified error. It is meant for package-level sentinels.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func (e *Error) Error() string {
	return e.Message
}

// KindOf reports the kind of err, walking the wrap chain.
// Errors that carry no classification are Internal.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return Internal
}

// Is reports whether err is classified as kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
