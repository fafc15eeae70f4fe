package services

import (
	"errors"
	"fmt"
)

// Kind classifies a workflow failure so the API layer can map it to a status
// without matching message strings.
type Kind int

const (
	// KindValidation: missing or malformed input; caller-correctable, no
	// side effects were performed.
	KindValidation Kind = iota + 1
	// KindAuthorization: no principal, or the principal may not perform the
	// action.
	KindAuthorization
	// KindForbidden: the account exists but is deactivated.
	KindForbidden
	// KindNotFound: the referenced record does not exist (or is not visible
	// to the caller, e.g. interacting with an unapproved post).
	KindNotFound
	// KindConflict: a uniqueness constraint was violated on signup.
	KindConflict
	// KindBackend: the store failed; fatal to the operation, reported to the
	// caller with a generic message.
	KindBackend
)

// Error is the workflow layer's failure value: a user-facing message plus a
// machine-checkable kind. Backend errors additionally wrap the cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// ErrValidation builds a validation failure.
func ErrValidation(msg string) *Error { return &Error{Kind: KindValidation, Message: msg} }

// ErrAuthorization builds an authorization failure.
func ErrAuthorization(msg string) *Error { return &Error{Kind: KindAuthorization, Message: msg} }

// ErrForbidden builds an inactive-account failure.
func ErrForbidden(msg string) *Error { return &Error{Kind: KindForbidden, Message: msg} }

// ErrNotFound builds a not-found failure.
func ErrNotFound(msg string) *Error { return &Error{Kind: KindNotFound, Message: msg} }

// ErrConflict builds a uniqueness-conflict failure.
func ErrConflict(msg string) *Error { return &Error{Kind: KindConflict, Message: msg} }

// ErrBackend wraps a store failure behind a generic message.
func ErrBackend(op string, err error) *Error {
	return &Error{Kind: KindBackend, Message: fmt.Sprintf("storage failure during %s", op), Err: err}
}

// KindOf extracts the kind from err, or KindBackend for unclassified errors.
func KindOf(err error) Kind {
	var we *Error
	if errors.As(err, &we) {
		return we.Kind
	}
	return KindBackend
}
