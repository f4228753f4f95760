package userstore

import (
	"errors"
	"fmt"
)

// IdentityError is a structured failure the authentication framework can
// surface to its callers: a stable machine code plus a human-readable
// description.
type IdentityError struct {
	Code        string
	Description string
}

func (e *IdentityError) Error() string { return e.Description }

var (
	// ErrDuplicateUserName is returned by Create when the normalized
	// username collides with an existing record's.
	ErrDuplicateUserName = &IdentityError{
		Code:        "DuplicateUserName",
		Description: "A user with this username already exists.",
	}

	// ErrUserNotFound is returned by Update and Delete when the record's
	// identifier no longer matches any stored document.
	ErrUserNotFound = &IdentityError{
		Code:        "UserNotFound",
		Description: "User not found.",
	}

	// ErrStoreDisposed is returned by every operation invoked after Dispose.
	ErrStoreDisposed = errors.New("userstore: store is disposed")

	// ErrNilUser rejects a nil record argument before any network call.
	ErrNilUser = errors.New("userstore: user must not be nil")

	// ErrEmptyArgument rejects empty required string arguments. It reaches
	// callers wrapped with the argument name; match it with errors.Is.
	ErrEmptyArgument = errors.New("userstore: required argument is empty")
)

func emptyArg(name string) error {
	return fmt.Errorf("%s: %w", name, ErrEmptyArgument)
}
