package store

import "errors"

var (
	// ErrNoUserWasFound is a sentinel error used when a queried user does
	// not exist in the database.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrEmailAlreadyExists indicates an insert or update collided with the
	// unique constraint on the email column.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUsernameAlreadyExists indicates an insert or update collided with
	// the unique constraint on the username column.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrEmptyUpdate indicates an update request that carries no fields.
	ErrEmptyUpdate = errors.New("empty update")

	// ErrAvatarStorageDisabled indicates that no avatar bucket is
	// configured for this deployment.
	ErrAvatarStorageDisabled = errors.New("avatar storage is not configured")
)
