// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when no account matches the given criteria.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserExists is returned when the username or email is already taken.
	// The storage-level uniqueness constraint produces it too, so two
	// registrations racing past the pre-check cannot both succeed.
	ErrUserExists = errors.New("username or email already exists")

	// ErrInvalidCredentials is returned for both an unknown username and a
	// wrong password, so a caller cannot tell which one failed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrStorageUnavailable is returned when the backing store did not answer
	// within the query deadline.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
