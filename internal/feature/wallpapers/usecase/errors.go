// Package usecase implements the business logic for the wallpapers feature.
package usecase

import "errors"

var (
	// ErrInvalidRating is returned when a rating falls outside 1..5.
	ErrInvalidRating = errors.New("rating must be between 1 and 5")

	// ErrImageRejected is returned when the moderation check refuses an
	// uploaded image URL.
	ErrImageRejected = errors.New("image rejected by moderation")

	// ErrStorageUnavailable is returned when the backing store did not answer
	// within the query deadline.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
