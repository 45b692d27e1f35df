// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered account.
// It is created by a successful registration and never updated or deleted by
// this service; login only reads it to compare digests.
type User struct {
	// ID is the unique identifier for the user, assigned by the store.
	ID uint `gorm:"primaryKey"`

	// Username is the display name used for login.
	// It must be unique across all users.
	Username string `gorm:"uniqueIndex;size:255;not null"`

	// Email is the user's email address.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// PasswordHash is the hex-encoded digest of the user's password.
	// Plaintext passwords are never stored.
	PasswordHash string `gorm:"size:64;not null"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
