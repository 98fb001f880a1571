// Package entity defines the domain entities for the user feature.
package entity

import "time"

// User represents a registered account.
// It carries the credential material needed for sign-in and metadata for
// account management.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Name is the user's display name.
	Name string `gorm:"size:255;not null"`

	// Email is the user's email address used for sign-in.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// HashedPassword is the salted one-way hash of the user's password.
	// Plaintext passwords are never stored.
	HashedPassword string `gorm:"size:255;not null"`

	// Salt is the per-user random salt mixed into the password hash,
	// hex encoded.
	Salt string `gorm:"size:64;not null"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
