// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile represents an isolated user identity owning its own transactions and goals.
type Profile struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewProfile creates a new Profile entity.
func NewProfile(name, passwordHash string) *Profile {
	now := time.Now().UTC()
	return &Profile{
		ID:           uuid.New(),
		Name:         name,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
