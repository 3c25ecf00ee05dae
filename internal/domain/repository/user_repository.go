// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"authproxy/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrMissingUserID is returned when a user is stored without a caller-assigned id.
var ErrMissingUserID = errors.New("user id must be assigned before create")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user. The id must already be set.
	Create(ctx context.Context, user *entity.User) error

	// UpdatePassword replaces the stored password hash of a user.
	UpdatePassword(ctx context.Context, id uuid.UUID, hashedPassword string) error
}
