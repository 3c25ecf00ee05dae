// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the local mirror of an account owned by the identity provider.
// On the provisioning path ID equals the provider's user id.
type User struct {
	ID             uuid.UUID // Primary key, assigned by the caller before the record is stored.
	Email          string    // Unique login identifier.
	Username       string
	FullName       string
	HashedPassword string // Local bcrypt hash, independent of the provider's credential store.
	IsActive       bool   // Gate checked by the token endpoint and password reset.
	IsSuperuser    bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CanAuthenticate reports whether the local record allows handing out credentials.
func (u *User) CanAuthenticate() bool {
	return u != nil && u.IsActive
}
