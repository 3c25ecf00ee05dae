package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// IdentityErrorKind classifies a failed identity provider call.
type IdentityErrorKind string

const (
	// IdentityErrorRejected means the provider refused the request (4xx).
	IdentityErrorRejected IdentityErrorKind = "rejected"
	// IdentityErrorInvalidCredentials means a password grant was refused.
	IdentityErrorInvalidCredentials IdentityErrorKind = "invalid_credentials"
	// IdentityErrorUnavailable means the provider could not be reached or failed (5xx).
	IdentityErrorUnavailable IdentityErrorKind = "unavailable"
)

// IdentityError is returned for every unsuccessful identity provider call.
type IdentityError struct {
	Kind       IdentityErrorKind
	StatusCode int    // Zero on transport failures.
	Message    string // Provider message, safe to show to the caller.
	Err        error
}

func (e *IdentityError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("identity provider %s: %s: %v", e.Kind, e.Message, e.Err)
	}

	return fmt.Sprintf("identity provider %s: %s", e.Kind, e.Message)
}

func (e *IdentityError) Unwrap() error {
	return e.Err
}

// UserMetadata is the profile data stored with the provider account.
type UserMetadata struct {
	Username string `json:"username,omitempty"`
	FullName string `json:"full_name,omitempty"`
}

// IdentityUser is the provider's view of an account.
type IdentityUser struct {
	ID    uuid.UUID
	Email string
}

// IdentitySession is a provider-issued session; AccessToken is opaque.
type IdentitySession struct {
	AccessToken  string
	RefreshToken string
	TokenType    string
	ExpiresIn    int
	User         *IdentityUser
}

// IdentityService is the hosted identity provider. Errors are *IdentityError.
type IdentityService interface {
	// AdminCreateUser creates a pre-confirmed account with the service key.
	AdminCreateUser(ctx context.Context, email, password string, metadata UserMetadata) (*IdentityUser, error)

	// SignUp registers an account through the public sign-up flow. A nil user means none was created.
	SignUp(ctx context.Context, email, password string, metadata UserMetadata) (*IdentityUser, error)

	// SignInWithPassword exchanges credentials for a session.
	SignInWithPassword(ctx context.Context, email, password string) (*IdentitySession, error)

	// AdminDeleteUser removes an account.
	AdminDeleteUser(ctx context.Context, id uuid.UUID) error
}
