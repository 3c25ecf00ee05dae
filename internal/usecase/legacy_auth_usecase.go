// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import "context"

// LegacyRegisterInput defines the data for a provider-side registration.
type LegacyRegisterInput struct {
	Email    string
	Password string
	Username string
	FullName string
}

// LegacyAuthUsecase forwards register and login straight to the identity provider.
// Nothing is written locally.
type LegacyAuthUsecase interface {
	// Register creates a confirmed provider account and returns the success message.
	Register(ctx context.Context, input *LegacyRegisterInput) (string, error)

	// Login returns the provider access token for the credentials.
	Login(ctx context.Context, email, password string) (string, error)
}
