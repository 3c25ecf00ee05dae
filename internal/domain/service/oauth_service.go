package service

import (
	"context"

	"authproxy/internal/domain/entity"
)

// OAuthService drives the server-side authorization code flow of one provider.
type OAuthService interface {
	// AuthorizationURL returns the provider consent page URL.
	AuthorizationURL() string

	// ExchangeCode trades an authorization code for a provider access token.
	ExchangeCode(ctx context.Context, code string) (string, error)

	// FetchProfile loads the profile of the account behind an access token.
	FetchProfile(ctx context.Context, accessToken string) (*entity.OAuthProfile, error)

	// GetProvider returns the OAuth provider type
	GetProvider() entity.ProviderType
}
