package usecase

import "context"

// OAuthUsecase bridges an external OAuth login to an internal token.
type OAuthUsecase interface {
	// AuthorizationURL returns where to send the browser to start the flow.
	AuthorizationURL() string

	// HandleCallback resolves the local user behind a code and returns the frontend redirect URL.
	HandleCallback(ctx context.Context, code string) (string, error)
}
