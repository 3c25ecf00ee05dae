package usecase

import "context"

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// TokenOutput is the OAuth2 password-grant style response.
type TokenOutput struct {
	AccessToken string
	TokenType   string
}

// SessionUsecase issues provider sessions to locally active users.
type SessionUsecase interface {
	LoginAccessToken(ctx context.Context, input *LoginInput) (*TokenOutput, error)
}
