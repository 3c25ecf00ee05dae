package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TokenTypeAccess        = "access"
	TokenTypePasswordReset = "password_reset"
)

// Claims defines the custom claims of internally issued tokens.
type Claims struct {
	UserID uuid.UUID
	Type   string
	jwt.RegisteredClaims
}

// TokenService issues and checks the tokens signed by this service.
// Provider session tokens never pass through it.
type TokenService interface {
	// GenerateAccessToken creates an internal access token for a local user.
	GenerateAccessToken(userID uuid.UUID) (string, error)

	// ValidateAccessToken checks an internal access token and returns its claims.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// GeneratePasswordResetToken creates a signed, expiring token whose subject is the email.
	GeneratePasswordResetToken(email string) (string, error)

	// VerifyPasswordResetToken returns the email a reset token was issued for.
	VerifyPasswordResetToken(tokenString string) (string, error)
}
