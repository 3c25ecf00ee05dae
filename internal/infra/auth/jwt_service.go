// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"authproxy/config"
	"authproxy/internal/domain/service"
)

var (
	ErrInvalidToken     = errors.New("invalid token")
	ErrUnexpectedType   = errors.New("unexpected token type")
	errSecretsNotConfig = errors.New("jwt secrets must be provided")
)

// tokenClaims is the wire form of every token this service signs.
type tokenClaims struct {
	Type string `json:"type"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret []byte        // Secret key for signing access tokens.
	resetSecret  []byte        // Secret key for signing password reset tokens.
	accessTTL    time.Duration // Time-to-live for access tokens.
	resetTTL     time.Duration // Time-to-live for password reset tokens.
	now          func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errSecretsNotConfig
	}

	resetSecret := cfg.SecretKey.Reset
	if resetSecret == "" {
		resetSecret = cfg.SecretKey.Access
	}

	accessTTL := 8 * 24 * time.Hour
	resetTTL := 48 * time.Hour
	if cfg.Auth != nil {
		if cfg.Auth.AccessTokenTTL > 0 {
			accessTTL = cfg.Auth.AccessTokenTTL
		}
		if cfg.Auth.ResetTokenTTL > 0 {
			resetTTL = cfg.Auth.ResetTokenTTL
		}
	}

	return &jwtService{
		accessSecret: []byte(cfg.SecretKey.Access),
		resetSecret:  []byte(resetSecret),
		accessTTL:    accessTTL,
		resetTTL:     resetTTL,
		now:          time.Now,
	}, nil
}

// GenerateAccessToken creates an internal access token for a local user.
func (s *jwtService) GenerateAccessToken(userID uuid.UUID) (string, error) {
	return s.generateToken(userID.String(), s.accessTTL, s.accessSecret, service.TokenTypeAccess)
}

// ValidateAccessToken checks the validity of an access token.
func (s *jwtService) ValidateAccessToken(tokenString string) (*service.Claims, error) {
	claims, err := s.parse(tokenString, s.accessSecret, service.TokenTypeAccess)
	if err != nil {
		return nil, err
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, ErrInvalidToken
	}

	return &service.Claims{
		UserID:           userID,
		Type:             claims.Type,
		RegisteredClaims: claims.RegisteredClaims,
	}, nil
}

// GeneratePasswordResetToken creates a reset token whose subject is the email.
func (s *jwtService) GeneratePasswordResetToken(email string) (string, error) {
	return s.generateToken(email, s.resetTTL, s.resetSecret, service.TokenTypePasswordReset)
}

// VerifyPasswordResetToken returns the email a valid reset token was issued for.
func (s *jwtService) VerifyPasswordResetToken(tokenString string) (string, error) {
	claims, err := s.parse(tokenString, s.resetSecret, service.TokenTypePasswordReset)
	if err != nil {
		return "", err
	}
	if claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}

// generateToken is a private helper to create a JWT with specific claims.
func (s *jwtService) generateToken(subject string, ttl time.Duration, secret []byte, tokenType string) (string, error) {
	now := s.now()
	claims := tokenClaims{
		Type: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(secret)
}

func (s *jwtService) parse(tokenString string, secret []byte, wantType string) (*tokenClaims, error) {
	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return nil, errors.Join(ErrInvalidToken, err)
	}

	if claims.Type != wantType {
		return nil, ErrUnexpectedType
	}

	return claims, nil
}
