package auth

import (
	"strings"
	"testing"
	"time"

	"authproxy/config"
	"authproxy/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			AccessTokenTTL: time.Hour,
			ResetTokenTTL:  48 * time.Hour,
		},
	}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Reset = "test_reset_secret_key_very_long_for_testing"

	return cfg
}

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_AccessTokenRoundTrip(t *testing.T) {
	jwtService := newTestJWTService(t)
	userID := uuid.New()

	token, err := jwtService.GenerateAccessToken(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, service.TokenTypeAccess, claims.Type)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestJWTService_PasswordResetToken(t *testing.T) {
	jwtService := newTestJWTService(t)

	token, err := jwtService.GeneratePasswordResetToken("alice@example.com")
	require.NoError(t, err)

	email, err := jwtService.VerifyPasswordResetToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", email)
}

func TestJWTService_PasswordResetTokenExpired(t *testing.T) {
	jwtService := newTestJWTService(t)

	issuedAt := time.Now().Add(-49 * time.Hour)
	jwtService.now = func() time.Time { return issuedAt }
	token, err := jwtService.GeneratePasswordResetToken("alice@example.com")
	require.NoError(t, err)

	jwtService.now = time.Now
	email, err := jwtService.VerifyPasswordResetToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Empty(t, email)
}

func TestJWTService_PasswordResetTokenTampered(t *testing.T) {
	jwtService := newTestJWTService(t)

	token, err := jwtService.GeneratePasswordResetToken("alice@example.com")
	require.NoError(t, err)

	other, err := jwtService.GeneratePasswordResetToken("mallory@example.com")
	require.NoError(t, err)

	// Signature of the original token over the payload of another one.
	parts := strings.Split(token, ".")
	otherParts := strings.Split(other, ".")
	require.Len(t, parts, 3)
	tampered := strings.Join([]string{parts[0], otherParts[1], parts[2]}, ".")

	_, err = jwtService.VerifyPasswordResetToken(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_RejectsTokenOfOtherType(t *testing.T) {
	cfg := newTestConfig()
	cfg.SecretKey.Reset = ""
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	accessToken, err := svc.GenerateAccessToken(uuid.New())
	require.NoError(t, err)
	_, err = svc.VerifyPasswordResetToken(accessToken)
	assert.ErrorIs(t, err, ErrUnexpectedType)

	resetToken, err := svc.GeneratePasswordResetToken("alice@example.com")
	require.NoError(t, err)
	_, err = svc.ValidateAccessToken(resetToken)
	assert.ErrorIs(t, err, ErrUnexpectedType)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService := newTestJWTService(t)

	claims, err := jwtService.ValidateAccessToken("clearly-not-a-jwt-token-format")
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecrets(t *testing.T) {
	cfg := newTestConfig()
	cfg.SecretKey.Access = ""

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}
