package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOAuthProfile_ResolvedEmail(t *testing.T) {
	t.Run("uses provider email", func(t *testing.T) {
		p := &OAuthProfile{ID: 42, Login: "octocat", Email: "octo@example.com"}
		assert.Equal(t, "octo@example.com", p.ResolvedEmail())
	})

	t.Run("placeholder is deterministic", func(t *testing.T) {
		p := &OAuthProfile{ID: 42, Login: "octocat"}
		assert.Equal(t, "42@octocat.github.com", p.ResolvedEmail())
		assert.Equal(t, p.ResolvedEmail(), (&OAuthProfile{ID: 42, Login: "octocat", Email: "  "}).ResolvedEmail())
	})
}

func TestOAuthProfile_DisplayName(t *testing.T) {
	assert.Equal(t, "The Octocat", (&OAuthProfile{Login: "octocat", Name: "The Octocat"}).DisplayName())
	assert.Equal(t, "octocat", (&OAuthProfile{Login: "octocat"}).DisplayName())
}

func TestUser_CanAuthenticate(t *testing.T) {
	var nilUser *User
	assert.False(t, nilUser.CanAuthenticate())
	assert.False(t, (&User{IsActive: false}).CanAuthenticate())
	assert.True(t, (&User{IsActive: true}).CanAuthenticate())
}
