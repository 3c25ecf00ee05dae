package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"authproxy/config"
	"authproxy/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(serverURL string, client *http.Client) *OAuthService {
	cfg := &config.Config{
		GitHub: &config.GitHubConfig{
			ClientID:     "test_client_id",
			ClientSecret: "test_secret",
			AuthURL:      serverURL + "/login/oauth/authorize",
			TokenURL:     serverURL + "/login/oauth/access_token",
			UserInfoURL:  serverURL + "/user",
		},
	}

	return NewOAuthService(Params{Config: cfg, HTTPClient: client}).(*OAuthService)
}

func TestOAuthService_AuthorizationURL(t *testing.T) {
	svc := NewOAuthService(Params{Config: &config.Config{
		GitHub: &config.GitHubConfig{ClientID: "test_client_id"},
	}}).(*OAuthService)

	parsed, err := url.Parse(svc.AuthorizationURL())
	require.NoError(t, err)

	assert.Equal(t, "github.com", parsed.Host)
	assert.Equal(t, "/login/oauth/authorize", parsed.Path)
	assert.Equal(t, "test_client_id", parsed.Query().Get("client_id"))
	assert.Equal(t, "code", parsed.Query().Get("response_type"))
	assert.False(t, parsed.Query().Has("state"))
}

func TestOAuthService_AuthorizationURLWithRedirectAndScopes(t *testing.T) {
	svc := NewOAuthService(Params{Config: &config.Config{
		GitHub: &config.GitHubConfig{
			ClientID:    "test_client_id",
			RedirectURL: "http://localhost:8000/auth/github/callback",
			Scopes:      []string{"read:user", "user:email"},
		},
	}}).(*OAuthService)

	parsed, err := url.Parse(svc.AuthorizationURL())
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000/auth/github/callback", parsed.Query().Get("redirect_uri"))
	assert.Equal(t, "read:user user:email", parsed.Query().Get("scope"))
}

func TestOAuthService_GetProvider(t *testing.T) {
	svc := newTestService("http://localhost", nil)
	assert.Equal(t, entity.ProviderTypeGitHub, svc.GetProvider())
}

func TestOAuthService_ExchangeAndFetchProfile(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/login/oauth/access_token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "the-code", r.Form.Get("code"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"gho_token","token_type":"bearer","scope":"read:user"}`))
	})
	mux.HandleFunc("/user", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer gho_token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":583231,"login":"octocat","name":"The Octocat","email":null}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	svc := newTestService(server.URL, server.Client())

	token, err := svc.ExchangeCode(context.Background(), "the-code")
	require.NoError(t, err)
	assert.Equal(t, "gho_token", token)

	profile, err := svc.FetchProfile(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, int64(583231), profile.ID)
	assert.Equal(t, "octocat", profile.Login)
	assert.Equal(t, "The Octocat", profile.Name)
	assert.Empty(t, profile.Email)
	assert.Equal(t, "583231@octocat.github.com", profile.ResolvedEmail())
}

func TestOAuthService_ExchangeCodeFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"bad_verification_code"}`))
	}))
	defer server.Close()

	svc := newTestService(server.URL, server.Client())

	_, err := svc.ExchangeCode(context.Background(), "stale-code")
	assert.Error(t, err)
}

func TestOAuthService_FetchProfileNon2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Bad credentials"}`))
	}))
	defer server.Close()

	svc := newTestService(server.URL, server.Client())

	profile, err := svc.FetchProfile(context.Background(), "expired")
	assert.Nil(t, profile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}
