// Package github implements the GitHub authorization code flow.
package github

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"authproxy/config"
	"authproxy/internal/domain/entity"
	"authproxy/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/oauth2"
	githuboauth "golang.org/x/oauth2/github"
)

// Params defines the dependencies of the GitHub OAuth service
type Params struct {
	fx.In

	Config     *config.Config
	HTTPClient *http.Client
}

// OAuthService handles GitHub OAuth infrastructure operations
type OAuthService struct {
	oauth2Config *oauth2.Config
	userInfoURL  string
	httpClient   *http.Client
}

// NewOAuthService creates a new GitHub OAuth service
func NewOAuthService(params Params) service.OAuthService {
	cfg := params.Config.GitHub

	endpoint := githuboauth.Endpoint
	if cfg.AuthURL != "" {
		endpoint.AuthURL = cfg.AuthURL
	}
	if cfg.TokenURL != "" {
		endpoint.TokenURL = cfg.TokenURL
	}

	return &OAuthService{
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       cfg.Scopes,
			Endpoint:     endpoint,
		},
		userInfoURL: cfg.UserInfoURL,
		httpClient:  params.HTTPClient,
	}
}

// AuthorizationURL returns the GitHub consent page URL. No state parameter is issued.
func (s *OAuthService) AuthorizationURL() string {
	return s.oauth2Config.AuthCodeURL("")
}

// GetProvider returns the OAuth provider type
func (s *OAuthService) GetProvider() entity.ProviderType {
	return entity.ProviderTypeGitHub
}

// ExchangeCode exchanges an authorization code for an access token
func (s *OAuthService) ExchangeCode(ctx context.Context, code string) (string, error) {
	if s.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, s.httpClient)
	}

	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return "", errors.Wrap(err, "failed to exchange code for token")
	}
	if token.AccessToken == "" {
		return "", errors.New("token exchange returned no access token")
	}

	return token.AccessToken, nil
}

// FetchProfile retrieves the GitHub profile behind an access token
func (s *OAuthService) FetchProfile(ctx context.Context, accessToken string) (*entity.OAuthProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.userInfoURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create user info request")
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/vnd.github+json")

	client := s.httpClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user info")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))

		return nil, errors.Errorf("user info request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var githubUser struct {
		ID    int64  `json:"id"`
		Login string `json:"login"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&githubUser); err != nil {
		return nil, errors.Wrap(err, "failed to decode user info response")
	}
	if githubUser.ID == 0 || githubUser.Login == "" {
		return nil, errors.New("user info response is missing id or login")
	}

	return &entity.OAuthProfile{
		Provider: entity.ProviderTypeGitHub,
		ID:       githubUser.ID,
		Login:    githubUser.Login,
		Email:    githubUser.Email,
		Name:     githubUser.Name,
	}, nil
}
