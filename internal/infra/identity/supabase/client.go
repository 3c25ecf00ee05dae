// Package supabase talks to the GoTrue API of a Supabase project through the auth-go SDK.
package supabase

import (
	"context"
	"encoding/json"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"authproxy/config"
	"authproxy/internal/domain/service"
	"authproxy/internal/infra/httpclient"

	"github.com/google/uuid"
	gotrue "github.com/supabase-community/auth-go"
	"github.com/supabase-community/auth-go/types"
	"go.uber.org/fx"
)

const authPath = "/auth/v1"

// statusPattern matches the error text the SDK returns for a non-2xx response.
var statusPattern = regexp.MustCompile(`(?s)response status code (\d+)(?::\s?(.*))?`)

// Params defines the dependencies of the identity client
type Params struct {
	fx.In

	Config     *config.Config
	HTTPClient *http.Client
}

// Client implements service.IdentityService against GoTrue.
type Client struct {
	api gotrue.Client
	// signIn repeats the password grant on 5xx; account-creating calls go through api and are sent once.
	signIn gotrue.Client
}

// NewClient creates the GoTrue client
func NewClient(params Params) service.IdentityService {
	cfg := params.Config.Supabase
	authURL := strings.TrimRight(cfg.URL, "/") + authPath

	newSDK := func(httpClient *http.Client) gotrue.Client {
		return gotrue.New("", cfg.ServiceKey).
			WithCustomAuthURL(authURL).
			WithToken(cfg.ServiceKey).
			WithClient(*httpClient)
	}

	return &Client{
		api:    newSDK(params.HTTPClient),
		signIn: newSDK(httpclient.AllowRetries(params.HTTPClient)),
	}
}

// AdminCreateUser creates a pre-confirmed user with the service key.
func (c *Client) AdminCreateUser(ctx context.Context, email, password string, metadata service.UserMetadata) (*service.IdentityUser, error) {
	if err := ctx.Err(); err != nil {
		return nil, unavailable(err)
	}

	resp, err := c.api.AdminCreateUser(types.AdminCreateUserRequest{
		Email:        email,
		Password:     &password,
		EmailConfirm: true,
		UserMetadata: metadataMap(metadata),
	})
	if err != nil {
		return nil, classify(err, service.IdentityErrorRejected)
	}

	return toIdentityUser(resp.User)
}

// SignUp registers a user through the public sign-up flow.
func (c *Client) SignUp(ctx context.Context, email, password string, metadata service.UserMetadata) (*service.IdentityUser, error) {
	if err := ctx.Err(); err != nil {
		return nil, unavailable(err)
	}

	resp, err := c.api.Signup(types.SignupRequest{
		Email:    email,
		Password: password,
		Data:     metadataMap(metadata),
	})
	if err != nil {
		return nil, classify(err, service.IdentityErrorRejected)
	}

	// A bare user comes back while confirmation is pending, a session when auto-confirm is on.
	user := resp.User
	if user.ID == uuid.Nil {
		user = resp.Session.User
	}
	if user.ID == uuid.Nil {
		return nil, nil
	}

	return toIdentityUser(user)
}

// SignInWithPassword exchanges email and password for a provider session.
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*service.IdentitySession, error) {
	if err := ctx.Err(); err != nil {
		return nil, unavailable(err)
	}

	resp, err := c.signIn.Token(types.TokenRequest{
		GrantType: "password",
		Email:     email,
		Password:  password,
	})
	if err != nil {
		return nil, classify(err, service.IdentityErrorInvalidCredentials)
	}

	session := &service.IdentitySession{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		TokenType:    resp.TokenType,
		ExpiresIn:    int(resp.ExpiresIn),
	}
	if resp.User.ID != uuid.Nil {
		user, err := toIdentityUser(resp.User)
		if err != nil {
			return nil, err
		}
		session.User = user
	}

	return session, nil
}

// AdminDeleteUser removes a user with the service key.
func (c *Client) AdminDeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return unavailable(err)
	}

	if err := c.api.AdminDeleteUser(types.AdminDeleteUserRequest{UserID: id}); err != nil {
		return classify(err, service.IdentityErrorRejected)
	}

	return nil
}

func metadataMap(metadata service.UserMetadata) map[string]interface{} {
	data := make(map[string]interface{}, 2)
	if metadata.Username != "" {
		data["username"] = metadata.Username
	}
	if metadata.FullName != "" {
		data["full_name"] = metadata.FullName
	}

	return data
}

func unavailable(err error) *service.IdentityError {
	return &service.IdentityError{
		Kind:    service.IdentityErrorUnavailable,
		Message: "identity service unavailable",
		Err:     err,
	}
}

// classify turns an SDK error into an IdentityError. clientErrorKind applies to 400 and 401.
func classify(err error, clientErrorKind service.IdentityErrorKind) *service.IdentityError {
	match := statusPattern.FindStringSubmatch(err.Error())
	if match == nil {
		return unavailable(err)
	}

	status, convErr := strconv.Atoi(match[1])
	if convErr != nil {
		return unavailable(err)
	}

	kind := service.IdentityErrorRejected
	switch {
	case status >= http.StatusInternalServerError:
		kind = service.IdentityErrorUnavailable
	case status == http.StatusBadRequest || status == http.StatusUnauthorized:
		kind = clientErrorKind
	}

	return &service.IdentityError{
		Kind:       kind,
		StatusCode: status,
		Message:    errorMessage([]byte(match[2]), status),
	}
}

type errorPayload struct {
	Msg              string `json:"msg"`
	ErrorDescription string `json:"error_description"`
	Message          string `json:"message"`
	Error            string `json:"error"`
}

// errorMessage picks the first populated message field GoTrue uses.
func errorMessage(raw []byte, status int) string {
	var payload errorPayload
	if err := json.Unmarshal(raw, &payload); err == nil {
		for _, candidate := range []string{payload.Msg, payload.ErrorDescription, payload.Message, payload.Error} {
			if candidate = strings.TrimSpace(candidate); candidate != "" {
				return candidate
			}
		}
	}

	if text := http.StatusText(status); text != "" {
		return text
	}

	return "identity service error"
}

func toIdentityUser(user types.User) (*service.IdentityUser, error) {
	if user.ID == uuid.Nil {
		return nil, &service.IdentityError{
			Kind:    service.IdentityErrorUnavailable,
			Message: "identity service returned no user id",
		}
	}

	return &service.IdentityUser{ID: user.ID, Email: user.Email}, nil
}
