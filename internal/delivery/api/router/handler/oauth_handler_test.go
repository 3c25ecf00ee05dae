package handler

import (
	"net/http"
	"testing"

	domainerrors "authproxy/internal/domain/errors"
	mockUsecase "authproxy/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestOAuthHandler_GitHubLogin(t *testing.T) {
	uc := mockUsecase.NewMockOAuthUsecase(t)
	uc.EXPECT().AuthorizationURL().Return("https://github.com/login/oauth/authorize?client_id=abc")

	rec := serve(t, newTestEcho(), newJSONRequest(http.MethodGet, "/auth/github", ""), NewOAuthHandler(uc).GitHubLogin)

	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "https://github.com/login/oauth/authorize?client_id=abc", rec.Header().Get("Location"))
}

func TestOAuthHandler_GitHubCallback(t *testing.T) {
	uc := mockUsecase.NewMockOAuthUsecase(t)
	uc.EXPECT().HandleCallback(mock.Anything, "abc").Return("http://localhost:5173/auth/callback?token=jwt", nil)

	rec := serve(t, newTestEcho(), newJSONRequest(http.MethodGet, "/auth/github/callback?code=abc", ""), NewOAuthHandler(uc).GitHubCallback)

	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "http://localhost:5173/auth/callback?token=jwt", rec.Header().Get("Location"))
}

func TestOAuthHandler_GitHubCallback_Errors(t *testing.T) {
	t.Run("missing code", func(t *testing.T) {
		uc := mockUsecase.NewMockOAuthUsecase(t)
		uc.EXPECT().HandleCallback(mock.Anything, "").Return("", domainerrors.ErrOAuthCodeMissing)

		rec := serve(t, newTestEcho(), newJSONRequest(http.MethodGet, "/auth/github/callback", ""), NewOAuthHandler(uc).GitHubCallback)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"detail":"Missing authorization code"}`, rec.Body.String())
	})

	t.Run("upstream failure", func(t *testing.T) {
		uc := mockUsecase.NewMockOAuthUsecase(t)
		uc.EXPECT().HandleCallback(mock.Anything, "abc").Return("", errors.New("github code exchange failed: bad_verification_code"))

		rec := serve(t, newTestEcho(), newJSONRequest(http.MethodGet, "/auth/github/callback?code=abc", ""), NewOAuthHandler(uc).GitHubCallback)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"detail":"Internal server error"}`, rec.Body.String())
	})
}
