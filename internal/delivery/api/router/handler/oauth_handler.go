package handler

import (
	"net/http"

	"authproxy/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OAuthHandler serves the GitHub login redirect and callback.
type OAuthHandler struct {
	uc usecase.OAuthUsecase
}

// NewOAuthHandler is the constructor for OAuthHandler, injected by Fx.
func NewOAuthHandler(uc usecase.OAuthUsecase) *OAuthHandler {
	return &OAuthHandler{uc: uc}
}

// GitHubLogin redirects the browser to the GitHub consent page.
func (h *OAuthHandler) GitHubLogin(c echo.Context) error {
	return c.Redirect(http.StatusTemporaryRedirect, h.uc.AuthorizationURL())
}

// GitHubCallback finishes the flow and redirects to the frontend with ?token=.
func (h *OAuthHandler) GitHubCallback(c echo.Context) error {
	redirectURL, err := h.uc.HandleCallback(c.Request().Context(), c.QueryParam("code"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Redirect(http.StatusTemporaryRedirect, redirectURL)
}
