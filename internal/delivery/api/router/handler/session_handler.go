package handler

import (
	"net/http"

	"authproxy/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// SessionHandler serves the OAuth2 password-grant style login.
type SessionHandler struct {
	uc usecase.SessionUsecase
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(uc usecase.SessionUsecase) *SessionHandler {
	return &SessionHandler{uc: uc}
}

// LoginAccessToken reads the form fields username (the email) and password.
func (h *SessionHandler) LoginAccessToken(c echo.Context) error {
	output, err := h.uc.LoginAccessToken(c.Request().Context(), &usecase.LoginInput{
		Email:    c.FormValue("username"),
		Password: c.FormValue("password"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, tokenResponse{
		AccessToken: output.AccessToken,
		TokenType:   output.TokenType,
	})
}
