// Package response renders the JSON bodies of the API.
package response

import (
	"net/http"

	domainerrors "authproxy/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// LegacyResponse is the body of POST /auth.
type LegacyResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message,omitempty"`
	AccessToken string `json:"access_token,omitempty"`
}

// MessageResponse is the body of the password flow endpoints.
type MessageResponse struct {
	Msg string `json:"msg"`
}

// Detail writes {"detail": message}.
func Detail(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, domainerrors.ErrorResponse{Detail: message})
}

// Message writes {"msg": message} with 200.
func Message(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, MessageResponse{Msg: message})
}

// LegacySuccess writes a successful POST /auth result.
func LegacySuccess(c echo.Context, message, accessToken string) error {
	return c.JSON(http.StatusOK, LegacyResponse{
		Success:     true,
		Message:     message,
		AccessToken: accessToken,
	})
}

// LegacyFailure writes {"success": false, "message": message}.
func LegacyFailure(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, LegacyResponse{Success: false, Message: message})
}
