package handler

import (
	"net/url"

	"authproxy/internal/delivery/api/response"
	domainerrors "authproxy/internal/domain/errors"
	"authproxy/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	msgRecoveryEmailSent = "Password recovery email sent"
	msgPasswordUpdated   = "Password updated successfully"
)

type resetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required"`
}

// PasswordHandler serves the password recovery endpoints.
type PasswordHandler struct {
	uc usecase.PasswordUsecase
}

// NewPasswordHandler is the constructor for PasswordHandler, injected by Fx.
func NewPasswordHandler(uc usecase.PasswordUsecase) *PasswordHandler {
	return &PasswordHandler{uc: uc}
}

// RecoverPassword emails a reset link to the address in the path.
func (h *PasswordHandler) RecoverPassword(c echo.Context) error {
	email, err := url.PathUnescape(c.Param("email"))
	if err != nil || email == "" {
		return domainerrors.ErrUserNotFound
	}

	if err := h.uc.RecoverPassword(c.Request().Context(), email); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, msgRecoveryEmailSent)
}

// ResetPassword sets a new local password from a reset token.
func (h *PasswordHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.ResetPassword(c.Request().Context(), &usecase.ResetPasswordInput{
		Token:       req.Token,
		NewPassword: req.NewPassword,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, msgPasswordUpdated)
}
