// Package handler contains the HTTP handlers of the API.
package handler

import (
	"encoding/json"
	"net/http"

	"authproxy/internal/delivery/api/response"
	domainerrors "authproxy/internal/domain/errors"
	"authproxy/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	actionRegister = "register"
	actionLogin    = "login"

	msgInvalidJSON   = "Invalid JSON payload"
	msgMissingFields = "Missing required fields: action, email, password"
	msgInvalidAction = "Invalid action specified"
)

type legacyAuthRequest struct {
	Action   string `json:"action"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
}

// LegacyAuthHandler serves POST /auth. Its failures use {"success": false, "message": ...}.
type LegacyAuthHandler struct {
	uc usecase.LegacyAuthUsecase
}

// NewLegacyAuthHandler is the constructor for LegacyAuthHandler, injected by Fx.
func NewLegacyAuthHandler(uc usecase.LegacyAuthUsecase) *LegacyAuthHandler {
	return &LegacyAuthHandler{uc: uc}
}

// Handle dispatches on the action field.
func (h *LegacyAuthHandler) Handle(c echo.Context) error {
	req, ok := decodeLegacyRequest(c)
	if !ok {
		return response.LegacyFailure(c, http.StatusBadRequest, msgInvalidJSON)
	}

	if req.Action == "" || req.Email == "" || req.Password == "" {
		return response.LegacyFailure(c, http.StatusBadRequest, msgMissingFields)
	}

	ctx := c.Request().Context()

	switch req.Action {
	case actionRegister:
		msg, err := h.uc.Register(ctx, &usecase.LegacyRegisterInput{
			Email:    req.Email,
			Password: req.Password,
			Username: req.Username,
			FullName: req.FullName,
		})
		if err != nil {
			return legacyFailure(c, err)
		}

		return response.LegacySuccess(c, msg, "")
	case actionLogin:
		token, err := h.uc.Login(ctx, req.Email, req.Password)
		if err != nil {
			return legacyFailure(c, err)
		}

		return response.LegacySuccess(c, "", token)
	default:
		return response.LegacyFailure(c, http.StatusBadRequest, msgInvalidAction)
	}
}

// decodeLegacyRequest rejects bodies that are not a non-empty JSON object, including null and {}.
func decodeLegacyRequest(c echo.Context) (*legacyAuthRequest, bool) {
	var raw json.RawMessage
	if err := c.Echo().JSONSerializer.Deserialize(c, &raw); err != nil {
		return nil, false
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || len(fields) == 0 {
		return nil, false
	}

	var req legacyAuthRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, false
	}

	return &req, true
}

// legacyFailure renders domain errors in the legacy shape and leaves the rest to the error handler.
func legacyFailure(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
		return response.LegacyFailure(c, appErr.HTTPCode(), appErr.Message())
	}

	return errors.WithStack(err)
}
