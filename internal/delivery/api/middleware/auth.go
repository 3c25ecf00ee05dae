package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "authproxy/internal/delivery/context"
	domainerrors "authproxy/internal/domain/errors"
	"authproxy/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware authenticates requests carrying an internal access token.
// Provider session tokens are not accepted here.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate stores the token subject on the context, or fails with 401.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if len(authHeader) <= len(bearerPrefix) || !strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			return m.unauthorized(c)
		}

		claims, err := m.tokenSvc.ValidateAccessToken(strings.TrimSpace(authHeader[len(bearerPrefix):]))
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Rejected access token", slog.Any("error", err))

			return m.unauthorized(c)
		}

		deliverycontext.SetUserID(c, claims.UserID)

		return next(c)
	}
}

func (m *AuthMiddleware) unauthorized(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")

	return domainerrors.ErrUnauthorized
}
