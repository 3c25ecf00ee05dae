// Package middleware holds the API specific echo middleware.
package middleware

import (
	"log/slog"
	"net/http"

	"authproxy/internal/delivery/api/response"
	deliverycontext "authproxy/internal/delivery/context"
	domainerrors "authproxy/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError renders every error as {"detail": ...}. Server errors are logged with their cause.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logError(c, err)
		}
		_ = response.Detail(c, appErr.HTTPCode(), appErr.Message())

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok && msg != "" {
			message = msg
		}
		if httpErr.Code >= http.StatusInternalServerError {
			m.logError(c, err)
		}

		_ = response.Detail(c, httpErr.Code, message)

		return
	}

	m.logError(c, err)
	_ = response.Detail(c, http.StatusInternalServerError, domainerrors.ErrInternalError.Message())
}

func (m *ErrorMiddleware) logError(c echo.Context, err error) {
	deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
}
