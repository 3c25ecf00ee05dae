package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "authproxy/internal/delivery/context"
	domainerrors "authproxy/internal/domain/errors"
	"authproxy/internal/domain/service"
	mockService "authproxy/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
		wantLogged bool
	}{
		{
			name:       "domain error",
			err:        errors.WithStack(domainerrors.ErrUserAlreadyExists),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"detail":"The user with this email already exists in the system."}`,
		},
		{
			name:       "wrapped domain error keeps its message",
			err:        domainerrors.ErrEmailDeliveryFailed.WrapMessage("postmark 422"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"detail":"` + domainerrors.ErrEmailDeliveryFailed.Message() + `"}`,
			wantLogged: true,
		},
		{
			name:       "echo error",
			err:        echo.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   `{"detail":"Not Found"}`,
		},
		{
			name:       "echo error with custom message",
			err:        echo.NewHTTPError(http.StatusRequestEntityTooLarge, "Request Entity Too Large"),
			wantStatus: http.StatusRequestEntityTooLarge,
			wantBody:   `{"detail":"Request Entity Too Large"}`,
		},
		{
			name:       "unknown error",
			err:        errors.New("pq: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"detail":"Internal server error"}`,
			wantLogged: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			mw := NewErrorMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)))

			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodPost, "/users/", nil), rec)
			mw.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			if tt.wantLogged {
				assert.Contains(t, buf.String(), "Unhandled error")
				assert.Contains(t, buf.String(), `"path":"/users/"`)
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestErrorMiddleware_SkipsCommittedResponse(t *testing.T) {
	mw := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.String(http.StatusOK, "done"))

	mw.HandleHTTPError(errors.New("late"), c)
	assert.Equal(t, "done", rec.Body.String())
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name      string
		header    string
		setup     func(tokens *mockService.MockTokenService)
		wantError bool
	}{
		{
			name:   "valid token",
			header: "Bearer good",
			setup: func(tokens *mockService.MockTokenService) {
				tokens.EXPECT().ValidateAccessToken("good").Return(&service.Claims{UserID: userID, Type: service.TokenTypeAccess}, nil)
			},
		},
		{
			name:   "lowercase scheme",
			header: "bearer good",
			setup: func(tokens *mockService.MockTokenService) {
				tokens.EXPECT().ValidateAccessToken("good").Return(&service.Claims{UserID: userID, Type: service.TokenTypeAccess}, nil)
			},
		},
		{
			name:      "missing header",
			wantError: true,
		},
		{
			name:      "basic scheme",
			header:    "Basic Zm9vOmJhcg==",
			wantError: true,
		},
		{
			name:   "invalid token",
			header: "Bearer bad",
			setup: func(tokens *mockService.MockTokenService) {
				tokens.EXPECT().ValidateAccessToken("bad").Return(nil, errors.New("token is expired"))
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := mockService.NewMockTokenService(t)
			if tt.setup != nil {
				tt.setup(tokens)
			}
			mw := NewAuthMiddleware(tokens, slog.New(slog.NewTextHandler(io.Discard, nil)))

			req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(req, rec)

			var seen uuid.UUID
			err := mw.Authenticate(func(c echo.Context) error {
				seen, _ = deliverycontext.GetUserID(c)

				return c.NoContent(http.StatusOK)
			})(c)

			if tt.wantError {
				assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
				assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
				assert.Equal(t, uuid.Nil, seen)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, userID, seen)
		})
	}
}
