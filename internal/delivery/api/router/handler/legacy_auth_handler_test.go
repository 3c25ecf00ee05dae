package handler

import (
	"net/http"
	"testing"

	domainerrors "authproxy/internal/domain/errors"
	mockUsecase "authproxy/internal/mocks/usecase"
	"authproxy/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestLegacyAuthHandler_Handle(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(uc *mockUsecase.MockLegacyAuthUsecase)
		wantStatus int
		wantBody   string
	}{
		{
			name:       "invalid json",
			body:       `{"action":`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"success":false,"message":"Invalid JSON payload"}`,
		},
		{
			name:       "empty object",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"success":false,"message":"Invalid JSON payload"}`,
		},
		{
			name:       "null body",
			body:       `null`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"success":false,"message":"Invalid JSON payload"}`,
		},
		{
			name:       "array body",
			body:       `[{"action":"login"}]`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"success":false,"message":"Invalid JSON payload"}`,
		},
		{
			name:       "unrelated fields only",
			body:       `{"foo":"bar"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"success":false,"message":"Missing required fields: action, email, password"}`,
		},
		{
			name:       "missing fields",
			body:       `{"action":"login","email":"a@b.co"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"success":false,"message":"Missing required fields: action, email, password"}`,
		},
		{
			name:       "unknown action",
			body:       `{"action":"logout","email":"a@b.co","password":"pw"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"success":false,"message":"Invalid action specified"}`,
		},
		{
			name: "register",
			body: `{"action":"register","email":"a@b.co","password":"pw","username":"al","fullName":"Al B"}`,
			setup: func(uc *mockUsecase.MockLegacyAuthUsecase) {
				uc.EXPECT().Register(mock.Anything, &usecase.LegacyRegisterInput{
					Email: "a@b.co", Password: "pw", Username: "al", FullName: "Al B",
				}).Return("Registration successful.", nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"success":true,"message":"Registration successful."}`,
		},
		{
			name: "register rejected",
			body: `{"action":"register","email":"a@b.co","password":"pw"}`,
			setup: func(uc *mockUsecase.MockLegacyAuthUsecase) {
				uc.EXPECT().Register(mock.Anything, mock.Anything).
					Return("", domainerrors.ErrRegistrationFailed.WithMessage("User already registered"))
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"success":false,"message":"User already registered"}`,
		},
		{
			name: "login",
			body: `{"action":"login","email":"a@b.co","password":"pw"}`,
			setup: func(uc *mockUsecase.MockLegacyAuthUsecase) {
				uc.EXPECT().Login(mock.Anything, "a@b.co", "pw").Return("provider-token", nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"success":true,"access_token":"provider-token"}`,
		},
		{
			name: "login refused",
			body: `{"action":"login","email":"a@b.com","password":"wrong"}`,
			setup: func(uc *mockUsecase.MockLegacyAuthUsecase) {
				uc.EXPECT().Login(mock.Anything, "a@b.com", "wrong").
					Return("", domainerrors.ErrLoginFailed.WithMessage("Invalid login credentials"))
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"success":false,"message":"Invalid login credentials"}`,
		},
		{
			name: "unexpected failure goes to error handler",
			body: `{"action":"login","email":"a@b.co","password":"pw"}`,
			setup: func(uc *mockUsecase.MockLegacyAuthUsecase) {
				uc.EXPECT().Login(mock.Anything, "a@b.co", "pw").Return("", errors.New("boom"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"detail":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mockUsecase.NewMockLegacyAuthUsecase(t)
			if tt.setup != nil {
				tt.setup(uc)
			}

			rec := serve(t, newTestEcho(), newJSONRequest(http.MethodPost, "/auth", tt.body), NewLegacyAuthHandler(uc).Handle)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
