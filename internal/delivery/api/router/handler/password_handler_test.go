package handler

import (
	"net/http"
	"testing"

	domainerrors "authproxy/internal/domain/errors"
	mockUsecase "authproxy/internal/mocks/usecase"
	"authproxy/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPasswordHandler_RecoverPassword(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "sent",
			wantStatus: http.StatusOK,
			wantBody:   `{"msg":"Password recovery email sent"}`,
		},
		{
			name:       "unknown user",
			err:        domainerrors.ErrUserNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   `{"detail":"The user with this username does not exist in the system."}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mockUsecase.NewMockPasswordUsecase(t)
			uc.EXPECT().RecoverPassword(mock.Anything, "a@b.co").Return(tt.err)

			h := NewPasswordHandler(uc).RecoverPassword
			rec := serve(t, newTestEcho(), newJSONRequest(http.MethodPost, "/password-recovery/a@b.co", ""), func(c echo.Context) error {
				c.SetParamNames("email")
				c.SetParamValues("a@b.co")

				return h(c)
			})

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestPasswordHandler_ResetPassword(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		called     bool
		wantStatus int
		wantBody   string
	}{
		{
			name:       "updated",
			body:       `{"token":"tok","new_password":"newpassword"}`,
			called:     true,
			wantStatus: http.StatusOK,
			wantBody:   `{"msg":"Password updated successfully"}`,
		},
		{
			name:       "invalid token",
			body:       `{"token":"tok","new_password":"newpassword"}`,
			err:        domainerrors.ErrInvalidResetToken,
			called:     true,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"detail":"Invalid token"}`,
		},
		{
			name:       "inactive user",
			body:       `{"token":"tok","new_password":"newpassword"}`,
			err:        domainerrors.ErrInactiveUser,
			called:     true,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"detail":"Inactive user"}`,
		},
		{
			name:       "missing new password",
			body:       `{"token":"tok"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"detail":"new_password: field required"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mockUsecase.NewMockPasswordUsecase(t)
			if tt.called {
				uc.EXPECT().ResetPassword(mock.Anything, &usecase.ResetPasswordInput{Token: "tok", NewPassword: "newpassword"}).
					Return(tt.err)
			}

			rec := serve(t, newTestEcho(), newJSONRequest(http.MethodPost, "/reset-password/", tt.body), NewPasswordHandler(uc).ResetPassword)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
