package handler

import (
	"net/http"
	"testing"

	deliverycontext "authproxy/internal/delivery/context"
	"authproxy/internal/domain/entity"
	domainerrors "authproxy/internal/domain/errors"
	mockUsecase "authproxy/internal/mocks/usecase"
	"authproxy/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserHandler_CreateUser(t *testing.T) {
	id := uuid.MustParse("9f1c2d3e-4b5a-4c6d-8e7f-0a1b2c3d4e5f")
	uc := mockUsecase.NewMockUserUsecase(t)
	uc.EXPECT().CreateUser(mock.Anything, &usecase.CreateUserInput{
		Email:    "new@b.co",
		Password: "secret123",
		Username: "newbie",
		FullName: "New User",
	}).Return(&entity.User{
		ID:             id,
		Email:          "new@b.co",
		Username:       "newbie",
		FullName:       "New User",
		HashedPassword: "$2a$12$hash",
		IsActive:       true,
	}, nil)

	body := `{"email":"new@b.co","password":"secret123","username":"newbie","full_name":"New User"}`
	rec := serve(t, newTestEcho(), newJSONRequest(http.MethodPost, "/users/", body), NewUserHandler(uc).CreateUser)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"id":"9f1c2d3e-4b5a-4c6d-8e7f-0a1b2c3d4e5f",
		"email":"new@b.co",
		"username":"newbie",
		"full_name":"New User",
		"is_active":true,
		"is_superuser":false
	}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "hash")
}

func TestUserHandler_CreateUser_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(uc *mockUsecase.MockUserUsecase)
		wantStatus int
		wantBody   string
	}{
		{
			name:       "invalid email",
			body:       `{"email":"nope","password":"secret123"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"detail":"email: value is not a valid email address"}`,
		},
		{
			name:       "missing password",
			body:       `{"email":"new@b.co"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"detail":"password: field required"}`,
		},
		{
			name:       "malformed body",
			body:       `{"email":`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"detail":"Invalid request payload"}`,
		},
		{
			name: "duplicate email",
			body: `{"email":"new@b.co","password":"secret123"}`,
			setup: func(uc *mockUsecase.MockUserUsecase) {
				uc.EXPECT().CreateUser(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUserAlreadyExists)
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"detail":"The user with this email already exists in the system."}`,
		},
		{
			name: "creation failed",
			body: `{"email":"new@b.co","password":"secret123"}`,
			setup: func(uc *mockUsecase.MockUserUsecase) {
				uc.EXPECT().CreateUser(mock.Anything, mock.Anything).
					Return(nil, domainerrors.NewUserCreationError(assert.AnError))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"detail":"An error occurred during user creation: ` + assert.AnError.Error() + `"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mockUsecase.NewMockUserUsecase(t)
			if tt.setup != nil {
				tt.setup(uc)
			}

			rec := serve(t, newTestEcho(), newJSONRequest(http.MethodPost, "/users/", tt.body), NewUserHandler(uc).CreateUser)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestUserHandler_GetMe(t *testing.T) {
	id := uuid.New()
	uc := mockUsecase.NewMockUserUsecase(t)
	uc.EXPECT().GetUser(mock.Anything, id).Return(&entity.User{ID: id, Email: "a@b.co", IsActive: true}, nil)

	h := NewUserHandler(uc).GetMe
	rec := serve(t, newTestEcho(), newJSONRequest(http.MethodGet, "/users/me", ""), func(c echo.Context) error {
		deliverycontext.SetUserID(c, id)

		return h(c)
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), id.String())
}

func TestUserHandler_GetMe_Unauthenticated(t *testing.T) {
	uc := mockUsecase.NewMockUserUsecase(t)

	rec := serve(t, newTestEcho(), newJSONRequest(http.MethodGet, "/users/me", ""), NewUserHandler(uc).GetMe)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"detail":"Could not validate credentials"}`, rec.Body.String())
}
