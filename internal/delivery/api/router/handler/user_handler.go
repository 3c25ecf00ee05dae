package handler

import (
	"net/http"

	deliverycontext "authproxy/internal/delivery/context"
	"authproxy/internal/domain/entity"
	domainerrors "authproxy/internal/domain/errors"
	"authproxy/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type createUserRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required"`
	Username    string `json:"username"`
	FullName    string `json:"full_name"`
	IsSuperuser bool   `json:"is_superuser"`
}

// UserResponse is the public view of a local user.
type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	Username    string    `json:"username"`
	FullName    string    `json:"full_name"`
	IsActive    bool      `json:"is_active"`
	IsSuperuser bool      `json:"is_superuser"`
}

func newUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		Username:    user.Username,
		FullName:    user.FullName,
		IsActive:    user.IsActive,
		IsSuperuser: user.IsSuperuser,
	}
}

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc usecase.UserUsecase
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

// CreateUser provisions a user with the identity provider and mirrors it locally.
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.CreateUser(c.Request().Context(), &usecase.CreateUserInput{
		Email:       req.Email,
		Password:    req.Password,
		Username:    req.Username,
		FullName:    req.FullName,
		IsSuperuser: req.IsSuperuser,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, newUserResponse(user))
}

// GetMe returns the user behind the internal access token.
func (h *UserHandler) GetMe(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	user, err := h.uc.GetUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, newUserResponse(user))
}
