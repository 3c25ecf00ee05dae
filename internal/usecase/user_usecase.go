package usecase

import (
	"context"

	"authproxy/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateUserInput defines the data required to provision a user.
type CreateUserInput struct {
	Email       string
	Password    string
	Username    string
	FullName    string
	IsSuperuser bool
}

// UserUsecase provisions users in the identity provider and mirrors them locally.
type UserUsecase interface {
	CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)
}
