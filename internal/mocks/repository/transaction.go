package repository

import (
	"context"

	"authproxy/internal/domain/repository"
)

// PassThroughTransactionManager runs the callback with a factory returning fixed repositories.
type PassThroughTransactionManager struct {
	UserRepo repository.UserRepository
}

func (m *PassThroughTransactionManager) Execute(_ context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	return fn(repositoryFactory{userRepo: m.UserRepo})
}

type repositoryFactory struct {
	userRepo repository.UserRepository
}

func (f repositoryFactory) NewUserRepository() repository.UserRepository {
	return f.userRepo
}

var _ repository.TransactionManager = (*PassThroughTransactionManager)(nil)
