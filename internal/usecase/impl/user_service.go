package impl

import (
	"context"
	"log/slog"
	"time"

	"authproxy/config"
	deliverycontext "authproxy/internal/delivery/context"
	"authproxy/internal/domain/entity"
	domainerrors "authproxy/internal/domain/errors"
	"authproxy/internal/domain/repository"
	"authproxy/internal/domain/service"
	"authproxy/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultBackgroundTimeout = 10 * time.Second

// userService implements the UserUsecase interface.
type userService struct {
	identity          service.IdentityService
	userRepo          repository.UserRepository
	hasher            service.PasswordHasher
	mailer            service.Mailer
	sendWelcomeEmail  bool
	backgroundTimeout time.Duration
	logger            *slog.Logger

	// async runs fire-and-forget work; tests replace it to run inline.
	async func(func())
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	Identity service.IdentityService
	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Mailer   service.Mailer
	Config   *config.Config
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return newUserService(params)
}

func newUserService(params UserServiceParams) *userService {
	srv := &userService{
		identity:          params.Identity,
		userRepo:          params.UserRepo,
		hasher:            params.Hasher,
		mailer:            params.Mailer,
		backgroundTimeout: defaultBackgroundTimeout,
		logger:            params.Logger,
		async:             func(fn func()) { go fn() },
	}

	if params.Config != nil {
		if params.Config.Email != nil {
			srv.sendWelcomeEmail = params.Config.Email.Enabled
		}
		if params.Config.Outbound != nil && params.Config.Outbound.Timeout > 0 {
			srv.backgroundTimeout = params.Config.Outbound.Timeout
		}
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateUser signs the user up with the provider and mirrors the account locally under the provider's id.
func (srv *userService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	_, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		return nil, domainerrors.ErrUserAlreadyExists
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.NewUserCreationError(err)
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.NewUserCreationError(errors.Wrap(err, "failed to hash password"))
	}

	identityUser, err := srv.identity.SignUp(ctx, input.Email, input.Password, service.UserMetadata{
		Username: input.Username,
		FullName: input.FullName,
	})
	if err != nil {
		srv.log(ctx).Warn("Provider sign-up failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, domainerrors.NewUserCreationError(errors.New(identityMessage(err)))
	}
	if identityUser == nil || identityUser.ID == uuid.Nil {
		return nil, domainerrors.ErrIdentityUserNotCreated
	}

	user := &entity.User{
		ID:             identityUser.ID,
		Email:          input.Email,
		Username:       input.Username,
		FullName:       input.FullName,
		HashedPassword: hashedPassword,
		IsActive:       true,
		IsSuperuser:    input.IsSuperuser,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		// A conflict means the provider handed back an account that is already mirrored,
		// so the provider side must be left alone.
		if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
			srv.log(ctx).Warn("Provider sign-up returned an account that already exists locally",
				slog.String("userId", user.ID.String()),
				slog.String("email", user.Email),
			)

			return nil, domainerrors.ErrUserAlreadyExists
		}

		srv.log(ctx).Error("Local mirror write failed after provider sign-up",
			slog.String("userId", user.ID.String()),
			slog.String("email", user.Email),
			slog.Any("error", err),
		)
		srv.compensateSignUp(ctx, user.ID)

		return nil, domainerrors.NewUserCreationError(err)
	}

	srv.log(ctx).Info("User provisioned", slog.String("userId", user.ID.String()), slog.String("email", user.Email))

	if srv.sendWelcomeEmail {
		srv.notifyNewAccount(ctx, user)
	}

	return user, nil
}

// GetUser loads a local user by id.
func (srv *userService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user")
	}

	return user, nil
}

// compensateSignUp removes the provider account so a retry can succeed. Failure is logged only.
func (srv *userService) compensateSignUp(ctx context.Context, id uuid.UUID) {
	cleanupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), srv.backgroundTimeout)
	defer cancel()

	if err := srv.identity.AdminDeleteUser(cleanupCtx, id); err != nil {
		srv.log(ctx).Error("Failed to remove provider user after local write failure",
			slog.String("userId", id.String()),
			slog.Any("error", err),
		)

		return
	}

	srv.log(ctx).Info("Removed provider user after local write failure", slog.String("userId", id.String()))
}

func (srv *userService) notifyNewAccount(ctx context.Context, user *entity.User) {
	logger := srv.log(ctx)
	detached := context.WithoutCancel(ctx)

	srv.async(func() {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("New account email panicked", slog.Any("panic", r))
			}
		}()

		sendCtx, cancel := context.WithTimeout(detached, srv.backgroundTimeout)
		defer cancel()

		if err := srv.mailer.SendNewAccountEmail(sendCtx, user.Email, user.Username); err != nil {
			logger.Warn("Failed to send new account email", slog.String("email", user.Email), slog.Any("error", err))
		}
	})
}
