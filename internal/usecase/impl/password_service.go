package impl

import (
	"context"
	"log/slog"

	deliverycontext "authproxy/internal/delivery/context"
	"authproxy/internal/domain/entity"
	domainerrors "authproxy/internal/domain/errors"
	"authproxy/internal/domain/repository"
	"authproxy/internal/domain/service"
	"authproxy/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type passwordService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	mailer       service.Mailer
	logger       *slog.Logger
}

// PasswordServiceParams holds dependencies for the password reset flow, injected by Fx.
type PasswordServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Mailer       service.Mailer
	Logger       *slog.Logger
}

// NewPasswordService creates the password reset flow.
func NewPasswordService(params PasswordServiceParams) usecase.PasswordUsecase {
	return &passwordService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		mailer:       params.Mailer,
		logger:       params.Logger,
	}
}

func (srv *passwordService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RecoverPassword emails a reset link to a known local user.
func (srv *passwordService) RecoverPassword(ctx context.Context, email string) error {
	if _, err := srv.findUser(ctx, email); err != nil {
		return err
	}

	token, err := srv.tokenService.GeneratePasswordResetToken(email)
	if err != nil {
		return errors.Wrap(err, "failed to generate password reset token")
	}

	if err := srv.mailer.SendResetPasswordEmail(ctx, email, token); err != nil {
		srv.log(ctx).Error("Failed to send password recovery email", slog.String("email", email), slog.Any("error", err))

		return domainerrors.ErrEmailDeliveryFailed.WrapMessage(err.Error())
	}

	srv.log(ctx).Info("Password recovery email sent", slog.String("email", email))

	return nil
}

// ResetPassword stores a new local hash for the email the token was issued to.
// The provider credential is left unchanged.
func (srv *passwordService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	email, err := srv.tokenService.VerifyPasswordResetToken(input.Token)
	if err != nil {
		srv.log(ctx).Info("Rejected password reset token", slog.Any("error", err))

		return domainerrors.ErrInvalidResetToken
	}

	user, err := srv.findUser(ctx, email)
	if err != nil {
		return err
	}
	if !user.CanAuthenticate() {
		return domainerrors.ErrInactiveUser
	}

	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	if err := srv.userRepo.UpdatePassword(ctx, user.ID, hashedPassword); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to update password")
	}

	srv.log(ctx).Info("Password updated", slog.String("userId", user.ID.String()))

	return nil
}

func (srv *passwordService) findUser(ctx context.Context, email string) (*entity.User, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return user, nil
}
