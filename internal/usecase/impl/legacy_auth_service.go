package impl

import (
	"context"
	"log/slog"

	deliverycontext "authproxy/internal/delivery/context"
	domainerrors "authproxy/internal/domain/errors"
	"authproxy/internal/domain/service"
	"authproxy/internal/usecase"

	"go.uber.org/fx"
)

const registrationSuccessMessage = "Registration successful."

type legacyAuthService struct {
	identity service.IdentityService
	logger   *slog.Logger
}

// LegacyAuthServiceParams holds dependencies for the legacy auth service, injected by Fx.
type LegacyAuthServiceParams struct {
	fx.In

	Identity service.IdentityService
	Logger   *slog.Logger
}

// NewLegacyAuthService creates the provider pass-through used by POST /auth.
func NewLegacyAuthService(params LegacyAuthServiceParams) usecase.LegacyAuthUsecase {
	return &legacyAuthService{
		identity: params.Identity,
		logger:   params.Logger,
	}
}

func (srv *legacyAuthService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a pre-confirmed provider account.
func (srv *legacyAuthService) Register(ctx context.Context, input *usecase.LegacyRegisterInput) (string, error) {
	_, err := srv.identity.AdminCreateUser(ctx, input.Email, input.Password, service.UserMetadata{
		Username: input.Username,
		FullName: input.FullName,
	})
	if err != nil {
		srv.log(ctx).Warn("Provider registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return "", domainerrors.ErrRegistrationFailed.WithMessage(identityMessage(err))
	}

	srv.log(ctx).Info("Provider account registered", slog.String("email", input.Email))

	return registrationSuccessMessage, nil
}

// Login returns the provider access token verbatim.
func (srv *legacyAuthService) Login(ctx context.Context, email, password string) (string, error) {
	session, err := srv.identity.SignInWithPassword(ctx, email, password)
	if err != nil {
		srv.log(ctx).Info("Provider login refused", slog.String("email", email), slog.Any("error", err))

		return "", domainerrors.ErrLoginFailed.WithMessage(identityMessage(err))
	}
	if session == nil || session.AccessToken == "" {
		return "", domainerrors.ErrLoginFailed.WithMessage("Login failed: no session returned")
	}

	return session.AccessToken, nil
}
