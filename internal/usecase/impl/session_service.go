package impl

import (
	"context"
	"log/slog"

	deliverycontext "authproxy/internal/delivery/context"
	domainerrors "authproxy/internal/domain/errors"
	"authproxy/internal/domain/repository"
	"authproxy/internal/domain/service"
	"authproxy/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const tokenTypeBearer = "bearer"

type sessionService struct {
	identity service.IdentityService
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// SessionServiceParams holds dependencies for the session service, injected by Fx.
type SessionServiceParams struct {
	fx.In

	Identity service.IdentityService
	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewSessionService creates the service behind POST /login/access-token.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		identity: params.Identity,
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// LoginAccessToken signs in with the provider, then requires an active local mirror.
// The provider token is returned unchanged. Every failure is ErrIncorrectCredentials.
func (srv *sessionService) LoginAccessToken(ctx context.Context, input *usecase.LoginInput) (*usecase.TokenOutput, error) {
	if input == nil || input.Email == "" || input.Password == "" {
		return nil, domainerrors.ErrIncorrectCredentials
	}

	session, err := srv.identity.SignInWithPassword(ctx, input.Email, input.Password)
	if err != nil {
		srv.log(ctx).Info("Password sign-in refused", slog.String("email", input.Email), slog.Any("error", err))

		return nil, domainerrors.ErrIncorrectCredentials
	}
	if session == nil || session.AccessToken == "" || session.User == nil {
		srv.log(ctx).Warn("Password sign-in returned no session", slog.String("email", input.Email))

		return nil, domainerrors.ErrIncorrectCredentials
	}

	// Every local gate failure reads as bad credentials; the cause is only logged.
	user, err := srv.userRepo.FindByID(ctx, session.User.ID)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Info("Provider user has no local record", slog.String("userId", session.User.ID.String()))

		return nil, domainerrors.ErrIncorrectCredentials
	}
	if err != nil {
		srv.log(ctx).Error("Failed to load local user",
			slog.String("userId", session.User.ID.String()),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrIncorrectCredentials
	}
	if !user.CanAuthenticate() {
		srv.log(ctx).Info("Local user is inactive", slog.String("userId", user.ID.String()))

		return nil, domainerrors.ErrIncorrectCredentials
	}

	return &usecase.TokenOutput{
		AccessToken: session.AccessToken,
		TokenType:   tokenTypeBearer,
	}, nil
}
