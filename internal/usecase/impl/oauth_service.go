package impl

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"log/slog"
	"net/url"

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

const randomPasswordBytes = 16

type oauthService struct {
	oauth               service.OAuthService
	txManager           repository.TransactionManager
	userRepo            repository.UserRepository
	hasher              service.PasswordHasher
	tokenService        service.TokenService
	frontendCallbackURL string
	logger              *slog.Logger
}

// OAuthServiceParams holds dependencies for the OAuth bridge, injected by Fx.
type OAuthServiceParams struct {
	fx.In

	OAuth        service.OAuthService
	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewOAuthService creates the OAuth bridge.
func NewOAuthService(params OAuthServiceParams) usecase.OAuthUsecase {
	return &oauthService{
		oauth:               params.OAuth,
		txManager:           params.TxManager,
		userRepo:            params.UserRepo,
		hasher:              params.Hasher,
		tokenService:        params.TokenService,
		frontendCallbackURL: params.Config.GitHub.FrontendCallbackURL,
		logger:              params.Logger,
	}
}

func (srv *oauthService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AuthorizationURL returns the provider consent page.
func (srv *oauthService) AuthorizationURL() string {
	return srv.oauth.AuthorizationURL()
}

// HandleCallback exchanges the code, resolves or creates the local user and
// returns the frontend URL carrying an internal token.
func (srv *oauthService) HandleCallback(ctx context.Context, code string) (string, error) {
	if code == "" {
		return "", domainerrors.ErrOAuthCodeMissing
	}

	accessToken, err := srv.oauth.ExchangeCode(ctx, code)
	if err != nil {
		return "", errors.Wrapf(err, "%s code exchange failed", srv.oauth.GetProvider())
	}

	profile, err := srv.oauth.FetchProfile(ctx, accessToken)
	if err != nil {
		return "", errors.Wrapf(err, "%s profile fetch failed", srv.oauth.GetProvider())
	}

	user, err := srv.findOrCreateUser(ctx, profile)
	if err != nil {
		return "", err
	}

	token, err := srv.tokenService.GenerateAccessToken(user.ID)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate access token")
	}

	redirect, err := withQueryParam(srv.frontendCallbackURL, "token", token)
	if err != nil {
		return "", err
	}

	srv.log(ctx).Info("OAuth login completed",
		slog.String("provider", string(profile.Provider)),
		slog.String("userId", user.ID.String()),
	)

	return redirect, nil
}

func (srv *oauthService) findOrCreateUser(ctx context.Context, profile *entity.OAuthProfile) (*entity.User, error) {
	email := profile.ResolvedEmail()

	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		existing, err := userRepo.FindByEmail(ctx, email)
		if err == nil {
			user = existing

			return nil
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to find user by email")
		}

		created, err := srv.newOAuthUser(profile, email)
		if err != nil {
			return err
		}
		if err := userRepo.Create(ctx, created); err != nil {
			return err
		}
		user = created

		srv.log(ctx).Info("Created local user from OAuth profile",
			slog.String("userId", created.ID.String()),
			slog.String("login", profile.Login),
		)

		return nil
	})
	if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
		// A concurrent callback created the same email first.
		existing, findErr := srv.userRepo.FindByEmail(ctx, email)
		if findErr != nil {
			return nil, errors.Wrap(findErr, "failed to load concurrently created user")
		}

		return existing, nil
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (srv *oauthService) newOAuthUser(profile *entity.OAuthProfile, email string) (*entity.User, error) {
	password, err := randomPassword()
	if err != nil {
		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash generated password")
	}

	return &entity.User{
		ID:             uuid.New(),
		Email:          email,
		Username:       profile.Login,
		FullName:       profile.DisplayName(),
		HashedPassword: hashedPassword,
		IsActive:       true,
	}, nil
}

// randomPassword returns a URL-safe secret nobody is told; the account is usable only through OAuth or a reset.
func randomPassword() (string, error) {
	buf := make([]byte, randomPasswordBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to generate password")
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}

func withQueryParam(rawURL, key, value string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", errors.Wrap(err, "invalid frontend callback url")
	}

	query := parsed.Query()
	query.Set(key, value)
	parsed.RawQuery = query.Encode()

	return parsed.String(), nil
}
