package impl

import (
	"context"
	"net/url"
	"testing"

	"authproxy/internal/domain/entity"
	domainerrors "authproxy/internal/domain/errors"
	"authproxy/internal/domain/repository"
	mockRepo "authproxy/internal/mocks/repository"
	mockService "authproxy/internal/mocks/service"
	"authproxy/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type oauthServiceFixtures struct {
	service      usecase.OAuthUsecase
	oauth        *mockService.MockOAuthService
	txManager    repository.TransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
}

func createTestOAuthService(t *testing.T, txManager repository.TransactionManager, userRepo *mockRepo.MockUserRepository) *oauthServiceFixtures {
	f := &oauthServiceFixtures{
		oauth:        mockService.NewMockOAuthService(t),
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       mockService.NewMockPasswordHasher(t),
		tokenService: mockService.NewMockTokenService(t),
	}
	f.service = NewOAuthService(OAuthServiceParams{
		OAuth:        f.oauth,
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       f.hasher,
		TokenService: f.tokenService,
		Config:       newTestConfig(false),
		Logger:       newDiscardLogger(),
	})

	return f
}

func newPassThroughOAuthService(t *testing.T) *oauthServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)

	return createTestOAuthService(t, &mockRepo.PassThroughTransactionManager{UserRepo: userRepo}, userRepo)
}

func tokenFromRedirect(t *testing.T, redirect string) string {
	t.Helper()

	parsed, err := url.Parse(redirect)
	require.NoError(t, err)
	assert.Equal(t, "localhost:5173", parsed.Host)
	assert.Equal(t, "/auth/callback", parsed.Path)

	return parsed.Query().Get("token")
}

func TestOAuthService_AuthorizationURL(t *testing.T) {
	f := newPassThroughOAuthService(t)
	f.oauth.EXPECT().AuthorizationURL().Return("https://github.com/login/oauth/authorize?client_id=abc")

	assert.Equal(t, "https://github.com/login/oauth/authorize?client_id=abc", f.service.AuthorizationURL())
}

func TestOAuthService_HandleCallback_ExistingUser(t *testing.T) {
	ctx := context.Background()
	f := newPassThroughOAuthService(t)
	userID := uuid.New()

	f.oauth.EXPECT().ExchangeCode(ctx, "code-1").Return("gh-token", nil)
	f.oauth.EXPECT().FetchProfile(ctx, "gh-token").Return(&entity.OAuthProfile{
		Provider: entity.ProviderTypeGitHub,
		ID:       42,
		Login:    "octocat",
		Email:    "octo@b.co",
	}, nil)
	f.userRepo.EXPECT().FindByEmail(ctx, "octo@b.co").Return(&entity.User{ID: userID, Email: "octo@b.co"}, nil)
	f.tokenService.EXPECT().GenerateAccessToken(userID).Return("internal-jwt", nil)

	redirect, err := f.service.HandleCallback(ctx, "code-1")
	require.NoError(t, err)
	assert.Equal(t, "internal-jwt", tokenFromRedirect(t, redirect))
	f.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOAuthService_HandleCallback_CreatesUserWithPlaceholderEmail(t *testing.T) {
	ctx := context.Background()
	f := newPassThroughOAuthService(t)

	var created *entity.User
	f.oauth.EXPECT().ExchangeCode(ctx, "code-1").Return("gh-token", nil)
	f.oauth.EXPECT().FetchProfile(ctx, "gh-token").Return(&entity.OAuthProfile{
		Provider: entity.ProviderTypeGitHub,
		ID:       42,
		Login:    "octocat",
	}, nil)
	f.userRepo.EXPECT().FindByEmail(ctx, "42@octocat.github.com").Return(nil, repository.ErrUserNotFound)
	f.hasher.EXPECT().Hash(mock.AnythingOfType("string")).Return("random-hash", nil)
	f.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) { created = user }).
		Return(nil)
	f.tokenService.EXPECT().GenerateAccessToken(mock.AnythingOfType("uuid.UUID")).Return("internal-jwt", nil)

	redirect, err := f.service.HandleCallback(ctx, "code-1")
	require.NoError(t, err)
	assert.Equal(t, "internal-jwt", tokenFromRedirect(t, redirect))

	require.NotNil(t, created)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "42@octocat.github.com", created.Email)
	assert.Equal(t, "octocat", created.Username)
	assert.Equal(t, "octocat", created.FullName)
	assert.Equal(t, "random-hash", created.HashedPassword)
	assert.True(t, created.IsActive)
	assert.False(t, created.IsSuperuser)
	f.tokenService.AssertCalled(t, "GenerateAccessToken", created.ID)
}

func TestOAuthService_HandleCallback_ConcurrentCreate(t *testing.T) {
	ctx := context.Background()
	f := newPassThroughOAuthService(t)
	winner := uuid.New()

	f.oauth.EXPECT().ExchangeCode(ctx, "code-1").Return("gh-token", nil)
	f.oauth.EXPECT().FetchProfile(ctx, "gh-token").Return(&entity.OAuthProfile{
		Provider: entity.ProviderTypeGitHub,
		ID:       42,
		Login:    "octocat",
		Email:    "octo@b.co",
	}, nil)
	f.userRepo.EXPECT().FindByEmail(ctx, "octo@b.co").Return(nil, repository.ErrUserNotFound).Once()
	f.hasher.EXPECT().Hash(mock.Anything).Return("random-hash", nil)
	f.userRepo.EXPECT().Create(ctx, mock.Anything).
		Return(domainerrors.ErrUserAlreadyExists.WrapMessage("unique violation"))
	f.userRepo.EXPECT().FindByEmail(ctx, "octo@b.co").Return(&entity.User{ID: winner}, nil).Once()
	f.tokenService.EXPECT().GenerateAccessToken(winner).Return("internal-jwt", nil)

	redirect, err := f.service.HandleCallback(ctx, "code-1")
	require.NoError(t, err)
	assert.Equal(t, "internal-jwt", tokenFromRedirect(t, redirect))
}

func TestOAuthService_HandleCallback_MissingCode(t *testing.T) {
	f := newPassThroughOAuthService(t)

	_, err := f.service.HandleCallback(context.Background(), "")
	assert.ErrorIs(t, err, domainerrors.ErrOAuthCodeMissing)
}

func TestOAuthService_HandleCallback_ExchangeFails(t *testing.T) {
	ctx := context.Background()
	f := newPassThroughOAuthService(t)

	f.oauth.EXPECT().ExchangeCode(ctx, "bad").Return("", errors.New("bad_verification_code"))
	f.oauth.EXPECT().GetProvider().Return(entity.ProviderTypeGitHub)

	_, err := f.service.HandleCallback(ctx, "bad")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "github code exchange failed")
}

func TestOAuthService_HandleCallback_TransactionFails(t *testing.T) {
	ctx := context.Background()
	userRepo := mockRepo.NewMockUserRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	f := createTestOAuthService(t, txManager, userRepo)

	f.oauth.EXPECT().ExchangeCode(ctx, "code-1").Return("gh-token", nil)
	f.oauth.EXPECT().FetchProfile(ctx, "gh-token").Return(&entity.OAuthProfile{
		Provider: entity.ProviderTypeGitHub,
		ID:       42,
		Login:    "octocat",
	}, nil)
	txManager.EXPECT().Execute(ctx, mock.Anything).Return(errors.New("failed to begin transaction"))

	_, err := f.service.HandleCallback(ctx, "code-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to begin transaction")
	f.tokenService.AssertNotCalled(t, "GenerateAccessToken", mock.Anything)
}
