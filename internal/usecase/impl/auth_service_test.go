package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"freshware/config"
	"freshware/internal/domain/entity"
	domainerrors "freshware/internal/domain/errors"
	"freshware/internal/domain/repository"
	"freshware/internal/domain/service"
	"freshware/internal/infra/auth"
	"freshware/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuthConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "access-secret-for-tests"
	cfg.SecretKey.Refresh = "refresh-secret-for-tests"
	cfg.Auth = &config.AuthConfig{BcryptCost: 4, MaxActiveSessions: 2}

	return cfg
}

func testTokenService(t *testing.T, cfg *config.Config) service.TokenService {
	t.Helper()

	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return tokenService
}

func newAuthServiceForTest(t *testing.T, cfg *config.Config, userRepo repository.UserRepository, sessionRepo *mockSessionRepo) usecase.AuthUsecase {
	t.Helper()

	return NewAuthService(AuthServiceParams{
		TxManager:    &mockTxManager{factory: &mockRepoFactory{userRepo: userRepo, sessionRepo: sessionRepo}},
		UserRepo:     userRepo,
		SessionRepo:  sessionRepo,
		Hasher:       auth.NewBcryptHasher(cfg),
		TokenService: testTokenService(t, cfg),
		Config:       cfg,
		Logger:       slog.Default(),
	})
}

func seedUser(t *testing.T, cfg *config.Config, role entity.Role, password string) *entity.User {
	t.Helper()

	hash, err := auth.NewBcryptHasher(cfg).Hash(password)
	require.NoError(t, err)

	return &entity.User{
		ID:           uuid.New(),
		Email:        "user@example.com",
		Name:         "Test User",
		Role:         role,
		PasswordHash: hash,
	}
}

func TestLogin_CreatesSessionWithHashedToken(t *testing.T) {
	cfg := testAuthConfig()
	user := seedUser(t, cfg, entity.RoleSales, "hunter2hunter2")

	var storedSession *entity.Session
	sessionRepo := &mockSessionRepo{
		countByUserIDFn: func(_ context.Context, _ uuid.UUID) (int64, error) { return 0, nil },
		createFn: func(_ context.Context, session *entity.Session) error {
			storedSession = session

			return nil
		},
	}
	userRepo := &mockUserRepo{
		findByEmailFn: func(_ context.Context, email string) (*entity.User, error) {
			assert.Equal(t, user.Email, email)

			return user, nil
		},
	}

	svc := newAuthServiceForTest(t, cfg, userRepo, sessionRepo)

	out, err := svc.Login(context.Background(), usecase.LoginInput{Email: user.Email, Password: "hunter2hunter2"})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.NotEmpty(t, out.Tokens.AccessToken)
	assert.NotEmpty(t, out.Tokens.RefreshToken)

	require.NotNil(t, storedSession)
	assert.Equal(t, user.ID, storedSession.UserID)
	// The raw refresh token never reaches the store, only its hash.
	assert.NotEqual(t, out.Tokens.RefreshToken, storedSession.TokenHash)
	assert.Equal(t, hashRefreshToken(out.Tokens.RefreshToken), storedSession.TokenHash)
	assert.True(t, storedSession.ExpiresAt.After(time.Now()))
}

func TestLogin_WrongPasswordRejected(t *testing.T) {
	cfg := testAuthConfig()
	user := seedUser(t, cfg, entity.RoleSales, "correct-password")

	userRepo := &mockUserRepo{
		findByEmailFn: func(_ context.Context, _ string) (*entity.User, error) { return user, nil },
	}

	svc := newAuthServiceForTest(t, cfg, userRepo, &mockSessionRepo{})

	_, err := svc.Login(context.Background(), usecase.LoginInput{Email: user.Email, Password: "wrong-password"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestLogin_UnknownEmailSameErrorAsBadPassword(t *testing.T) {
	cfg := testAuthConfig()

	userRepo := &mockUserRepo{
		findByEmailFn: func(_ context.Context, _ string) (*entity.User, error) {
			return nil, repository.ErrUserNotFound
		},
	}

	svc := newAuthServiceForTest(t, cfg, userRepo, &mockSessionRepo{})

	_, err := svc.Login(context.Background(), usecase.LoginInput{Email: "ghost@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestLogin_SessionLimitEnforced(t *testing.T) {
	cfg := testAuthConfig()
	user := seedUser(t, cfg, entity.RoleSales, "hunter2hunter2")

	sessionRepo := &mockSessionRepo{
		countByUserIDFn: func(_ context.Context, _ uuid.UUID) (int64, error) { return 2, nil },
	}
	userRepo := &mockUserRepo{
		findByEmailFn: func(_ context.Context, _ string) (*entity.User, error) { return user, nil },
	}

	svc := newAuthServiceForTest(t, cfg, userRepo, sessionRepo)

	_, err := svc.Login(context.Background(), usecase.LoginInput{Email: user.Email, Password: "hunter2hunter2"})
	assert.ErrorIs(t, err, domainerrors.ErrSessionLimitExceeded)
}

func TestResolveSession_ValidAccessToken(t *testing.T) {
	cfg := testAuthConfig()
	user := seedUser(t, cfg, entity.RoleOps, "pw")
	tokenService := testTokenService(t, cfg)

	accessToken, _, err := tokenService.GenerateTokens(user.ID, user.Role.String())
	require.NoError(t, err)

	svc := newAuthServiceForTest(t, cfg, &mockUserRepo{}, &mockSessionRepo{})

	out, err := svc.ResolveSession(context.Background(), accessToken, "")
	require.NoError(t, err)
	require.NotNil(t, out.Identity)
	assert.Equal(t, user.ID, out.Identity.UserID)
	assert.Equal(t, entity.RoleOps, out.Identity.Role)
	// A live access token resolves without rotating anything.
	assert.Nil(t, out.Rotated)
}

func TestResolveSession_ClientIdentityCarriesAccount(t *testing.T) {
	cfg := testAuthConfig()
	accountID := uuid.New()
	user := seedUser(t, cfg, entity.RoleClient, "pw")
	user.AccountID = &accountID
	tokenService := testTokenService(t, cfg)

	accessToken, _, err := tokenService.GenerateTokens(user.ID, user.Role.String())
	require.NoError(t, err)

	userRepo := &mockUserRepo{
		findByIDFn: func(_ context.Context, id uuid.UUID) (*entity.User, error) {
			assert.Equal(t, user.ID, id)

			return user, nil
		},
	}

	svc := newAuthServiceForTest(t, cfg, userRepo, &mockSessionRepo{})

	out, err := svc.ResolveSession(context.Background(), accessToken, "")
	require.NoError(t, err)
	require.NotNil(t, out.Identity.AccountID)
	assert.Equal(t, accountID, *out.Identity.AccountID)
}

func TestResolveSession_RefreshRotatesSession(t *testing.T) {
	cfg := testAuthConfig()
	user := seedUser(t, cfg, entity.RoleSales, "pw")
	tokenService := testTokenService(t, cfg)

	_, refreshToken, err := tokenService.GenerateTokens(user.ID, user.Role.String())
	require.NoError(t, err)
	oldHash := hashRefreshToken(refreshToken)

	var deletedHash string
	var createdSession *entity.Session
	sessionRepo := &mockSessionRepo{
		findByTokenHashFn: func(_ context.Context, hash string) (*entity.Session, error) {
			assert.Equal(t, oldHash, hash)

			return &entity.Session{
				ID:        uuid.New(),
				UserID:    user.ID,
				TokenHash: hash,
				ExpiresAt: time.Now().Add(time.Hour),
			}, nil
		},
		deleteByTokenHashFn: func(_ context.Context, hash string) error {
			deletedHash = hash

			return nil
		},
		createFn: func(_ context.Context, session *entity.Session) error {
			createdSession = session

			return nil
		},
	}
	userRepo := &mockUserRepo{
		findByIDFn: func(_ context.Context, _ uuid.UUID) (*entity.User, error) { return user, nil },
	}

	svc := newAuthServiceForTest(t, cfg, userRepo, sessionRepo)

	// Garbage access token forces the refresh path.
	out, err := svc.ResolveSession(context.Background(), "not-a-jwt", refreshToken)
	require.NoError(t, err)
	require.NotNil(t, out.Identity)
	assert.Equal(t, user.ID, out.Identity.UserID)

	// Rotation: the old session is retired and the new pair is handed back.
	require.NotNil(t, out.Rotated)
	assert.NotEqual(t, refreshToken, out.Rotated.RefreshToken)
	assert.Equal(t, oldHash, deletedHash)
	require.NotNil(t, createdSession)
	assert.Equal(t, hashRefreshToken(out.Rotated.RefreshToken), createdSession.TokenHash)
}

func TestResolveSession_NoTokensInvalid(t *testing.T) {
	cfg := testAuthConfig()
	svc := newAuthServiceForTest(t, cfg, &mockUserRepo{}, &mockSessionRepo{})

	_, err := svc.ResolveSession(context.Background(), "", "")
	assert.ErrorIs(t, err, domainerrors.ErrSessionInvalid)
}

func TestResolveSession_UnknownRefreshTokenInvalid(t *testing.T) {
	cfg := testAuthConfig()
	user := seedUser(t, cfg, entity.RoleSales, "pw")
	tokenService := testTokenService(t, cfg)

	_, refreshToken, err := tokenService.GenerateTokens(user.ID, user.Role.String())
	require.NoError(t, err)

	sessionRepo := &mockSessionRepo{
		findByTokenHashFn: func(_ context.Context, _ string) (*entity.Session, error) {
			return nil, repository.ErrSessionNotFound
		},
	}

	svc := newAuthServiceForTest(t, cfg, &mockUserRepo{}, sessionRepo)

	_, err = svc.ResolveSession(context.Background(), "", refreshToken)
	assert.ErrorIs(t, err, domainerrors.ErrSessionInvalid)
}

func TestLogout_EmptyTokenIsNoop(t *testing.T) {
	cfg := testAuthConfig()
	svc := newAuthServiceForTest(t, cfg, &mockUserRepo{}, &mockSessionRepo{
		deleteByTokenHashFn: func(_ context.Context, _ string) error {
			return errors.New("should not be called")
		},
	})

	assert.NoError(t, svc.Logout(context.Background(), ""))
}

func TestLogout_DeletesSessionByHash(t *testing.T) {
	cfg := testAuthConfig()

	var deletedHash string
	svc := newAuthServiceForTest(t, cfg, &mockUserRepo{}, &mockSessionRepo{
		deleteByTokenHashFn: func(_ context.Context, hash string) error {
			deletedHash = hash

			return nil
		},
	})

	require.NoError(t, svc.Logout(context.Background(), "raw-refresh-token"))
	assert.Equal(t, hashRefreshToken("raw-refresh-token"), deletedHash)
}
