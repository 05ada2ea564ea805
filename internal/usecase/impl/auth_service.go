// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	"freshware/config"
	deliverycontext "freshware/internal/delivery/context"
	"freshware/internal/domain/entity"
	domainerrors "freshware/internal/domain/errors"
	"freshware/internal/domain/repository"
	"freshware/internal/domain/service"
	"freshware/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	sessionRepo       repository.SessionRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	accessSecret      string
	refreshSecret     string
	maxActiveSessions int
	logger            *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	SessionRepo  repository.SessionRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	maxActiveSessions := 0
	if params.Config != nil && params.Config.Auth != nil {
		maxActiveSessions = params.Config.Auth.MaxActiveSessions
	}

	return &authService{
		txManager:         params.TxManager,
		userRepo:          params.UserRepo,
		sessionRepo:       params.SessionRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		accessSecret:      params.Config.SecretKey.Access,
		refreshSecret:     params.Config.SecretKey.Refresh,
		maxActiveSessions: maxActiveSessions,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// hashRefreshToken derives the storable hash of a raw refresh token.
// Only the hash ever reaches the database.
func hashRefreshToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))

	return hex.EncodeToString(sum[:])
}

// Login verifies credentials and opens a new session.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Same error as a bad password, so the response does not reveal
			// which of the two was wrong.
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to look up user for login")
	}

	if err := srv.hasher.Compare(user.PasswordHash, input.Password); err != nil {
		srv.log(ctx).Warn("Login rejected", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.Role.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sessionRepo := repoFactory.SessionRepo()

		if srv.maxActiveSessions > 0 {
			count, countErr := sessionRepo.CountByUserID(ctx, user.ID)
			if countErr != nil {
				return errors.Wrap(countErr, "failed to count active sessions")
			}
			if count >= int64(srv.maxActiveSessions) {
				return domainerrors.ErrSessionLimitExceeded
			}
		}

		return sessionRepo.Create(ctx, &entity.Session{
			ID:        uuid.New(),
			UserID:    user.ID,
			TokenHash: hashRefreshToken(refreshToken),
			ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
			CreatedAt: time.Now(),
		})
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User signed in", slog.Any("userID", user.ID), slog.String("role", user.Role.String()))

	return &usecase.LoginOutput{
		Tokens: usecase.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken},
		User:   user,
	}, nil
}

// Logout ends the session identified by the raw refresh token. Unknown tokens
// are ignored so a stale cookie never turns logout into an error page.
func (srv *authService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}

	if err := srv.sessionRepo.DeleteByTokenHash(ctx, hashRefreshToken(refreshToken)); err != nil {
		return errors.Wrap(err, "failed to delete session on logout")
	}

	return nil
}

// ResolveSession turns the caller's cookie tokens into an identity. A valid
// access token resolves directly; otherwise the refresh token rotates the
// session and the caller gets fresh cookies to set.
func (srv *authService) ResolveSession(ctx context.Context, accessToken, refreshToken string) (*usecase.ResolveOutput, error) {
	if accessToken != "" {
		identity, err := srv.identityFromAccessToken(ctx, accessToken)
		if err == nil {
			return &usecase.ResolveOutput{Identity: identity}, nil
		}
		// An unusable access token is not fatal; fall through to refresh.
	}

	if refreshToken == "" {
		return nil, domainerrors.ErrSessionInvalid
	}

	return srv.refreshSession(ctx, refreshToken)
}

// identityFromAccessToken validates the short-lived token and extracts the
// caller's identity from its claims.
func (srv *authService) identityFromAccessToken(ctx context.Context, accessToken string) (*entity.SessionIdentity, error) {
	token, err := srv.tokenService.ValidateToken(accessToken, srv.accessSecret)
	if err != nil || !token.Valid {
		return nil, domainerrors.ErrSessionInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["type"] != "access" {
		return nil, domainerrors.ErrSessionInvalid
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return nil, domainerrors.ErrSessionInvalid
	}
	userID, err := uuid.Parse(subject)
	if err != nil {
		return nil, domainerrors.ErrSessionInvalid
	}

	roleClaim, _ := claims["role"].(string)
	role := entity.Role(roleClaim)
	if !role.IsValid() {
		return nil, domainerrors.ErrSessionInvalid
	}

	identity := &entity.SessionIdentity{UserID: userID, Role: role}

	// Client users are tenant-scoped; their account comes from the user
	// record, not the token.
	if role == entity.RoleClient {
		user, err := srv.userRepo.FindByID(ctx, userID)
		if err != nil {
			return nil, domainerrors.ErrSessionInvalid
		}
		identity.AccountID = user.AccountID
	}

	return identity, nil
}

// refreshSession exchanges a valid refresh token for a new token pair,
// rotating the stored session in one transaction.
func (srv *authService) refreshSession(ctx context.Context, refreshToken string) (*usecase.ResolveOutput, error) {
	token, err := srv.tokenService.ValidateToken(refreshToken, srv.refreshSecret)
	if err != nil || !token.Valid {
		return nil, domainerrors.ErrSessionInvalid
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["type"] != "refresh" {
		return nil, domainerrors.ErrSessionInvalid
	}

	oldHash := hashRefreshToken(refreshToken)

	session, err := srv.sessionRepo.FindByTokenHash(ctx, oldHash)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) || errors.Is(err, repository.ErrSessionExpired) {
			return nil, domainerrors.ErrSessionInvalid
		}

		return nil, errors.Wrap(err, "failed to look up session for refresh")
	}

	user, err := srv.userRepo.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, domainerrors.ErrSessionInvalid
	}

	newAccess, newRefresh, err := srv.tokenService.GenerateTokens(user.ID, user.Role.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate rotated tokens")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sessionRepo := repoFactory.SessionRepo()

		if err := sessionRepo.DeleteByTokenHash(ctx, oldHash); err != nil {
			return errors.Wrap(err, "failed to retire rotated session")
		}

		return sessionRepo.Create(ctx, &entity.Session{
			ID:        uuid.New(),
			UserID:    user.ID,
			TokenHash: hashRefreshToken(newRefresh),
			ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
			CreatedAt: time.Now(),
		})
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Session rotated", slog.Any("userID", user.ID))

	return &usecase.ResolveOutput{
		Identity: &entity.SessionIdentity{UserID: user.ID, Role: user.Role, AccountID: user.AccountID},
		Rotated:  &usecase.TokenPair{AccessToken: newAccess, RefreshToken: newRefresh},
	}, nil
}
