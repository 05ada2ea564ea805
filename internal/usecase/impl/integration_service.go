package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "freshware/internal/delivery/context"
	"freshware/internal/domain/entity"
	domainerrors "freshware/internal/domain/errors"
	"freshware/internal/domain/repository"
	"freshware/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const minIntegrationSecretLength = 16

// integrationService implements the IntegrationUsecase interface.
type integrationService struct {
	integrationRepo repository.IntegrationRepository
	accountRepo     repository.AccountRepository
	logger          *slog.Logger
}

// IntegrationServiceParams holds dependencies for integrationService, injected by Fx.
type IntegrationServiceParams struct {
	fx.In

	IntegrationRepo repository.IntegrationRepository
	AccountRepo     repository.AccountRepository
	Logger          *slog.Logger
}

// NewIntegrationService is the constructor for integrationService.
func NewIntegrationService(params IntegrationServiceParams) usecase.IntegrationUsecase {
	return &integrationService{
		integrationRepo: params.IntegrationRepo,
		accountRepo:     params.AccountRepo,
		logger:          params.Logger,
	}
}

func (srv *integrationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ConnectIntegration creates or replaces the credential for the pair and
// marks it connected. Reconnecting rotates the secret.
func (srv *integrationService) ConnectIntegration(ctx context.Context, input usecase.ConnectIntegrationInput) (*entity.IntegrationCredential, error) {
	if input.Provider == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("provider is required")
	}
	if len(input.Secret) < minIntegrationSecretLength {
		return nil, domainerrors.ErrValidationFailed.WithDetails("secret is too short")
	}

	if _, err := srv.accountRepo.FindByID(ctx, input.AccountID); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to verify integration account")
	}

	now := time.Now()
	credential := &entity.IntegrationCredential{
		ID:        uuid.New(),
		AccountID: input.AccountID,
		Provider:  input.Provider,
		Secret:    input.Secret,
		Status:    entity.IntegrationStatusConnected,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := srv.integrationRepo.Upsert(ctx, credential); err != nil {
		return nil, errors.Wrap(err, "failed to connect integration")
	}

	srv.log(ctx).Info("Integration connected",
		slog.Any("accountID", input.AccountID),
		slog.String("provider", input.Provider))

	return credential, nil
}

// DisconnectIntegration marks the credential disconnected; webhook calls for
// the pair are rejected until it is reconnected.
func (srv *integrationService) DisconnectIntegration(ctx context.Context, accountID uuid.UUID, provider string) error {
	credential, err := srv.integrationRepo.FindByAccountAndProvider(ctx, accountID, provider)
	if err != nil {
		if errors.Is(err, repository.ErrIntegrationNotFound) {
			return domainerrors.ErrNotFound
		}

		return errors.Wrap(err, "failed to load integration for disconnect")
	}

	credential.Status = entity.IntegrationStatusDisconnected
	credential.UpdatedAt = time.Now()

	if err := srv.integrationRepo.Upsert(ctx, credential); err != nil {
		return errors.Wrap(err, "failed to disconnect integration")
	}

	srv.log(ctx).Info("Integration disconnected",
		slog.Any("accountID", accountID),
		slog.String("provider", provider))

	return nil
}

func (srv *integrationService) GetIntegration(ctx context.Context, accountID uuid.UUID, provider string) (*entity.IntegrationCredential, error) {
	credential, err := srv.integrationRepo.FindByAccountAndProvider(ctx, accountID, provider)
	if err != nil {
		if errors.Is(err, repository.ErrIntegrationNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to get integration")
	}

	return credential, nil
}
