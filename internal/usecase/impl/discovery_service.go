package impl

import (
	"context"
	"log/slog"
	"time"

	"freshware/internal/domain/entity"
	domainerrors "freshware/internal/domain/errors"
	"freshware/internal/domain/repository"
	"freshware/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// discoveryService implements the DiscoveryUsecase interface.
type discoveryService struct {
	discoveryRepo repository.DiscoverySessionRepository
	accountRepo   repository.AccountRepository
	logger        *slog.Logger
}

// DiscoveryServiceParams holds dependencies for discoveryService, injected by Fx.
type DiscoveryServiceParams struct {
	fx.In

	DiscoveryRepo repository.DiscoverySessionRepository
	AccountRepo   repository.AccountRepository
	Logger        *slog.Logger
}

// NewDiscoveryService is the constructor for discoveryService.
func NewDiscoveryService(params DiscoveryServiceParams) usecase.DiscoveryUsecase {
	return &discoveryService{
		discoveryRepo: params.DiscoveryRepo,
		accountRepo:   params.AccountRepo,
		logger:        params.Logger,
	}
}

func (srv *discoveryService) CreateDiscoverySession(ctx context.Context, input usecase.CreateDiscoverySessionInput) (*entity.DiscoverySession, error) {
	if input.ScheduledAt.IsZero() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("scheduled time is required")
	}

	if _, err := srv.accountRepo.FindByID(ctx, input.AccountID); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to verify discovery session account")
	}

	now := time.Now()
	session := &entity.DiscoverySession{
		ID:          uuid.New(),
		AccountID:   input.AccountID,
		ContactID:   input.ContactID,
		ScheduledAt: input.ScheduledAt,
		Notes:       input.Notes,
		Status:      entity.DiscoveryStatusPlanned,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := srv.discoveryRepo.Create(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to create discovery session")
	}

	return session, nil
}

func (srv *discoveryService) GetDiscoverySession(ctx context.Context, id uuid.UUID) (*entity.DiscoverySession, error) {
	session, err := srv.discoveryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDiscoverySessionNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to get discovery session")
	}

	return session, nil
}

func (srv *discoveryService) UpdateDiscoverySession(ctx context.Context, input usecase.UpdateDiscoverySessionInput) (*entity.DiscoverySession, error) {
	if !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown discovery session status")
	}

	session, err := srv.discoveryRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrDiscoverySessionNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to load discovery session for update")
	}

	session.ScheduledAt = input.ScheduledAt
	session.Notes = input.Notes
	session.Status = input.Status
	session.UpdatedAt = time.Now()

	if err := srv.discoveryRepo.Update(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to update discovery session")
	}

	return session, nil
}

func (srv *discoveryService) ListDiscoverySessions(ctx context.Context, accountID *uuid.UUID) ([]*entity.DiscoverySession, error) {
	sessions, err := srv.discoveryRepo.List(ctx, accountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list discovery sessions")
	}

	return sessions, nil
}
