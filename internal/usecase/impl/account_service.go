package impl

import (
	"context"
	"fmt"
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

// accountService implements the AccountUsecase interface.
type accountService struct {
	accountRepo  repository.AccountRepository
	activityRepo repository.ActivityRepository
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	AccountRepo  repository.AccountRepository
	ActivityRepo repository.ActivityRepository
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		accountRepo:  params.AccountRepo,
		activityRepo: params.ActivityRepo,
		logger:       params.Logger,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *accountService) CreateAccount(ctx context.Context, input usecase.CreateAccountInput) (*entity.Account, error) {
	if input.Name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("account name is required")
	}
	status := input.Status
	if status == "" {
		status = entity.AccountStatusProspect
	}
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown account status")
	}

	now := time.Now()
	account := &entity.Account{
		ID:        uuid.New(),
		Name:      input.Name,
		Industry:  input.Industry,
		Website:   input.Website,
		Status:    status,
		OwnerID:   input.OwnerID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := srv.accountRepo.Create(ctx, account); err != nil {
		return nil, errors.Wrap(err, "failed to create account")
	}

	srv.log(ctx).Info("Account created", slog.Any("accountID", account.ID), slog.String("name", account.Name))

	return account, nil
}

func (srv *accountService) GetAccount(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to get account")
	}

	return account, nil
}

func (srv *accountService) UpdateAccount(ctx context.Context, input usecase.UpdateAccountInput) (*entity.Account, error) {
	if !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown account status")
	}

	existing, err := srv.accountRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to load account for update")
	}

	statusChanged := existing.Status != input.Status

	existing.Name = input.Name
	existing.Industry = input.Industry
	existing.Website = input.Website
	existing.Status = input.Status
	existing.OwnerID = input.OwnerID
	existing.UpdatedAt = time.Now()

	if err := srv.accountRepo.Update(ctx, existing); err != nil {
		return nil, errors.Wrap(err, "failed to update account")
	}

	// Status transitions leave a trail in the activity log. Best effort: a
	// failed log entry does not undo the update.
	if statusChanged {
		entry := &entity.Activity{
			ID:        uuid.New(),
			AccountID: existing.ID,
			Kind:      entity.ActivityKindStatusChange,
			Body:      fmt.Sprintf("Status changed to %s", existing.Status),
			CreatedAt: time.Now(),
		}
		if err := srv.activityRepo.Create(ctx, entry); err != nil {
			srv.log(ctx).Warn("Failed to log account status change", slog.Any("accountID", existing.ID), slog.Any("error", err))
		}
	}

	return existing, nil
}

func (srv *accountService) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	if err := srv.accountRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domainerrors.ErrNotFound
		}

		return errors.Wrap(err, "failed to delete account")
	}

	srv.log(ctx).Info("Account deleted", slog.Any("accountID", id))

	return nil
}

func (srv *accountService) ListAccounts(ctx context.Context) ([]*entity.Account, error) {
	accounts, err := srv.accountRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	return accounts, nil
}
