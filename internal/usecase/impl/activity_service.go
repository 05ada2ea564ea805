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

const defaultActivityLimit = 50

// activityService implements the ActivityUsecase interface.
type activityService struct {
	activityRepo repository.ActivityRepository
	accountRepo  repository.AccountRepository
	logger       *slog.Logger
}

// ActivityServiceParams holds dependencies for activityService, injected by Fx.
type ActivityServiceParams struct {
	fx.In

	ActivityRepo repository.ActivityRepository
	AccountRepo  repository.AccountRepository
	Logger       *slog.Logger
}

// NewActivityService is the constructor for activityService.
func NewActivityService(params ActivityServiceParams) usecase.ActivityUsecase {
	return &activityService{
		activityRepo: params.ActivityRepo,
		accountRepo:  params.AccountRepo,
		logger:       params.Logger,
	}
}

func (srv *activityService) LogActivity(ctx context.Context, input usecase.LogActivityInput) (*entity.Activity, error) {
	if input.Body == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("activity body is required")
	}
	if !input.Kind.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown activity kind")
	}

	if _, err := srv.accountRepo.FindByID(ctx, input.AccountID); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to verify activity account")
	}

	activity := &entity.Activity{
		ID:        uuid.New(),
		AccountID: input.AccountID,
		UserID:    input.UserID,
		Kind:      input.Kind,
		Body:      input.Body,
		CreatedAt: time.Now(),
	}

	if err := srv.activityRepo.Create(ctx, activity); err != nil {
		return nil, errors.Wrap(err, "failed to log activity")
	}

	return activity, nil
}

func (srv *activityService) ListActivities(ctx context.Context, accountID uuid.UUID, limit int) ([]*entity.Activity, error) {
	if limit <= 0 || limit > defaultActivityLimit {
		limit = defaultActivityLimit
	}

	activities, err := srv.activityRepo.ListByAccount(ctx, accountID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list activities")
	}

	return activities, nil
}
