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

// opportunityService implements the OpportunityUsecase interface.
type opportunityService struct {
	oppRepo     repository.OpportunityRepository
	accountRepo repository.AccountRepository
	logger      *slog.Logger
}

// OpportunityServiceParams holds dependencies for opportunityService, injected by Fx.
type OpportunityServiceParams struct {
	fx.In

	OppRepo     repository.OpportunityRepository
	AccountRepo repository.AccountRepository
	Logger      *slog.Logger
}

// NewOpportunityService is the constructor for opportunityService.
func NewOpportunityService(params OpportunityServiceParams) usecase.OpportunityUsecase {
	return &opportunityService{
		oppRepo:     params.OppRepo,
		accountRepo: params.AccountRepo,
		logger:      params.Logger,
	}
}

func (srv *opportunityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *opportunityService) CreateOpportunity(ctx context.Context, input usecase.CreateOpportunityInput) (*entity.Opportunity, error) {
	if input.Name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("opportunity name is required")
	}
	if input.AmountCents < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("amount cannot be negative")
	}
	stage := input.Stage
	if stage == "" {
		stage = entity.StageLead
	}
	if !stage.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown pipeline stage")
	}

	if _, err := srv.accountRepo.FindByID(ctx, input.AccountID); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to verify opportunity account")
	}

	now := time.Now()
	opp := &entity.Opportunity{
		ID:          uuid.New(),
		AccountID:   input.AccountID,
		Name:        input.Name,
		Stage:       stage,
		AmountCents: input.AmountCents,
		CloseDate:   input.CloseDate,
		OwnerID:     input.OwnerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := srv.oppRepo.Create(ctx, opp); err != nil {
		return nil, errors.Wrap(err, "failed to create opportunity")
	}

	return opp, nil
}

func (srv *opportunityService) GetOpportunity(ctx context.Context, id uuid.UUID) (*entity.Opportunity, error) {
	opp, err := srv.oppRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOpportunityNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to get opportunity")
	}

	return opp, nil
}

func (srv *opportunityService) UpdateOpportunity(ctx context.Context, input usecase.UpdateOpportunityInput) (*entity.Opportunity, error) {
	if !input.Stage.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown pipeline stage")
	}
	if input.AmountCents < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("amount cannot be negative")
	}

	opp, err := srv.oppRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrOpportunityNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to load opportunity for update")
	}

	// Won and lost are terminal. Reopening a closed deal means creating a
	// new one, keeping the pipeline history honest.
	if !opp.Stage.Open() && input.Stage != opp.Stage {
		return nil, domainerrors.ErrConflict.WithDetails("closed opportunities cannot change stage")
	}

	if input.Stage != opp.Stage {
		srv.log(ctx).Info("Opportunity stage changed",
			slog.Any("opportunityID", opp.ID),
			slog.String("from", string(opp.Stage)),
			slog.String("to", string(input.Stage)))
	}

	opp.Name = input.Name
	opp.Stage = input.Stage
	opp.AmountCents = input.AmountCents
	opp.CloseDate = input.CloseDate
	opp.OwnerID = input.OwnerID
	opp.UpdatedAt = time.Now()

	if err := srv.oppRepo.Update(ctx, opp); err != nil {
		return nil, errors.Wrap(err, "failed to update opportunity")
	}

	return opp, nil
}

func (srv *opportunityService) DeleteOpportunity(ctx context.Context, id uuid.UUID) error {
	if err := srv.oppRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrOpportunityNotFound) {
			return domainerrors.ErrNotFound
		}

		return errors.Wrap(err, "failed to delete opportunity")
	}

	return nil
}

func (srv *opportunityService) ListOpportunities(ctx context.Context, accountID *uuid.UUID) ([]*entity.Opportunity, error) {
	opps, err := srv.oppRepo.List(ctx, accountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list opportunities")
	}

	return opps, nil
}

func (srv *opportunityService) PipelineSummary(ctx context.Context) ([]repository.StageSummary, error) {
	summary, err := srv.oppRepo.PipelineSummary(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate pipeline")
	}

	return summary, nil
}
