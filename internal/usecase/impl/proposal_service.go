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

// proposalService implements the ProposalUsecase interface.
type proposalService struct {
	proposalRepo repository.ProposalRepository
	accountRepo  repository.AccountRepository
	logger       *slog.Logger
}

// ProposalServiceParams holds dependencies for proposalService, injected by Fx.
type ProposalServiceParams struct {
	fx.In

	ProposalRepo repository.ProposalRepository
	AccountRepo  repository.AccountRepository
	Logger       *slog.Logger
}

// NewProposalService is the constructor for proposalService.
func NewProposalService(params ProposalServiceParams) usecase.ProposalUsecase {
	return &proposalService{
		proposalRepo: params.ProposalRepo,
		accountRepo:  params.AccountRepo,
		logger:       params.Logger,
	}
}

func (srv *proposalService) CreateProposal(ctx context.Context, input usecase.CreateProposalInput) (*entity.Proposal, error) {
	if input.Title == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("proposal title is required")
	}
	if input.AmountCents < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("amount cannot be negative")
	}

	if _, err := srv.accountRepo.FindByID(ctx, input.AccountID); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to verify proposal account")
	}

	now := time.Now()
	proposal := &entity.Proposal{
		ID:            uuid.New(),
		AccountID:     input.AccountID,
		OpportunityID: input.OpportunityID,
		Title:         input.Title,
		Status:        entity.ProposalStatusDraft,
		AmountCents:   input.AmountCents,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := srv.proposalRepo.Create(ctx, proposal); err != nil {
		return nil, errors.Wrap(err, "failed to create proposal")
	}

	return proposal, nil
}

func (srv *proposalService) GetProposal(ctx context.Context, id uuid.UUID) (*entity.Proposal, error) {
	proposal, err := srv.proposalRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProposalNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to get proposal")
	}

	return proposal, nil
}

func (srv *proposalService) UpdateProposal(ctx context.Context, input usecase.UpdateProposalInput) (*entity.Proposal, error) {
	if !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown proposal status")
	}
	if input.AmountCents < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("amount cannot be negative")
	}

	proposal, err := srv.proposalRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrProposalNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to load proposal for update")
	}

	proposal.Title = input.Title
	proposal.Status = input.Status
	proposal.AmountCents = input.AmountCents
	proposal.UpdatedAt = time.Now()

	if err := srv.proposalRepo.Update(ctx, proposal); err != nil {
		return nil, errors.Wrap(err, "failed to update proposal")
	}

	return proposal, nil
}

func (srv *proposalService) ListProposals(ctx context.Context, accountID *uuid.UUID) ([]*entity.Proposal, error) {
	proposals, err := srv.proposalRepo.List(ctx, accountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list proposals")
	}

	return proposals, nil
}
