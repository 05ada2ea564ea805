// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"freshware/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateProposalInput defines the data required to draft a proposal.
type CreateProposalInput struct {
	AccountID     uuid.UUID
	OpportunityID *uuid.UUID
	Title         string
	AmountCents   int64
}

// UpdateProposalInput defines the mutable fields of a proposal.
type UpdateProposalInput struct {
	ID          uuid.UUID
	Title       string
	Status      entity.ProposalStatus
	AmountCents int64
}

// ProposalUsecase defines the interface for proposal management.
type ProposalUsecase interface {
	CreateProposal(ctx context.Context, input CreateProposalInput) (*entity.Proposal, error)
	GetProposal(ctx context.Context, id uuid.UUID) (*entity.Proposal, error)
	UpdateProposal(ctx context.Context, input UpdateProposalInput) (*entity.Proposal, error)
	ListProposals(ctx context.Context, accountID *uuid.UUID) ([]*entity.Proposal, error)
}
