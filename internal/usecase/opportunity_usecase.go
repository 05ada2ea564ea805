// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"freshware/internal/domain/entity"
	"freshware/internal/domain/repository"

	"github.com/google/uuid"
)

// CreateOpportunityInput defines the data required to open an opportunity.
type CreateOpportunityInput struct {
	AccountID   uuid.UUID
	Name        string
	Stage       entity.OpportunityStage
	AmountCents int64
	CloseDate   *time.Time
	OwnerID     *uuid.UUID
}

// UpdateOpportunityInput defines the mutable fields of an opportunity.
type UpdateOpportunityInput struct {
	ID          uuid.UUID
	Name        string
	Stage       entity.OpportunityStage
	AmountCents int64
	CloseDate   *time.Time
	OwnerID     *uuid.UUID
}

// OpportunityUsecase defines the interface for pipeline management.
type OpportunityUsecase interface {
	CreateOpportunity(ctx context.Context, input CreateOpportunityInput) (*entity.Opportunity, error)
	GetOpportunity(ctx context.Context, id uuid.UUID) (*entity.Opportunity, error)
	UpdateOpportunity(ctx context.Context, input UpdateOpportunityInput) (*entity.Opportunity, error)
	DeleteOpportunity(ctx context.Context, id uuid.UUID) error
	ListOpportunities(ctx context.Context, accountID *uuid.UUID) ([]*entity.Opportunity, error)

	// PipelineSummary aggregates deal count and value per stage.
	PipelineSummary(ctx context.Context) ([]repository.StageSummary, error)
}
