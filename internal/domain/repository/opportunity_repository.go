// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"freshware/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOpportunityNotFound is returned when an opportunity is not found.
var ErrOpportunityNotFound = errors.New("opportunity not found")

// StageSummary is an aggregate row for the KPI dashboard: how many deals sit
// in a pipeline stage and what they are worth.
type StageSummary struct {
	Stage       entity.OpportunityStage
	Count       int64
	AmountCents int64
}

// OpportunityRepository defines the standard operations for opportunity persistence.
type OpportunityRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Opportunity, error)
	Create(ctx context.Context, opp *entity.Opportunity) error
	Update(ctx context.Context, opp *entity.Opportunity) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, accountID *uuid.UUID) ([]*entity.Opportunity, error)

	// PipelineSummary aggregates count and value per stage in one query.
	PipelineSummary(ctx context.Context) ([]StageSummary, error)
}
