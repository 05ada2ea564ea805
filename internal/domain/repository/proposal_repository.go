// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"freshware/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProposalNotFound is returned when a proposal is not found.
var ErrProposalNotFound = errors.New("proposal not found")

// ProposalRepository defines the standard operations for proposal persistence.
type ProposalRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Proposal, error)
	Create(ctx context.Context, proposal *entity.Proposal) error
	Update(ctx context.Context, proposal *entity.Proposal) error
	List(ctx context.Context, accountID *uuid.UUID) ([]*entity.Proposal, error)
}
