// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"freshware/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateDiscoverySessionInput defines the data required to plan a discovery session.
type CreateDiscoverySessionInput struct {
	AccountID   uuid.UUID
	ContactID   *uuid.UUID
	ScheduledAt time.Time
	Notes       string
}

// UpdateDiscoverySessionInput defines the mutable fields of a discovery session.
type UpdateDiscoverySessionInput struct {
	ID          uuid.UUID
	ScheduledAt time.Time
	Notes       string
	Status      entity.DiscoveryStatus
}

// DiscoveryUsecase defines the interface for discovery session management.
type DiscoveryUsecase interface {
	CreateDiscoverySession(ctx context.Context, input CreateDiscoverySessionInput) (*entity.DiscoverySession, error)
	GetDiscoverySession(ctx context.Context, id uuid.UUID) (*entity.DiscoverySession, error)
	UpdateDiscoverySession(ctx context.Context, input UpdateDiscoverySessionInput) (*entity.DiscoverySession, error)
	ListDiscoverySessions(ctx context.Context, accountID *uuid.UUID) ([]*entity.DiscoverySession, error)
}
