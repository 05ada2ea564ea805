// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"freshware/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDiscoverySessionNotFound is returned when a discovery session is not found.
var ErrDiscoverySessionNotFound = errors.New("discovery session not found")

// DiscoverySessionRepository defines the standard operations for discovery session persistence.
type DiscoverySessionRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.DiscoverySession, error)
	Create(ctx context.Context, session *entity.DiscoverySession) error
	Update(ctx context.Context, session *entity.DiscoverySession) error
	List(ctx context.Context, accountID *uuid.UUID) ([]*entity.DiscoverySession, error)
}
