// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"freshware/internal/domain/entity"

	"github.com/google/uuid"
)

// ActivityRepository defines the operations for the append-only activity log.
type ActivityRepository interface {
	Create(ctx context.Context, activity *entity.Activity) error

	// ListByAccount returns the newest activities for an account, capped at limit.
	ListByAccount(ctx context.Context, accountID uuid.UUID, limit int) ([]*entity.Activity, error)
}
