// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"freshware/internal/domain/entity"

	"github.com/google/uuid"
)

// LogActivityInput defines the data required to append an activity entry.
type LogActivityInput struct {
	AccountID uuid.UUID
	UserID    *uuid.UUID
	Kind      entity.ActivityKind
	Body      string
}

// ActivityUsecase defines the interface for the append-only account activity log.
type ActivityUsecase interface {
	LogActivity(ctx context.Context, input LogActivityInput) (*entity.Activity, error)
	ListActivities(ctx context.Context, accountID uuid.UUID, limit int) ([]*entity.Activity, error)
}
