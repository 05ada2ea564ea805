// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"freshware/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateMeetingInput defines the data required to record a meeting manually.
type CreateMeetingInput struct {
	AccountID    uuid.UUID
	ContactName  string
	ContactEmail *string
	ScheduledAt  time.Time
	EndsAt       *time.Time
}

// UpdateMeetingInput defines the mutable fields of a meeting.
type UpdateMeetingInput struct {
	ID           uuid.UUID
	ContactName  string
	ContactEmail *string
	ScheduledAt  time.Time
	EndsAt       *time.Time
	Status       entity.MeetingStatus
}

// MeetingUsecase defines the interface for manual meeting management.
// Provider-sourced meetings arrive through WebhookUsecase instead.
type MeetingUsecase interface {
	CreateMeeting(ctx context.Context, input CreateMeetingInput) (*entity.Meeting, error)
	GetMeeting(ctx context.Context, id uuid.UUID) (*entity.Meeting, error)
	UpdateMeeting(ctx context.Context, input UpdateMeetingInput) (*entity.Meeting, error)
	DeleteMeeting(ctx context.Context, id uuid.UUID) error
	ListMeetings(ctx context.Context, accountID *uuid.UUID) ([]*entity.Meeting, error)
}
