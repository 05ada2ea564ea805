// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"freshware/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrMeetingNotFound is returned when a meeting is not found.
var ErrMeetingNotFound = errors.New("meeting not found")

// MeetingRepository defines the standard operations for meeting persistence.
type MeetingRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Meeting, error)
	Create(ctx context.Context, meeting *entity.Meeting) error
	Update(ctx context.Context, meeting *entity.Meeting) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, accountID *uuid.UUID) ([]*entity.Meeting, error)

	// UpsertByExternalID atomically inserts or updates a provider-sourced
	// meeting keyed by its unique external identifier. This must be a single
	// native upsert statement so concurrent webhook redeliveries converge to
	// one row (last write wins) without read-modify-write races.
	UpsertByExternalID(ctx context.Context, meeting *entity.Meeting) error

	// CountScheduledBetween counts meetings with status "scheduled" in a time
	// window, feeding the KPI dashboard.
	CountScheduledBetween(ctx context.Context, from, to time.Time) (int64, error)
}
