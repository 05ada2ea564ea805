// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"freshware/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTaskNotFound is returned when a task is not found.
var ErrTaskNotFound = errors.New("task not found")

// TaskRepository defines the standard operations for task persistence.
type TaskRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Task, error)
	Create(ctx context.Context, task *entity.Task) error
	Update(ctx context.Context, task *entity.Task) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, accountID *uuid.UUID) ([]*entity.Task, error)

	// CountByStatus returns task counts per status, feeding the KPI dashboard.
	CountByStatus(ctx context.Context) (map[entity.TaskStatus]int64, error)
}
