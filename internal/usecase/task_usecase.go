// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"freshware/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateTaskInput defines the data required to create a task.
type CreateTaskInput struct {
	AccountID   *uuid.UUID
	Title       string
	Description string
	DueDate     *time.Time
	AssigneeID  *uuid.UUID
}

// UpdateTaskInput defines the mutable fields of a task.
type UpdateTaskInput struct {
	ID          uuid.UUID
	Title       string
	Description string
	Status      entity.TaskStatus
	DueDate     *time.Time
	AssigneeID  *uuid.UUID
}

// TaskUsecase defines the interface for task management.
type TaskUsecase interface {
	CreateTask(ctx context.Context, input CreateTaskInput) (*entity.Task, error)
	GetTask(ctx context.Context, id uuid.UUID) (*entity.Task, error)
	UpdateTask(ctx context.Context, input UpdateTaskInput) (*entity.Task, error)
	DeleteTask(ctx context.Context, id uuid.UUID) error
	ListTasks(ctx context.Context, accountID *uuid.UUID) ([]*entity.Task, error)
}
