package impl

import (
	"context"
	"log/slog"
	"time"

	"freshware/internal/domain/entity"
	domainerrors "freshware/internal/domain/errors"
	"freshware/internal/domain/repository"
	"freshware/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// taskService implements the TaskUsecase interface.
type taskService struct {
	taskRepo repository.TaskRepository
	logger   *slog.Logger
}

// TaskServiceParams holds dependencies for taskService, injected by Fx.
type TaskServiceParams struct {
	fx.In

	TaskRepo repository.TaskRepository
	Logger   *slog.Logger
}

// NewTaskService is the constructor for taskService.
func NewTaskService(params TaskServiceParams) usecase.TaskUsecase {
	return &taskService{taskRepo: params.TaskRepo, logger: params.Logger}
}

func (srv *taskService) CreateTask(ctx context.Context, input usecase.CreateTaskInput) (*entity.Task, error) {
	if input.Title == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("task title is required")
	}

	now := time.Now()
	task := &entity.Task{
		ID:          uuid.New(),
		AccountID:   input.AccountID,
		Title:       input.Title,
		Description: input.Description,
		Status:      entity.TaskStatusOpen,
		DueDate:     input.DueDate,
		AssigneeID:  input.AssigneeID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := srv.taskRepo.Create(ctx, task); err != nil {
		return nil, errors.Wrap(err, "failed to create task")
	}

	return task, nil
}

func (srv *taskService) GetTask(ctx context.Context, id uuid.UUID) (*entity.Task, error) {
	task, err := srv.taskRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to get task")
	}

	return task, nil
}

func (srv *taskService) UpdateTask(ctx context.Context, input usecase.UpdateTaskInput) (*entity.Task, error) {
	if !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown task status")
	}

	task, err := srv.taskRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to load task for update")
	}

	task.Title = input.Title
	task.Description = input.Description
	task.Status = input.Status
	task.DueDate = input.DueDate
	task.AssigneeID = input.AssigneeID
	task.UpdatedAt = time.Now()

	if err := srv.taskRepo.Update(ctx, task); err != nil {
		return nil, errors.Wrap(err, "failed to update task")
	}

	return task, nil
}

func (srv *taskService) DeleteTask(ctx context.Context, id uuid.UUID) error {
	if err := srv.taskRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return domainerrors.ErrNotFound
		}

		return errors.Wrap(err, "failed to delete task")
	}

	return nil
}

func (srv *taskService) ListTasks(ctx context.Context, accountID *uuid.UUID) ([]*entity.Task, error) {
	tasks, err := srv.taskRepo.List(ctx, accountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tasks")
	}

	return tasks, nil
}
