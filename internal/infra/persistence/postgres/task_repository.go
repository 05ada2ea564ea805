package postgres

import (
	"context"

	"freshware/internal/domain/entity"
	"freshware/internal/domain/repository"
	"freshware/internal/errors"
	"freshware/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// taskRepository implements repository.TaskRepository using GORM.
type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository is the constructor for taskRepository.
func NewTaskRepository(db *gorm.DB) repository.TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Task, error) {
	var row model.TaskModel
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTaskNotFound
		}

		return nil, errors.Wrap(err, "failed to find task by id")
	}

	return row.ToEntity(), nil
}

func (r *taskRepository) Create(ctx context.Context, task *entity.Task) error {
	if err := r.db.WithContext(ctx).Create(model.FromTaskEntity(task)).Error; err != nil {
		return errors.Wrap(err, "failed to create task")
	}

	return nil
}

func (r *taskRepository) Update(ctx context.Context, task *entity.Task) error {
	result := r.db.WithContext(ctx).
		Model(&model.TaskModel{}).
		Where("id = ?", task.ID).
		Updates(model.FromTaskEntity(task))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update task")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTaskNotFound
	}

	return nil
}

func (r *taskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.TaskModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete task")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTaskNotFound
	}

	return nil
}

func (r *taskRepository) List(ctx context.Context, accountID *uuid.UUID) ([]*entity.Task, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if accountID != nil {
		query = query.Where("account_id = ?", *accountID)
	}

	var rows []model.TaskModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list tasks")
	}

	tasks := make([]*entity.Task, 0, len(rows))
	for i := range rows {
		tasks = append(tasks, rows[i].ToEntity())
	}

	return tasks, nil
}

func (r *taskRepository) CountByStatus(ctx context.Context) (map[entity.TaskStatus]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	if err := r.db.WithContext(ctx).
		Model(&model.TaskModel{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count tasks by status")
	}

	counts := make(map[entity.TaskStatus]int64, len(rows))
	for _, row := range rows {
		counts[entity.TaskStatus(row.Status)] = row.Count
	}

	return counts, nil
}
