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

// projectRepository implements repository.ProjectRepository using GORM.
type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository is the constructor for projectRepository.
func NewProjectRepository(db *gorm.DB) repository.ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	var row model.ProjectModel
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProjectNotFound
		}

		return nil, errors.Wrap(err, "failed to find project by id")
	}

	return row.ToEntity(), nil
}

func (r *projectRepository) Create(ctx context.Context, project *entity.Project) error {
	if err := r.db.WithContext(ctx).Create(model.FromProjectEntity(project)).Error; err != nil {
		return errors.Wrap(err, "failed to create project")
	}

	return nil
}

func (r *projectRepository) Update(ctx context.Context, project *entity.Project) error {
	result := r.db.WithContext(ctx).
		Model(&model.ProjectModel{}).
		Where("id = ?", project.ID).
		Updates(model.FromProjectEntity(project))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update project")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProjectNotFound
	}

	return nil
}

func (r *projectRepository) List(ctx context.Context, accountID *uuid.UUID) ([]*entity.Project, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if accountID != nil {
		query = query.Where("account_id = ?", *accountID)
	}

	var rows []model.ProjectModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list projects")
	}

	projects := make([]*entity.Project, 0, len(rows))
	for i := range rows {
		projects = append(projects, rows[i].ToEntity())
	}

	return projects, nil
}
