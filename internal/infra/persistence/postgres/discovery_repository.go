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

// discoverySessionRepository implements repository.DiscoverySessionRepository using GORM.
type discoverySessionRepository struct {
	db *gorm.DB
}

// NewDiscoverySessionRepository is the constructor for discoverySessionRepository.
func NewDiscoverySessionRepository(db *gorm.DB) repository.DiscoverySessionRepository {
	return &discoverySessionRepository{db: db}
}

func (r *discoverySessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.DiscoverySession, error) {
	var row model.DiscoverySessionModel
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDiscoverySessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find discovery session by id")
	}

	return row.ToEntity(), nil
}

func (r *discoverySessionRepository) Create(ctx context.Context, session *entity.DiscoverySession) error {
	if err := r.db.WithContext(ctx).Create(model.FromDiscoverySessionEntity(session)).Error; err != nil {
		return errors.Wrap(err, "failed to create discovery session")
	}

	return nil
}

func (r *discoverySessionRepository) Update(ctx context.Context, session *entity.DiscoverySession) error {
	result := r.db.WithContext(ctx).
		Model(&model.DiscoverySessionModel{}).
		Where("id = ?", session.ID).
		Updates(model.FromDiscoverySessionEntity(session))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update discovery session")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDiscoverySessionNotFound
	}

	return nil
}

func (r *discoverySessionRepository) List(ctx context.Context, accountID *uuid.UUID) ([]*entity.DiscoverySession, error) {
	query := r.db.WithContext(ctx).Order("scheduled_at DESC")
	if accountID != nil {
		query = query.Where("account_id = ?", *accountID)
	}

	var rows []model.DiscoverySessionModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list discovery sessions")
	}

	sessions := make([]*entity.DiscoverySession, 0, len(rows))
	for i := range rows {
		sessions = append(sessions, rows[i].ToEntity())
	}

	return sessions, nil
}
