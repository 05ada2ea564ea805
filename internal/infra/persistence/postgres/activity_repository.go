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

// activityRepository implements repository.ActivityRepository using GORM.
type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository is the constructor for activityRepository.
func NewActivityRepository(db *gorm.DB) repository.ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Create(ctx context.Context, activity *entity.Activity) error {
	if err := r.db.WithContext(ctx).Create(model.FromActivityEntity(activity)).Error; err != nil {
		return errors.Wrap(err, "failed to create activity")
	}

	return nil
}

func (r *activityRepository) ListByAccount(ctx context.Context, accountID uuid.UUID, limit int) ([]*entity.Activity, error) {
	var rows []model.ActivityModel
	if err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list activities by account")
	}

	activities := make([]*entity.Activity, 0, len(rows))
	for i := range rows {
		activities = append(activities, rows[i].ToEntity())
	}

	return activities, nil
}
