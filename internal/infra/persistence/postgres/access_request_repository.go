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

// accessRequestRepository implements repository.AccessRequestRepository using GORM.
type accessRequestRepository struct {
	db *gorm.DB
}

// NewAccessRequestRepository is the constructor for accessRequestRepository.
func NewAccessRequestRepository(db *gorm.DB) repository.AccessRequestRepository {
	return &accessRequestRepository{db: db}
}

func (r *accessRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AccessRequest, error) {
	var row model.AccessRequestModel
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccessRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find access request by id")
	}

	return row.ToEntity(), nil
}

func (r *accessRequestRepository) Create(ctx context.Context, request *entity.AccessRequest) error {
	if err := r.db.WithContext(ctx).Create(model.FromAccessRequestEntity(request)).Error; err != nil {
		return errors.Wrap(err, "failed to create access request")
	}

	return nil
}

func (r *accessRequestRepository) Update(ctx context.Context, request *entity.AccessRequest) error {
	result := r.db.WithContext(ctx).
		Model(&model.AccessRequestModel{}).
		Where("id = ?", request.ID).
		Updates(model.FromAccessRequestEntity(request))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update access request")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccessRequestNotFound
	}

	return nil
}

func (r *accessRequestRepository) List(ctx context.Context, status *entity.AccessRequestStatus) ([]*entity.AccessRequest, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if status != nil {
		query = query.Where("status = ?", string(*status))
	}

	var rows []model.AccessRequestModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list access requests")
	}

	requests := make([]*entity.AccessRequest, 0, len(rows))
	for i := range rows {
		requests = append(requests, rows[i].ToEntity())
	}

	return requests, nil
}
