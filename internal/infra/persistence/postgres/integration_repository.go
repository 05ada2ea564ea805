package postgres

import (
	"context"

	"freshware/internal/domain/entity"
	"freshware/internal/domain/repository"
	"freshware/internal/errors"
	"freshware/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// integrationRepository implements repository.IntegrationRepository using GORM.
type integrationRepository struct {
	db *gorm.DB
}

// NewIntegrationRepository is the constructor for integrationRepository.
func NewIntegrationRepository(db *gorm.DB) repository.IntegrationRepository {
	return &integrationRepository{db: db}
}

func (r *integrationRepository) FindByAccountAndProvider(ctx context.Context, accountID uuid.UUID, provider string) (*entity.IntegrationCredential, error) {
	var row model.IntegrationCredentialModel
	if err := r.db.WithContext(ctx).
		First(&row, "account_id = ? AND provider = ?", accountID, provider).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIntegrationNotFound
		}

		return nil, errors.Wrap(err, "failed to find integration credential")
	}

	return row.ToEntity(), nil
}

// Upsert targets the composite unique index on (account_id, provider).
func (r *integrationRepository) Upsert(ctx context.Context, credential *entity.IntegrationCredential) error {
	row := model.FromIntegrationCredentialEntity(credential)
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "account_id"}, {Name: "provider"}},
			DoUpdates: clause.AssignmentColumns([]string{"secret", "status", "updated_at"}),
		}).
		Create(row).Error; err != nil {
		return errors.Wrap(err, "failed to upsert integration credential")
	}

	return nil
}
