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

// contactRepository implements repository.ContactRepository using GORM.
type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository is the constructor for contactRepository.
func NewContactRepository(db *gorm.DB) repository.ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Contact, error) {
	var row model.ContactModel
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrContactNotFound
		}

		return nil, errors.Wrap(err, "failed to find contact by id")
	}

	return row.ToEntity(), nil
}

func (r *contactRepository) Create(ctx context.Context, contact *entity.Contact) error {
	if err := r.db.WithContext(ctx).Create(model.FromContactEntity(contact)).Error; err != nil {
		return errors.Wrap(err, "failed to create contact")
	}

	return nil
}

func (r *contactRepository) Update(ctx context.Context, contact *entity.Contact) error {
	result := r.db.WithContext(ctx).
		Model(&model.ContactModel{}).
		Where("id = ?", contact.ID).
		Updates(model.FromContactEntity(contact))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update contact")
	}
	if result.RowsAffected == 0 {
		return repository.ErrContactNotFound
	}

	return nil
}

func (r *contactRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ContactModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete contact")
	}
	if result.RowsAffected == 0 {
		return repository.ErrContactNotFound
	}

	return nil
}

func (r *contactRepository) List(ctx context.Context, accountID *uuid.UUID) ([]*entity.Contact, error) {
	query := r.db.WithContext(ctx).Order("name ASC")
	if accountID != nil {
		query = query.Where("account_id = ?", *accountID)
	}

	var rows []model.ContactModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list contacts")
	}

	contacts := make([]*entity.Contact, 0, len(rows))
	for i := range rows {
		contacts = append(contacts, rows[i].ToEntity())
	}

	return contacts, nil
}
