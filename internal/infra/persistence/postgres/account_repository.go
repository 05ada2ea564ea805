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

// accountRepository implements repository.AccountRepository using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var row model.AccountModel
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	return row.ToEntity(), nil
}

func (r *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	if err := r.db.WithContext(ctx).Create(model.FromAccountEntity(account)).Error; err != nil {
		return errors.Wrap(err, "failed to create account")
	}

	return nil
}

func (r *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	result := r.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", account.ID).
		Updates(model.FromAccountEntity(account))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update account")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

func (r *accountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.AccountModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete account")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

func (r *accountRepository) List(ctx context.Context) ([]*entity.Account, error) {
	var rows []model.AccountModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	accounts := make([]*entity.Account, 0, len(rows))
	for i := range rows {
		accounts = append(accounts, rows[i].ToEntity())
	}

	return accounts, nil
}

func (r *accountRepository) CountByStatus(ctx context.Context) (map[entity.AccountStatus]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	if err := r.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count accounts by status")
	}

	counts := make(map[entity.AccountStatus]int64, len(rows))
	for _, row := range rows {
		counts[entity.AccountStatus(row.Status)] = row.Count
	}

	return counts, nil
}
