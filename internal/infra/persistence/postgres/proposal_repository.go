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

// proposalRepository implements repository.ProposalRepository using GORM.
type proposalRepository struct {
	db *gorm.DB
}

// NewProposalRepository is the constructor for proposalRepository.
func NewProposalRepository(db *gorm.DB) repository.ProposalRepository {
	return &proposalRepository{db: db}
}

func (r *proposalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Proposal, error) {
	var row model.ProposalModel
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProposalNotFound
		}

		return nil, errors.Wrap(err, "failed to find proposal by id")
	}

	return row.ToEntity(), nil
}

func (r *proposalRepository) Create(ctx context.Context, proposal *entity.Proposal) error {
	if err := r.db.WithContext(ctx).Create(model.FromProposalEntity(proposal)).Error; err != nil {
		return errors.Wrap(err, "failed to create proposal")
	}

	return nil
}

func (r *proposalRepository) Update(ctx context.Context, proposal *entity.Proposal) error {
	result := r.db.WithContext(ctx).
		Model(&model.ProposalModel{}).
		Where("id = ?", proposal.ID).
		Updates(model.FromProposalEntity(proposal))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update proposal")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProposalNotFound
	}

	return nil
}

func (r *proposalRepository) List(ctx context.Context, accountID *uuid.UUID) ([]*entity.Proposal, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if accountID != nil {
		query = query.Where("account_id = ?", *accountID)
	}

	var rows []model.ProposalModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list proposals")
	}

	proposals := make([]*entity.Proposal, 0, len(rows))
	for i := range rows {
		proposals = append(proposals, rows[i].ToEntity())
	}

	return proposals, nil
}
