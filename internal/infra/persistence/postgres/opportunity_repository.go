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

// opportunityRepository implements repository.OpportunityRepository using GORM.
type opportunityRepository struct {
	db *gorm.DB
}

// NewOpportunityRepository is the constructor for opportunityRepository.
func NewOpportunityRepository(db *gorm.DB) repository.OpportunityRepository {
	return &opportunityRepository{db: db}
}

func (r *opportunityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Opportunity, error) {
	var row model.OpportunityModel
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOpportunityNotFound
		}

		return nil, errors.Wrap(err, "failed to find opportunity by id")
	}

	return row.ToEntity(), nil
}

func (r *opportunityRepository) Create(ctx context.Context, opp *entity.Opportunity) error {
	if err := r.db.WithContext(ctx).Create(model.FromOpportunityEntity(opp)).Error; err != nil {
		return errors.Wrap(err, "failed to create opportunity")
	}

	return nil
}

func (r *opportunityRepository) Update(ctx context.Context, opp *entity.Opportunity) error {
	result := r.db.WithContext(ctx).
		Model(&model.OpportunityModel{}).
		Where("id = ?", opp.ID).
		Updates(model.FromOpportunityEntity(opp))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update opportunity")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOpportunityNotFound
	}

	return nil
}

func (r *opportunityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.OpportunityModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete opportunity")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOpportunityNotFound
	}

	return nil
}

func (r *opportunityRepository) List(ctx context.Context, accountID *uuid.UUID) ([]*entity.Opportunity, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if accountID != nil {
		query = query.Where("account_id = ?", *accountID)
	}

	var rows []model.OpportunityModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list opportunities")
	}

	opps := make([]*entity.Opportunity, 0, len(rows))
	for i := range rows {
		opps = append(opps, rows[i].ToEntity())
	}

	return opps, nil
}

func (r *opportunityRepository) PipelineSummary(ctx context.Context) ([]repository.StageSummary, error) {
	var rows []struct {
		Stage       string
		Count       int64
		AmountCents int64
	}
	if err := r.db.WithContext(ctx).
		Model(&model.OpportunityModel{}).
		Select("stage, COUNT(*) AS count, COALESCE(SUM(amount_cents), 0) AS amount_cents").
		Group("stage").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate pipeline summary")
	}

	summaries := make([]repository.StageSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, repository.StageSummary{
			Stage:       entity.OpportunityStage(row.Stage),
			Count:       row.Count,
			AmountCents: row.AmountCents,
		})
	}

	return summaries, nil
}
