package postgres

import (
	"context"
	"time"

	"freshware/internal/domain/entity"
	"freshware/internal/domain/repository"
	"freshware/internal/errors"
	"freshware/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// meetingRepository implements repository.MeetingRepository using GORM.
type meetingRepository struct {
	db *gorm.DB
}

// NewMeetingRepository is the constructor for meetingRepository.
func NewMeetingRepository(db *gorm.DB) repository.MeetingRepository {
	return &meetingRepository{db: db}
}

func (r *meetingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Meeting, error) {
	var row model.MeetingModel
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMeetingNotFound
		}

		return nil, errors.Wrap(err, "failed to find meeting by id")
	}

	return row.ToEntity(), nil
}

func (r *meetingRepository) Create(ctx context.Context, meeting *entity.Meeting) error {
	if err := r.db.WithContext(ctx).Create(model.FromMeetingEntity(meeting)).Error; err != nil {
		return errors.Wrap(err, "failed to create meeting")
	}

	return nil
}

func (r *meetingRepository) Update(ctx context.Context, meeting *entity.Meeting) error {
	result := r.db.WithContext(ctx).
		Model(&model.MeetingModel{}).
		Where("id = ?", meeting.ID).
		Updates(model.FromMeetingEntity(meeting))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update meeting")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMeetingNotFound
	}

	return nil
}

func (r *meetingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.MeetingModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete meeting")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMeetingNotFound
	}

	return nil
}

func (r *meetingRepository) List(ctx context.Context, accountID *uuid.UUID) ([]*entity.Meeting, error) {
	query := r.db.WithContext(ctx).Order("scheduled_at DESC")
	if accountID != nil {
		query = query.Where("account_id = ?", *accountID)
	}

	var rows []model.MeetingModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list meetings")
	}

	meetings := make([]*entity.Meeting, 0, len(rows))
	for i := range rows {
		meetings = append(meetings, rows[i].ToEntity())
	}

	return meetings, nil
}

// UpsertByExternalID relies on the unique index on external_id: a single
// INSERT ... ON CONFLICT DO UPDATE, so concurrent redeliveries of the same
// booking converge to one row with last-write-wins semantics.
func (r *meetingRepository) UpsertByExternalID(ctx context.Context, meeting *entity.Meeting) error {
	row := model.FromMeetingEntity(meeting)
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "external_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"account_id",
				"contact_name",
				"contact_email",
				"scheduled_at",
				"ends_at",
				"status",
				"source",
				"updated_at",
			}),
		}).
		Create(row).Error; err != nil {
		return errors.Wrap(err, "failed to upsert meeting by external id")
	}

	return nil
}

func (r *meetingRepository) CountScheduledBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&model.MeetingModel{}).
		Where("status = ? AND scheduled_at >= ? AND scheduled_at < ?", string(entity.MeetingStatusScheduled), from, to).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count scheduled meetings")
	}

	return count, nil
}
