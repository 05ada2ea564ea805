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
)

// sessionRepository implements repository.SessionRepository using GORM.
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	if err := r.db.WithContext(ctx).Create(model.FromSessionEntity(session)).Error; err != nil {
		return errors.Wrap(err, "failed to create session")
	}

	return nil
}

func (r *sessionRepository) FindByTokenHash(ctx context.Context, hash string) (*entity.Session, error) {
	var row model.SessionModel
	if err := r.db.WithContext(ctx).First(&row, "token_hash = ?", hash).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find session by token hash")
	}

	session := row.ToEntity()
	if session.Expired(time.Now()) {
		return nil, repository.ErrSessionExpired
	}

	return session, nil
}

func (r *sessionRepository) DeleteByTokenHash(ctx context.Context, hash string) error {
	if err := r.db.WithContext(ctx).
		Delete(&model.SessionModel{}, "token_hash = ?", hash).Error; err != nil {
		return errors.Wrap(err, "failed to delete session by token hash")
	}

	return nil
}

func (r *sessionRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	if err := r.db.WithContext(ctx).
		Delete(&model.SessionModel{}, "user_id = ?", userID).Error; err != nil {
		return errors.Wrap(err, "failed to delete sessions by user id")
	}

	return nil
}

func (r *sessionRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&model.SessionModel{}).
		Where("user_id = ? AND expires_at > ?", userID, time.Now()).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count sessions by user id")
	}

	return count, nil
}
