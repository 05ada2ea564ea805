package model

import (
	"time"

	"freshware/internal/domain/entity"

	"github.com/google/uuid"
)

// ActivityModel is the GORM model for the activities table. Rows are
// append-only; there is no update path.
type ActivityModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	AccountID uuid.UUID  `gorm:"type:uuid;not null;index"`
	UserID    *uuid.UUID `gorm:"type:uuid;index"`
	Kind      string     `gorm:"type:varchar(32);not null"`
	Body      string     `gorm:"type:text;not null"`
	CreatedAt time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP;index"`
}

// TableName specifies the table name for ActivityModel.
func (ActivityModel) TableName() string {
	return "activities"
}

// ToEntity converts the persistence model to a domain entity.
func (m *ActivityModel) ToEntity() *entity.Activity {
	return &entity.Activity{
		ID:        m.ID,
		AccountID: m.AccountID,
		UserID:    m.UserID,
		Kind:      entity.ActivityKind(m.Kind),
		Body:      m.Body,
		CreatedAt: m.CreatedAt,
	}
}

// FromActivityEntity converts a domain entity to a persistence model.
func FromActivityEntity(activity *entity.Activity) *ActivityModel {
	return &ActivityModel{
		ID:        activity.ID,
		AccountID: activity.AccountID,
		UserID:    activity.UserID,
		Kind:      string(activity.Kind),
		Body:      activity.Body,
		CreatedAt: activity.CreatedAt,
	}
}
