package model

import (
	"time"

	"freshware/internal/domain/entity"

	"github.com/google/uuid"
)

// MeetingModel is the GORM model for the meetings table. ExternalID carries a
// unique index so webhook redelivery resolves to an upsert instead of a
// duplicate row.
type MeetingModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	AccountID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ContactName  string    `gorm:"type:varchar(255);not null"`
	ContactEmail *string   `gorm:"type:varchar(255)"`
	ScheduledAt  time.Time `gorm:"not null;index"`
	EndsAt       *time.Time
	Status       string    `gorm:"type:varchar(32);not null;index"`
	Source       string    `gorm:"type:varchar(64);not null"`
	ExternalID   *string   `gorm:"type:varchar(255);uniqueIndex"`
	CreatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName specifies the table name for MeetingModel.
func (MeetingModel) TableName() string {
	return "meetings"
}

// ToEntity converts the persistence model to a domain entity.
func (m *MeetingModel) ToEntity() *entity.Meeting {
	return &entity.Meeting{
		ID:           m.ID,
		AccountID:    m.AccountID,
		ContactName:  m.ContactName,
		ContactEmail: m.ContactEmail,
		ScheduledAt:  m.ScheduledAt,
		EndsAt:       m.EndsAt,
		Status:       entity.MeetingStatus(m.Status),
		Source:       m.Source,
		ExternalID:   m.ExternalID,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FromMeetingEntity converts a domain entity to a persistence model.
func FromMeetingEntity(meeting *entity.Meeting) *MeetingModel {
	return &MeetingModel{
		ID:           meeting.ID,
		AccountID:    meeting.AccountID,
		ContactName:  meeting.ContactName,
		ContactEmail: meeting.ContactEmail,
		ScheduledAt:  meeting.ScheduledAt,
		EndsAt:       meeting.EndsAt,
		Status:       string(meeting.Status),
		Source:       meeting.Source,
		ExternalID:   meeting.ExternalID,
		CreatedAt:    meeting.CreatedAt,
		UpdatedAt:    meeting.UpdatedAt,
	}
}
