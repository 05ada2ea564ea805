package model

import (
	"time"

	"freshware/internal/domain/entity"

	"github.com/google/uuid"
)

// DiscoverySessionModel is the GORM model for the discovery_sessions table.
type DiscoverySessionModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	AccountID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	ContactID   *uuid.UUID `gorm:"type:uuid;index"`
	ScheduledAt time.Time  `gorm:"not null"`
	Notes       string     `gorm:"type:text"`
	Status      string     `gorm:"type:varchar(32);not null;index"`
	CreatedAt   time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt   time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName specifies the table name for DiscoverySessionModel.
func (DiscoverySessionModel) TableName() string {
	return "discovery_sessions"
}

// ToEntity converts the persistence model to a domain entity.
func (m *DiscoverySessionModel) ToEntity() *entity.DiscoverySession {
	return &entity.DiscoverySession{
		ID:          m.ID,
		AccountID:   m.AccountID,
		ContactID:   m.ContactID,
		ScheduledAt: m.ScheduledAt,
		Notes:       m.Notes,
		Status:      entity.DiscoveryStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FromDiscoverySessionEntity converts a domain entity to a persistence model.
func FromDiscoverySessionEntity(session *entity.DiscoverySession) *DiscoverySessionModel {
	return &DiscoverySessionModel{
		ID:          session.ID,
		AccountID:   session.AccountID,
		ContactID:   session.ContactID,
		ScheduledAt: session.ScheduledAt,
		Notes:       session.Notes,
		Status:      string(session.Status),
		CreatedAt:   session.CreatedAt,
		UpdatedAt:   session.UpdatedAt,
	}
}
