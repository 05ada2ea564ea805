package model

import (
	"time"

	"freshware/internal/domain/entity"

	"github.com/google/uuid"
)

// OpportunityModel is the GORM model for the opportunities table.
type OpportunityModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	AccountID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	Name        string     `gorm:"type:varchar(255);not null"`
	Stage       string     `gorm:"type:varchar(32);not null;index"`
	AmountCents int64      `gorm:"not null;default:0"`
	CloseDate   *time.Time `gorm:"type:date"`
	OwnerID     *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt   time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt   time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName specifies the table name for OpportunityModel.
func (OpportunityModel) TableName() string {
	return "opportunities"
}

// ToEntity converts the persistence model to a domain entity.
func (m *OpportunityModel) ToEntity() *entity.Opportunity {
	return &entity.Opportunity{
		ID:          m.ID,
		AccountID:   m.AccountID,
		Name:        m.Name,
		Stage:       entity.OpportunityStage(m.Stage),
		AmountCents: m.AmountCents,
		CloseDate:   m.CloseDate,
		OwnerID:     m.OwnerID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FromOpportunityEntity converts a domain entity to a persistence model.
func FromOpportunityEntity(opp *entity.Opportunity) *OpportunityModel {
	return &OpportunityModel{
		ID:          opp.ID,
		AccountID:   opp.AccountID,
		Name:        opp.Name,
		Stage:       string(opp.Stage),
		AmountCents: opp.AmountCents,
		CloseDate:   opp.CloseDate,
		OwnerID:     opp.OwnerID,
		CreatedAt:   opp.CreatedAt,
		UpdatedAt:   opp.UpdatedAt,
	}
}
