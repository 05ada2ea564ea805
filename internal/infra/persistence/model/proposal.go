package model

import (
	"time"

	"freshware/internal/domain/entity"

	"github.com/google/uuid"
)

// ProposalModel is the GORM model for the proposals table.
type ProposalModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	AccountID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	OpportunityID *uuid.UUID `gorm:"type:uuid;index"`
	Title         string     `gorm:"type:varchar(255);not null"`
	Status        string     `gorm:"type:varchar(32);not null;index"`
	AmountCents   int64      `gorm:"not null;default:0"`
	CreatedAt     time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt     time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName specifies the table name for ProposalModel.
func (ProposalModel) TableName() string {
	return "proposals"
}

// ToEntity converts the persistence model to a domain entity.
func (m *ProposalModel) ToEntity() *entity.Proposal {
	return &entity.Proposal{
		ID:            m.ID,
		AccountID:     m.AccountID,
		OpportunityID: m.OpportunityID,
		Title:         m.Title,
		Status:        entity.ProposalStatus(m.Status),
		AmountCents:   m.AmountCents,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// FromProposalEntity converts a domain entity to a persistence model.
func FromProposalEntity(proposal *entity.Proposal) *ProposalModel {
	return &ProposalModel{
		ID:            proposal.ID,
		AccountID:     proposal.AccountID,
		OpportunityID: proposal.OpportunityID,
		Title:         proposal.Title,
		Status:        string(proposal.Status),
		AmountCents:   proposal.AmountCents,
		CreatedAt:     proposal.CreatedAt,
		UpdatedAt:     proposal.UpdatedAt,
	}
}
