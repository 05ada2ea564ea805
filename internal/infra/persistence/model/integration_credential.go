package model

import (
	"time"

	"freshware/internal/domain/entity"

	"github.com/google/uuid"
)

// IntegrationCredentialModel is the GORM model for the integration_credentials
// table. The composite unique index enforces one credential per account and
// provider pair.
type IntegrationCredentialModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	AccountID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_integration_account_provider"`
	Provider  string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_integration_account_provider"`
	Secret    string    `gorm:"type:varchar(255);not null"`
	Status    string    `gorm:"type:varchar(32);not null"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName specifies the table name for IntegrationCredentialModel.
func (IntegrationCredentialModel) TableName() string {
	return "integration_credentials"
}

// ToEntity converts the persistence model to a domain entity.
func (m *IntegrationCredentialModel) ToEntity() *entity.IntegrationCredential {
	return &entity.IntegrationCredential{
		ID:        m.ID,
		AccountID: m.AccountID,
		Provider:  m.Provider,
		Secret:    m.Secret,
		Status:    entity.IntegrationStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromIntegrationCredentialEntity converts a domain entity to a persistence model.
func FromIntegrationCredentialEntity(credential *entity.IntegrationCredential) *IntegrationCredentialModel {
	return &IntegrationCredentialModel{
		ID:        credential.ID,
		AccountID: credential.AccountID,
		Provider:  credential.Provider,
		Secret:    credential.Secret,
		Status:    string(credential.Status),
		CreatedAt: credential.CreatedAt,
		UpdatedAt: credential.UpdatedAt,
	}
}
