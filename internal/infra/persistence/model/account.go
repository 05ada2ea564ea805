package model

import (
	"time"

	"freshware/internal/domain/entity"

	"github.com/google/uuid"
)

// AccountModel is the GORM model for the accounts table.
type AccountModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name      string     `gorm:"type:varchar(255);not null"`
	Industry  string     `gorm:"type:varchar(255)"`
	Website   string     `gorm:"type:varchar(255)"`
	Status    string     `gorm:"type:varchar(32);not null;index"`
	OwnerID   *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName specifies the table name for AccountModel.
func (AccountModel) TableName() string {
	return "accounts"
}

// ToEntity converts the persistence model to a domain entity.
func (m *AccountModel) ToEntity() *entity.Account {
	return &entity.Account{
		ID:        m.ID,
		Name:      m.Name,
		Industry:  m.Industry,
		Website:   m.Website,
		Status:    entity.AccountStatus(m.Status),
		OwnerID:   m.OwnerID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromAccountEntity converts a domain entity to a persistence model.
func FromAccountEntity(account *entity.Account) *AccountModel {
	return &AccountModel{
		ID:        account.ID,
		Name:      account.Name,
		Industry:  account.Industry,
		Website:   account.Website,
		Status:    string(account.Status),
		OwnerID:   account.OwnerID,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}
