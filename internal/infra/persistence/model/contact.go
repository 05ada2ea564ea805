package model

import (
	"time"

	"freshware/internal/domain/entity"

	"github.com/google/uuid"
)

// ContactModel is the GORM model for the contacts table.
type ContactModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	AccountID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Email     string    `gorm:"type:varchar(255)"`
	Phone     string    `gorm:"type:varchar(64)"`
	Title     string    `gorm:"type:varchar(255)"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName specifies the table name for ContactModel.
func (ContactModel) TableName() string {
	return "contacts"
}

// ToEntity converts the persistence model to a domain entity.
func (m *ContactModel) ToEntity() *entity.Contact {
	return &entity.Contact{
		ID:        m.ID,
		AccountID: m.AccountID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Title:     m.Title,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromContactEntity converts a domain entity to a persistence model.
func FromContactEntity(contact *entity.Contact) *ContactModel {
	return &ContactModel{
		ID:        contact.ID,
		AccountID: contact.AccountID,
		Name:      contact.Name,
		Email:     contact.Email,
		Phone:     contact.Phone,
		Title:     contact.Title,
		CreatedAt: contact.CreatedAt,
		UpdatedAt: contact.UpdatedAt,
	}
}
