package model

import (
	"time"

	"freshware/internal/domain/entity"

	"github.com/google/uuid"
)

// AccessRequestModel is the GORM model for the access_requests table.
type AccessRequestModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Email      string     `gorm:"type:varchar(255);not null;index"`
	Name       string     `gorm:"type:varchar(255);not null"`
	Company    string     `gorm:"type:varchar(255)"`
	Message    string     `gorm:"type:text"`
	Status     string     `gorm:"type:varchar(32);not null;index"`
	ReviewedBy *uuid.UUID `gorm:"type:uuid"`
	CreatedAt  time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt  time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName specifies the table name for AccessRequestModel.
func (AccessRequestModel) TableName() string {
	return "access_requests"
}

// ToEntity converts the persistence model to a domain entity.
func (m *AccessRequestModel) ToEntity() *entity.AccessRequest {
	return &entity.AccessRequest{
		ID:         m.ID,
		Email:      m.Email,
		Name:       m.Name,
		Company:    m.Company,
		Message:    m.Message,
		Status:     entity.AccessRequestStatus(m.Status),
		ReviewedBy: m.ReviewedBy,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// FromAccessRequestEntity converts a domain entity to a persistence model.
func FromAccessRequestEntity(request *entity.AccessRequest) *AccessRequestModel {
	return &AccessRequestModel{
		ID:         request.ID,
		Email:      request.Email,
		Name:       request.Name,
		Company:    request.Company,
		Message:    request.Message,
		Status:     string(request.Status),
		ReviewedBy: request.ReviewedBy,
		CreatedAt:  request.CreatedAt,
		UpdatedAt:  request.UpdatedAt,
	}
}
