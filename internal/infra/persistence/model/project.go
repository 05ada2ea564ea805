package model

import (
	"time"

	"freshware/internal/domain/entity"

	"github.com/google/uuid"
)

// ProjectModel is the GORM model for the projects table.
type ProjectModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	AccountID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Status    string    `gorm:"type:varchar(32);not null;index"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName specifies the table name for ProjectModel.
func (ProjectModel) TableName() string {
	return "projects"
}

// ToEntity converts the persistence model to a domain entity.
func (m *ProjectModel) ToEntity() *entity.Project {
	return &entity.Project{
		ID:        m.ID,
		AccountID: m.AccountID,
		Name:      m.Name,
		Status:    entity.ProjectStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromProjectEntity converts a domain entity to a persistence model.
func FromProjectEntity(project *entity.Project) *ProjectModel {
	return &ProjectModel{
		ID:        project.ID,
		AccountID: project.AccountID,
		Name:      project.Name,
		Status:    string(project.Status),
		CreatedAt: project.CreatedAt,
		UpdatedAt: project.UpdatedAt,
	}
}
