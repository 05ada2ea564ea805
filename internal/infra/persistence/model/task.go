package model

import (
	"time"

	"freshware/internal/domain/entity"

	"github.com/google/uuid"
)

// TaskModel is the GORM model for the tasks table.
type TaskModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	AccountID   *uuid.UUID `gorm:"type:uuid;index"`
	Title       string     `gorm:"type:varchar(255);not null"`
	Description string     `gorm:"type:text"`
	Status      string     `gorm:"type:varchar(32);not null;index"`
	DueDate     *time.Time `gorm:"type:date"`
	AssigneeID  *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt   time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt   time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName specifies the table name for TaskModel.
func (TaskModel) TableName() string {
	return "tasks"
}

// ToEntity converts the persistence model to a domain entity.
func (m *TaskModel) ToEntity() *entity.Task {
	return &entity.Task{
		ID:          m.ID,
		AccountID:   m.AccountID,
		Title:       m.Title,
		Description: m.Description,
		Status:      entity.TaskStatus(m.Status),
		DueDate:     m.DueDate,
		AssigneeID:  m.AssigneeID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FromTaskEntity converts a domain entity to a persistence model.
func FromTaskEntity(task *entity.Task) *TaskModel {
	return &TaskModel{
		ID:          task.ID,
		AccountID:   task.AccountID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		DueDate:     task.DueDate,
		AssigneeID:  task.AssigneeID,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}
