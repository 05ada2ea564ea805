// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"freshware/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateProjectInput defines the data required to open a delivery project.
type CreateProjectInput struct {
	AccountID uuid.UUID
	Name      string
}

// UpdateProjectInput defines the mutable fields of a project.
type UpdateProjectInput struct {
	ID     uuid.UUID
	Name   string
	Status entity.ProjectStatus
}

// ProjectUsecase defines the interface for delivery project management.
type ProjectUsecase interface {
	CreateProject(ctx context.Context, input CreateProjectInput) (*entity.Project, error)
	GetProject(ctx context.Context, id uuid.UUID) (*entity.Project, error)
	UpdateProject(ctx context.Context, input UpdateProjectInput) (*entity.Project, error)
	ListProjects(ctx context.Context, accountID *uuid.UUID) ([]*entity.Project, error)
}
