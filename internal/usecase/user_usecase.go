// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"freshware/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateUserInput defines the data required for an admin to create a user directly.
type CreateUserInput struct {
	Email     string
	Name      string
	Password  string
	Role      entity.Role
	AccountID *uuid.UUID // Required for client users.
}

// UpdateUserRoleInput defines a role change for an existing user.
type UpdateUserRoleInput struct {
	UserID uuid.UUID
	Role   entity.Role
}

// UserUsecase defines the interface for the admin user directory.
type UserUsecase interface {
	CreateUser(ctx context.Context, input CreateUserInput) (*entity.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)
	ListUsers(ctx context.Context) ([]*entity.User, error)

	// UpdateUserRole changes a user's role and revokes their live sessions so
	// the old role cannot keep acting through an existing sign-in.
	UpdateUserRole(ctx context.Context, input UpdateUserRoleInput) (*entity.User, error)
}
