// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"freshware/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateAccountInput defines the data required to create a customer account.
type CreateAccountInput struct {
	Name     string
	Industry string
	Website  string
	Status   entity.AccountStatus
	OwnerID  *uuid.UUID
}

// UpdateAccountInput defines the mutable fields of an account.
type UpdateAccountInput struct {
	ID       uuid.UUID
	Name     string
	Industry string
	Website  string
	Status   entity.AccountStatus
	OwnerID  *uuid.UUID
}

// AccountUsecase defines the interface for account (tenant) management.
type AccountUsecase interface {
	CreateAccount(ctx context.Context, input CreateAccountInput) (*entity.Account, error)
	GetAccount(ctx context.Context, id uuid.UUID) (*entity.Account, error)
	UpdateAccount(ctx context.Context, input UpdateAccountInput) (*entity.Account, error)
	DeleteAccount(ctx context.Context, id uuid.UUID) error
	ListAccounts(ctx context.Context) ([]*entity.Account, error)
}
