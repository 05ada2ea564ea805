// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"freshware/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is returned when an account is not found.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the standard operations for account (tenant) persistence.
type AccountRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)
	Create(ctx context.Context, account *entity.Account) error
	Update(ctx context.Context, account *entity.Account) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*entity.Account, error)

	// CountByStatus returns how many accounts sit in each lifecycle status,
	// feeding the KPI dashboard.
	CountByStatus(ctx context.Context) (map[entity.AccountStatus]int64, error)
}
