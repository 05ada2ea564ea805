// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"freshware/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrContactNotFound is returned when a contact is not found.
var ErrContactNotFound = errors.New("contact not found")

// ContactRepository defines the standard operations for contact persistence.
type ContactRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Contact, error)
	Create(ctx context.Context, contact *entity.Contact) error
	Update(ctx context.Context, contact *entity.Contact) error
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns contacts, optionally filtered to one account.
	List(ctx context.Context, accountID *uuid.UUID) ([]*entity.Contact, error)
}
