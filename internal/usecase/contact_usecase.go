// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"freshware/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateContactInput defines the data required to create a contact.
type CreateContactInput struct {
	AccountID uuid.UUID
	Name      string
	Email     string
	Phone     string
	Title     string
}

// UpdateContactInput defines the mutable fields of a contact.
type UpdateContactInput struct {
	ID    uuid.UUID
	Name  string
	Email string
	Phone string
	Title string
}

// ContactUsecase defines the interface for contact management.
type ContactUsecase interface {
	CreateContact(ctx context.Context, input CreateContactInput) (*entity.Contact, error)
	GetContact(ctx context.Context, id uuid.UUID) (*entity.Contact, error)
	UpdateContact(ctx context.Context, input UpdateContactInput) (*entity.Contact, error)
	DeleteContact(ctx context.Context, id uuid.UUID) error
	ListContacts(ctx context.Context, accountID *uuid.UUID) ([]*entity.Contact, error)
}
