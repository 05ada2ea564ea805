// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"freshware/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrIntegrationNotFound is returned when no credential exists for an
// (account, provider) pair. Callers must not leak whether the account itself
// exists.
var ErrIntegrationNotFound = errors.New("integration credential not found")

// IntegrationRepository defines read access to tenant integration credentials.
// Credentials are created and mutated by the admin integration flow; webhook
// ingestion only ever reads them.
type IntegrationRepository interface {
	// FindByAccountAndProvider retrieves the single credential for the pair.
	FindByAccountAndProvider(ctx context.Context, accountID uuid.UUID, provider string) (*entity.IntegrationCredential, error)

	// Upsert creates or replaces the credential for its (account, provider) pair.
	Upsert(ctx context.Context, credential *entity.IntegrationCredential) error
}
