// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"freshware/internal/domain/entity"

	"github.com/google/uuid"
)

// ConnectIntegrationInput defines the data required to connect a provider to a tenant.
type ConnectIntegrationInput struct {
	AccountID uuid.UUID
	Provider  string
	Secret    string
}

// IntegrationUsecase defines the interface for tenant integration management.
type IntegrationUsecase interface {
	// ConnectIntegration creates or replaces the credential for the
	// (account, provider) pair and marks it connected.
	ConnectIntegration(ctx context.Context, input ConnectIntegrationInput) (*entity.IntegrationCredential, error)

	// DisconnectIntegration marks the credential disconnected; subsequent
	// webhook calls for the pair are rejected.
	DisconnectIntegration(ctx context.Context, accountID uuid.UUID, provider string) error

	// GetIntegration returns the credential for the pair.
	GetIntegration(ctx context.Context, accountID uuid.UUID, provider string) (*entity.IntegrationCredential, error)
}
