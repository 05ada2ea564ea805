// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// IntegrationCredential associates an account with an external provider and
// the shared secret that authenticates the provider's inbound webhooks.
// At most one credential exists per (account, provider) pair. Credentials are
// created by the admin integration flow; webhook ingestion only reads them.
type IntegrationCredential struct {
	ID        uuid.UUID
	AccountID uuid.UUID
	Provider  string // e.g. ProviderYouCanBookMe.
	Secret    string // Shared secret presented by the provider on every call.
	Status    IntegrationStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IntegrationStatus reports whether an integration is live.
type IntegrationStatus string

const (
	IntegrationStatusConnected    IntegrationStatus = "connected"
	IntegrationStatusDisconnected IntegrationStatus = "disconnected"
)

// Connected reports whether webhooks for this credential should be accepted.
func (c *IntegrationCredential) Connected() bool {
	return c.Status == IntegrationStatusConnected
}
