// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"github.com/google/uuid"
)

// BookingPayload is the scheduling provider's webhook body. Only ExternalID
// and StartISO are mandatory; everything else degrades to empty or nil on the
// stored meeting.
type BookingPayload struct {
	Event        string `json:"event"`
	ExternalID   string `json:"external_id"`
	ContactName  string `json:"contact_name"`
	ContactEmail string `json:"contact_email"`
	StartISO     string `json:"start_iso"`
	EndISO       string `json:"end_iso"`
}

// IngestBookingInput carries one inbound webhook call: the tenant it targets,
// the secret the provider presented, and the raw request body. The body stays
// undecoded until the caller has been authenticated.
type IngestBookingInput struct {
	AccountID       uuid.UUID
	PresentedSecret string
	Body            []byte
}

// WebhookUsecase defines the interface for provider webhook ingestion.
type WebhookUsecase interface {
	// IngestBooking authenticates and applies one booking event. The checks
	// run in a fixed order: credential lookup, then secret comparison, then
	// body decoding and validation, then the idempotent upsert. Each failure
	// maps to a distinct domain error so the provider can tell retryable
	// from not.
	IngestBooking(ctx context.Context, input IngestBookingInput) error
}
