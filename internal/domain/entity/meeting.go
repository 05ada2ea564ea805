// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// MeetingSource identifies who created a meeting record.
const (
	// MeetingSourceManual marks meetings entered through the portal.
	MeetingSourceManual = "manual"
	// ProviderYouCanBookMe is the external scheduling provider name, used both
	// as the meeting source tag and as the integration credential provider key.
	ProviderYouCanBookMe = "youcanbookme"
)

// Meeting is a scheduled event with a contact at an account. Meetings arrive
// either from manual entry or from the scheduling provider's webhook; webhook
// meetings carry the provider-assigned ExternalID, which is unique across the
// system and acts as the natural key for idempotent redelivery.
type Meeting struct {
	ID           uuid.UUID
	AccountID    uuid.UUID
	ContactName  string
	ContactEmail *string // Nullable: the provider does not always send an email.
	ScheduledAt  time.Time
	EndsAt       *time.Time
	Status       MeetingStatus
	Source       string  // MeetingSourceManual or the provider name.
	ExternalID   *string // Provider booking ID. Nil for manual meetings.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// MeetingStatus tracks the state of a scheduled meeting.
type MeetingStatus string

const (
	MeetingStatusScheduled MeetingStatus = "scheduled"
	MeetingStatusCanceled  MeetingStatus = "canceled"
	// MeetingStatusCompleted and MeetingStatusNoShow are set only by manual
	// edits, never by webhook ingestion.
	MeetingStatusCompleted MeetingStatus = "completed"
	MeetingStatusNoShow    MeetingStatus = "no_show"
)

// IsValid checks if the MeetingStatus is a valid value.
func (s MeetingStatus) IsValid() bool {
	switch s {
	case MeetingStatusScheduled, MeetingStatusCanceled, MeetingStatusCompleted, MeetingStatusNoShow:
		return true
	default:
		return false
	}
}

// MeetingStatusFromEvent maps an inbound webhook event name to a meeting
// status. A booking_cancelled event cancels the meeting; every other event
// (including an absent event name) schedules it. No other states are
// reachable from the webhook path.
func MeetingStatusFromEvent(event string) MeetingStatus {
	if event == "booking_cancelled" {
		return MeetingStatusCanceled
	}

	return MeetingStatusScheduled
}
