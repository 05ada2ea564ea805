// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Activity is an append-only log entry recorded against an account: a note,
// a call summary, an email, or an automatic status-change trail.
type Activity struct {
	ID        uuid.UUID
	AccountID uuid.UUID
	UserID    *uuid.UUID // Nil for system-generated entries.
	Kind      ActivityKind
	Body      string
	CreatedAt time.Time
}

// ActivityKind classifies an activity entry.
type ActivityKind string

const (
	ActivityKindNote         ActivityKind = "note"
	ActivityKindCall         ActivityKind = "call"
	ActivityKindEmail        ActivityKind = "email"
	ActivityKindStatusChange ActivityKind = "status_change"
)

// IsValid checks if the ActivityKind is a valid value.
func (k ActivityKind) IsValid() bool {
	switch k {
	case ActivityKindNote, ActivityKindCall, ActivityKindEmail, ActivityKindStatusChange:
		return true
	default:
		return false
	}
}
