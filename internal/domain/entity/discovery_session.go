// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DiscoverySession is a structured requirements-gathering session held with an
// account before delivery work starts.
type DiscoverySession struct {
	ID          uuid.UUID
	AccountID   uuid.UUID
	ContactID   *uuid.UUID
	ScheduledAt time.Time
	Notes       string
	Status      DiscoveryStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DiscoveryStatus tracks a discovery session's state.
type DiscoveryStatus string

const (
	DiscoveryStatusPlanned   DiscoveryStatus = "planned"
	DiscoveryStatusHeld      DiscoveryStatus = "held"
	DiscoveryStatusCancelled DiscoveryStatus = "cancelled"
)

// IsValid checks if the DiscoveryStatus is a valid value.
func (s DiscoveryStatus) IsValid() bool {
	switch s {
	case DiscoveryStatusPlanned, DiscoveryStatusHeld, DiscoveryStatusCancelled:
		return true
	default:
		return false
	}
}
