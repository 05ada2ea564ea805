// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Proposal is a priced offer sent to an account, usually attached to an opportunity.
type Proposal struct {
	ID            uuid.UUID
	AccountID     uuid.UUID
	OpportunityID *uuid.UUID
	Title         string
	Status        ProposalStatus
	AmountCents   int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ProposalStatus tracks the proposal lifecycle.
type ProposalStatus string

const (
	ProposalStatusDraft    ProposalStatus = "draft"
	ProposalStatusSent     ProposalStatus = "sent"
	ProposalStatusAccepted ProposalStatus = "accepted"
	ProposalStatusRejected ProposalStatus = "rejected"
)

// IsValid checks if the ProposalStatus is a valid value.
func (s ProposalStatus) IsValid() bool {
	switch s {
	case ProposalStatusDraft, ProposalStatusSent, ProposalStatusAccepted, ProposalStatusRejected:
		return true
	default:
		return false
	}
}
