// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Opportunity is a potential deal with an account, tracked through a
// fixed pipeline of stages until it is won or lost.
type Opportunity struct {
	ID          uuid.UUID
	AccountID   uuid.UUID
	Name        string
	Stage       OpportunityStage
	AmountCents int64 // Deal value in cents to avoid floating point drift.
	CloseDate   *time.Time
	OwnerID     *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OpportunityStage is a step in the sales pipeline.
type OpportunityStage string

const (
	StageLead        OpportunityStage = "lead"
	StageQualified   OpportunityStage = "qualified"
	StageProposal    OpportunityStage = "proposal"
	StageNegotiation OpportunityStage = "negotiation"
	StageWon         OpportunityStage = "won"
	StageLost        OpportunityStage = "lost"
)

// IsValid checks if the OpportunityStage is a valid value.
func (s OpportunityStage) IsValid() bool {
	switch s {
	case StageLead, StageQualified, StageProposal, StageNegotiation, StageWon, StageLost:
		return true
	default:
		return false
	}
}

// Open reports whether the opportunity still counts toward the live pipeline.
func (s OpportunityStage) Open() bool {
	return s != StageWon && s != StageLost
}
