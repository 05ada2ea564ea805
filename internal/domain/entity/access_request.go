// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AccessRequest is a pending application for portal access. Access is
// invite-only: a visitor submits a request, and an admin approves or denies
// it. Approval creates the user record with the granted role.
type AccessRequest struct {
	ID         uuid.UUID
	Email      string
	Name       string
	Company    string
	Message    string
	Status     AccessRequestStatus
	ReviewedBy *uuid.UUID // Admin who resolved the request. Nil while pending.
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// AccessRequestStatus tracks the review state of an access request.
type AccessRequestStatus string

const (
	AccessRequestPending  AccessRequestStatus = "pending"
	AccessRequestApproved AccessRequestStatus = "approved"
	AccessRequestDenied   AccessRequestStatus = "denied"
)

// IsValid checks if the AccessRequestStatus is a valid value.
func (s AccessRequestStatus) IsValid() bool {
	switch s {
	case AccessRequestPending, AccessRequestApproved, AccessRequestDenied:
		return true
	default:
		return false
	}
}
