// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"freshware/internal/domain/entity"

	"github.com/google/uuid"
)

// SubmitAccessRequestInput defines the data a visitor submits to ask for portal access.
type SubmitAccessRequestInput struct {
	Email   string
	Name    string
	Company string
	Message string
}

// ApproveAccessRequestInput defines the data required to approve a request.
// Approval creates the user record in the same transaction.
type ApproveAccessRequestInput struct {
	RequestID  uuid.UUID
	ReviewerID uuid.UUID
	Role       entity.Role
	AccountID  *uuid.UUID // Required when the granted role is client.
	Password   string     // Initial password for the created user.
}

// DenyAccessRequestInput defines the data required to deny a request.
type DenyAccessRequestInput struct {
	RequestID  uuid.UUID
	ReviewerID uuid.UUID
}

// AccessRequestUsecase defines the interface for the invite-only access flow.
type AccessRequestUsecase interface {
	SubmitRequest(ctx context.Context, input SubmitAccessRequestInput) (*entity.AccessRequest, error)
	ListRequests(ctx context.Context, status *entity.AccessRequestStatus) ([]*entity.AccessRequest, error)

	// ApproveRequest marks the request approved and creates the user,
	// atomically. A request that is no longer pending cannot be approved.
	ApproveRequest(ctx context.Context, input ApproveAccessRequestInput) (*entity.User, error)

	// DenyRequest marks the request denied. Already-resolved requests conflict.
	DenyRequest(ctx context.Context, input DenyAccessRequestInput) error
}
