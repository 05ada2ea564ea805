// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"freshware/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccessRequestNotFound is returned when an access request is not found.
var ErrAccessRequestNotFound = errors.New("access request not found")

// AccessRequestRepository defines the standard operations for access request persistence.
type AccessRequestRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.AccessRequest, error)
	Create(ctx context.Context, request *entity.AccessRequest) error
	Update(ctx context.Context, request *entity.AccessRequest) error

	// List returns access requests, optionally filtered by review status.
	List(ctx context.Context, status *entity.AccessRequestStatus) ([]*entity.AccessRequest, error)
}
