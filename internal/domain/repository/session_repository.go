// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"freshware/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for session persistence.
var (
	// ErrSessionNotFound is returned when a session is not found.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExpired is returned when a session exists but is past its refresh window.
	ErrSessionExpired = errors.New("session expired")
)

// SessionRepository defines the standard operations for portal session persistence.
// Sessions are stored by refresh token hash; the raw token never reaches the database.
type SessionRepository interface {
	// Create persists a new session, representing a fresh sign-in or a rotation.
	Create(ctx context.Context, session *entity.Session) error

	// FindByTokenHash retrieves a session record by its securely stored hash.
	// Returns ErrSessionExpired when the record exists but is stale.
	FindByTokenHash(ctx context.Context, hash string) (*entity.Session, error)

	// DeleteByTokenHash deletes a session by its hash, ending it (logout or rotation).
	DeleteByTokenHash(ctx context.Context, hash string) error

	// DeleteByUserID revokes every session a user holds.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error

	// CountByUserID returns the number of live sessions a user holds,
	// used to enforce the concurrent sign-in limit.
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
}
