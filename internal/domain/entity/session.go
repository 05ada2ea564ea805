// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session represents a long-lived, authorized portal sign-in. It backs the
// refresh token: the raw token lives only in the browser cookie, while the
// database stores a SHA-256 hash for comparison.
type Session struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string    // SHA-256 hash of the raw refresh token.
	ExpiresAt time.Time // When this session can no longer be refreshed.
	CreatedAt time.Time
}

// Expired reports whether the session is past its refresh window.
func (s *Session) Expired(now time.Time) bool {
	return s.ExpiresAt.Before(now)
}

// SessionIdentity is the authenticated caller resolved by the Session Guard.
type SessionIdentity struct {
	UserID    uuid.UUID
	Role      Role
	AccountID *uuid.UUID // Tenant scope for client users.
}
