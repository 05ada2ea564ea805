// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a staff member or client who can sign in to the portal.
type User struct {
	ID           uuid.UUID  // The global unique identifier for the user.
	Email        string     // Login identifier and primary contact address.
	Name         string     // Display name shown throughout the portal.
	Role         Role       // The single portal role assigned to this user.
	PasswordHash string     // bcrypt hash of the user's password. Never serialized.
	AccountID    *uuid.UUID // For client users, the account (tenant) they belong to. Nil for internal staff.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsInternal reports whether the user belongs to the services business itself
// rather than to a customer account.
func (u *User) IsInternal() bool {
	return u.Role != RoleClient
}
