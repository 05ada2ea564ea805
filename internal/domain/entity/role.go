// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the portal role a user can have.
type Role string

const (
	// RoleCEO has full visibility including company-wide KPIs.
	RoleCEO Role = "ceo"
	// RoleAdmin manages users, access requests and integrations.
	RoleAdmin Role = "admin"
	// RoleSales owns accounts, contacts, opportunities and proposals.
	RoleSales Role = "sales"
	// RoleOps runs projects, tasks and discovery sessions.
	RoleOps Role = "ops"
	// RoleMarketing works with contacts and activity logs.
	RoleMarketing Role = "marketing"
	// RoleStaff is a general internal user with read access.
	RoleStaff Role = "staff"
	// RoleClient is an external customer user, scoped to their own account.
	RoleClient Role = "client"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCEO, RoleAdmin, RoleSales, RoleOps, RoleMarketing, RoleStaff, RoleClient:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}
