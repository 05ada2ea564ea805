// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is a customer organization, the tenant that owns every other CRM
// record. All tenant-scoped data carries the account's ID.
type Account struct {
	ID        uuid.UUID
	Name      string
	Industry  string
	Website   string
	Status    AccountStatus
	OwnerID   *uuid.UUID // The internal user responsible for this account.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AccountStatus tracks the lifecycle of a customer relationship.
type AccountStatus string

const (
	AccountStatusProspect AccountStatus = "prospect"
	AccountStatusActive   AccountStatus = "active"
	AccountStatusChurned  AccountStatus = "churned"
)

// IsValid checks if the AccountStatus is a valid value.
func (s AccountStatus) IsValid() bool {
	switch s {
	case AccountStatusProspect, AccountStatusActive, AccountStatusChurned:
		return true
	default:
		return false
	}
}
