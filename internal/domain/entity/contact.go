// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Contact is a person at a customer account.
type Contact struct {
	ID        uuid.UUID
	AccountID uuid.UUID
	Name      string
	Email     string
	Phone     string
	Title     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
