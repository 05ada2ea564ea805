// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"time"

	"freshware/internal/delivery/http/middleware"
	"freshware/internal/domain/entity"
	domainerrors "freshware/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck reports process liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// invalidInput rejects a malformed request parameter. It returns a real error
// carrying the 400 status, so callers bail out through the central error
// handler instead of writing the response themselves. Parameter helpers must
// never answer the client directly: a helper that writes a response and then
// returns nil would let the handler keep running on zero values.
func invalidInput(field string) error {
	return domainerrors.ErrValidationFailed.WithDetails("Invalid " + field)
}

// pathUUID parses a UUID path parameter.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, invalidInput(name + " parameter")
	}

	return id, nil
}

// accountScope resolves the account filter for list endpoints. Client users
// are always pinned to their own tenant regardless of what they ask for;
// internal users may filter by the optional account_id query parameter.
func accountScope(c echo.Context) (*uuid.UUID, error) {
	if identity, ok := middleware.GetIdentity(c); ok && identity.Role == entity.RoleClient {
		return identity.AccountID, nil
	}

	raw := c.QueryParam("account_id")
	if raw == "" {
		return nil, nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, invalidInput("account_id parameter")
	}

	return &id, nil
}

// optionalUUID parses a nullable UUID from a request body field.
func optionalUUID(raw *string, field string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}

	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, invalidInput(field)
	}

	return &id, nil
}

// optionalTime parses a nullable RFC 3339 timestamp from a request body field.
func optionalTime(raw *string, field string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}

	parsed, err := time.Parse(time.RFC3339, *raw)
	if err != nil {
		return nil, invalidInput(field)
	}

	return &parsed, nil
}
