package handler

import (
	"net/http"
	"time"

	"freshware/internal/delivery/http/response"
	"freshware/internal/domain/entity"
	"freshware/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DiscoveryHandler holds dependencies for discovery session handlers.
type DiscoveryHandler struct {
	uc usecase.DiscoveryUsecase
}

// NewDiscoveryHandler is the constructor for DiscoveryHandler, injected by Fx.
func NewDiscoveryHandler(uc usecase.DiscoveryUsecase) *DiscoveryHandler {
	return &DiscoveryHandler{uc: uc}
}

type discoveryRequest struct {
	AccountID   string  `json:"accountId"`
	ContactID   *string `json:"contactId"`
	ScheduledAt string  `json:"scheduledAt" validate:"required"`
	Notes       string  `json:"notes"`
	Status      string  `json:"status"`
}

// Create handles POST /api/discovery-sessions.
func (h *DiscoveryHandler) Create(c echo.Context) error {
	var req discoveryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid discovery session input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		return invalidInput("accountId")
	}
	contactID, err := optionalUUID(req.ContactID, "contactId")
	if err != nil {
		return err
	}
	scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		return invalidInput("scheduledAt")
	}

	session, err := h.uc.CreateDiscoverySession(c.Request().Context(), usecase.CreateDiscoverySessionInput{
		AccountID:   accountID,
		ContactID:   contactID,
		ScheduledAt: scheduledAt,
		Notes:       req.Notes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, session, "Discovery session created")
}

// Get handles GET /api/discovery-sessions/:id.
func (h *DiscoveryHandler) Get(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	session, err := h.uc.GetDiscoverySession(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, session, "")
}

// Update handles PUT /api/discovery-sessions/:id.
func (h *DiscoveryHandler) Update(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req discoveryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid discovery session input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		return invalidInput("scheduledAt")
	}

	session, err := h.uc.UpdateDiscoverySession(c.Request().Context(), usecase.UpdateDiscoverySessionInput{
		ID:          id,
		ScheduledAt: scheduledAt,
		Notes:       req.Notes,
		Status:      entity.DiscoveryStatus(req.Status),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, session, "Discovery session updated")
}

// List handles GET /api/discovery-sessions.
func (h *DiscoveryHandler) List(c echo.Context) error {
	accountID, err := accountScope(c)
	if err != nil {
		return err
	}

	sessions, err := h.uc.ListDiscoverySessions(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sessions, "")
}
