package handler

import (
	"net/http"
	"strconv"

	"freshware/internal/delivery/http/middleware"
	"freshware/internal/delivery/http/response"
	"freshware/internal/domain/entity"
	"freshware/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ActivityHandler holds dependencies for the account activity log handlers.
type ActivityHandler struct {
	uc usecase.ActivityUsecase
}

// NewActivityHandler is the constructor for ActivityHandler, injected by Fx.
func NewActivityHandler(uc usecase.ActivityUsecase) *ActivityHandler {
	return &ActivityHandler{uc: uc}
}

type logActivityRequest struct {
	AccountID string `json:"accountId" validate:"required,uuid"`
	Kind      string `json:"kind" validate:"required"`
	Body      string `json:"body" validate:"required"`
}

// Log handles POST /api/activities.
func (h *ActivityHandler) Log(c echo.Context) error {
	var req logActivityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid activity input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		return invalidInput("accountId")
	}

	var userID *uuid.UUID
	if identity, ok := middleware.GetIdentity(c); ok {
		userID = &identity.UserID
	}

	activity, err := h.uc.LogActivity(c.Request().Context(), usecase.LogActivityInput{
		AccountID: accountID,
		UserID:    userID,
		Kind:      entity.ActivityKind(req.Kind),
		Body:      req.Body,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, activity, "Activity logged")
}

// List handles GET /api/accounts/:id/activities.
func (h *ActivityHandler) List(c echo.Context) error {
	accountID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	limit := 50
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return invalidInput("limit parameter")
		}
		limit = parsed
	}

	activities, err := h.uc.ListActivities(c.Request().Context(), accountID, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, activities, "")
}
