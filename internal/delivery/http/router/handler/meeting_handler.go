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

// MeetingHandler holds dependencies for manual meeting handlers.
type MeetingHandler struct {
	uc usecase.MeetingUsecase
}

// NewMeetingHandler is the constructor for MeetingHandler, injected by Fx.
func NewMeetingHandler(uc usecase.MeetingUsecase) *MeetingHandler {
	return &MeetingHandler{uc: uc}
}

type meetingRequest struct {
	AccountID    string  `json:"accountId"`
	ContactName  string  `json:"contactName" validate:"required"`
	ContactEmail *string `json:"contactEmail" validate:"omitempty,email"`
	ScheduledAt  string  `json:"scheduledAt" validate:"required"`
	EndsAt       *string `json:"endsAt"`
	Status       string  `json:"status"`
}

func (r *meetingRequest) times() (time.Time, *time.Time, error) {
	scheduledAt, err := time.Parse(time.RFC3339, r.ScheduledAt)
	if err != nil {
		return time.Time{}, nil, invalidInput("scheduledAt")
	}

	endsAt, err := optionalTime(r.EndsAt, "endsAt")
	if err != nil {
		return time.Time{}, nil, err
	}

	return scheduledAt, endsAt, nil
}

// Create handles POST /api/meetings.
func (h *MeetingHandler) Create(c echo.Context) error {
	var req meetingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid meeting input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		return invalidInput("accountId")
	}
	scheduledAt, endsAt, err := req.times()
	if err != nil {
		return err
	}

	meeting, err := h.uc.CreateMeeting(c.Request().Context(), usecase.CreateMeetingInput{
		AccountID:    accountID,
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		ScheduledAt:  scheduledAt,
		EndsAt:       endsAt,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, meeting, "Meeting created")
}

// Get handles GET /api/meetings/:id.
func (h *MeetingHandler) Get(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	meeting, err := h.uc.GetMeeting(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, meeting, "")
}

// Update handles PUT /api/meetings/:id.
func (h *MeetingHandler) Update(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req meetingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid meeting input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	scheduledAt, endsAt, err := req.times()
	if err != nil {
		return err
	}

	meeting, err := h.uc.UpdateMeeting(c.Request().Context(), usecase.UpdateMeetingInput{
		ID:           id,
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		ScheduledAt:  scheduledAt,
		EndsAt:       endsAt,
		Status:       entity.MeetingStatus(req.Status),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, meeting, "Meeting updated")
}

// Delete handles DELETE /api/meetings/:id.
func (h *MeetingHandler) Delete(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteMeeting(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Meeting deleted")
}

// List handles GET /api/meetings.
func (h *MeetingHandler) List(c echo.Context) error {
	accountID, err := accountScope(c)
	if err != nil {
		return err
	}

	meetings, err := h.uc.ListMeetings(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, meetings, "")
}
