package handler

import (
	"net/http"

	"freshware/internal/delivery/http/middleware"
	"freshware/internal/delivery/http/response"
	"freshware/internal/domain/entity"
	"freshware/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccessRequestHandler holds dependencies for the invite-only access flow.
type AccessRequestHandler struct {
	uc usecase.AccessRequestUsecase
}

// NewAccessRequestHandler is the constructor for AccessRequestHandler, injected by Fx.
func NewAccessRequestHandler(uc usecase.AccessRequestUsecase) *AccessRequestHandler {
	return &AccessRequestHandler{uc: uc}
}

type submitAccessRequest struct {
	Email   string `json:"email" validate:"required,email"`
	Name    string `json:"name" validate:"required"`
	Company string `json:"company"`
	Message string `json:"message"`
}

type approveAccessRequest struct {
	Role      string  `json:"role" validate:"required"`
	AccountID *string `json:"accountId"`
	Password  string  `json:"password" validate:"required,min=8"`
}

// Submit handles POST /access-requests. It is the only unauthenticated
// write endpoint besides login.
func (h *AccessRequestHandler) Submit(c echo.Context) error {
	var req submitAccessRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid access request input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	request, err := h.uc.SubmitRequest(c.Request().Context(), usecase.SubmitAccessRequestInput{
		Email:   req.Email,
		Name:    req.Name,
		Company: req.Company,
		Message: req.Message,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, request, "Access request submitted")
}

// List handles GET /api/admin/access-requests.
func (h *AccessRequestHandler) List(c echo.Context) error {
	var status *entity.AccessRequestStatus
	if raw := c.QueryParam("status"); raw != "" {
		parsed := entity.AccessRequestStatus(raw)
		status = &parsed
	}

	requests, err := h.uc.ListRequests(c.Request().Context(), status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, requests, "")
}

// Approve handles POST /api/admin/access-requests/:id/approve.
func (h *AccessRequestHandler) Approve(c echo.Context) error {
	requestID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "SESSION_INVALID", "Sign in required")
	}

	var req approveAccessRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid approval input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	accountID, err := optionalUUID(req.AccountID, "accountId")
	if err != nil {
		return err
	}

	user, err := h.uc.ApproveRequest(c.Request().Context(), usecase.ApproveAccessRequestInput{
		RequestID:  requestID,
		ReviewerID: identity.UserID,
		Role:       entity.Role(req.Role),
		AccountID:  accountID,
		Password:   req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Access request approved")
}

// Deny handles POST /api/admin/access-requests/:id/deny.
func (h *AccessRequestHandler) Deny(c echo.Context) error {
	requestID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "SESSION_INVALID", "Sign in required")
	}

	if err := h.uc.DenyRequest(c.Request().Context(), usecase.DenyAccessRequestInput{
		RequestID:  requestID,
		ReviewerID: identity.UserID,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Access request denied")
}
