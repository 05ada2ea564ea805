package handler

import (
	"net/http"

	"freshware/internal/delivery/http/response"
	"freshware/internal/domain/entity"
	"freshware/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OpportunityHandler holds dependencies for pipeline handlers.
type OpportunityHandler struct {
	uc usecase.OpportunityUsecase
}

// NewOpportunityHandler is the constructor for OpportunityHandler, injected by Fx.
func NewOpportunityHandler(uc usecase.OpportunityUsecase) *OpportunityHandler {
	return &OpportunityHandler{uc: uc}
}

type opportunityRequest struct {
	AccountID   string  `json:"accountId"`
	Name        string  `json:"name" validate:"required"`
	Stage       string  `json:"stage"`
	AmountCents int64   `json:"amountCents" validate:"gte=0"`
	CloseDate   *string `json:"closeDate"`
	OwnerID     *string `json:"ownerId"`
}

// Create handles POST /api/opportunities.
func (h *OpportunityHandler) Create(c echo.Context) error {
	var req opportunityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid opportunity input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		return invalidInput("accountId")
	}
	closeDate, err := optionalTime(req.CloseDate, "closeDate")
	if err != nil {
		return err
	}
	ownerID, err := optionalUUID(req.OwnerID, "ownerId")
	if err != nil {
		return err
	}

	opportunity, err := h.uc.CreateOpportunity(c.Request().Context(), usecase.CreateOpportunityInput{
		AccountID:   accountID,
		Name:        req.Name,
		Stage:       entity.OpportunityStage(req.Stage),
		AmountCents: req.AmountCents,
		CloseDate:   closeDate,
		OwnerID:     ownerID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, opportunity, "Opportunity created")
}

// Get handles GET /api/opportunities/:id.
func (h *OpportunityHandler) Get(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	opportunity, err := h.uc.GetOpportunity(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, opportunity, "")
}

// Update handles PUT /api/opportunities/:id.
func (h *OpportunityHandler) Update(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req opportunityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid opportunity input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	closeDate, err := optionalTime(req.CloseDate, "closeDate")
	if err != nil {
		return err
	}
	ownerID, err := optionalUUID(req.OwnerID, "ownerId")
	if err != nil {
		return err
	}

	opportunity, err := h.uc.UpdateOpportunity(c.Request().Context(), usecase.UpdateOpportunityInput{
		ID:          id,
		Name:        req.Name,
		Stage:       entity.OpportunityStage(req.Stage),
		AmountCents: req.AmountCents,
		CloseDate:   closeDate,
		OwnerID:     ownerID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, opportunity, "Opportunity updated")
}

// Delete handles DELETE /api/opportunities/:id.
func (h *OpportunityHandler) Delete(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteOpportunity(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Opportunity deleted")
}

// List handles GET /api/opportunities.
func (h *OpportunityHandler) List(c echo.Context) error {
	accountID, err := accountScope(c)
	if err != nil {
		return err
	}

	opportunities, err := h.uc.ListOpportunities(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, opportunities, "")
}

// Pipeline handles GET /api/opportunities/pipeline.
func (h *OpportunityHandler) Pipeline(c echo.Context) error {
	summary, err := h.uc.PipelineSummary(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary, "")
}
