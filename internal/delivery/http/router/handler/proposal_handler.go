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

// ProposalHandler holds dependencies for proposal handlers.
type ProposalHandler struct {
	uc usecase.ProposalUsecase
}

// NewProposalHandler is the constructor for ProposalHandler, injected by Fx.
func NewProposalHandler(uc usecase.ProposalUsecase) *ProposalHandler {
	return &ProposalHandler{uc: uc}
}

type proposalRequest struct {
	AccountID     string  `json:"accountId"`
	OpportunityID *string `json:"opportunityId"`
	Title         string  `json:"title" validate:"required"`
	Status        string  `json:"status"`
	AmountCents   int64   `json:"amountCents" validate:"gte=0"`
}

// Create handles POST /api/proposals.
func (h *ProposalHandler) Create(c echo.Context) error {
	var req proposalRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid proposal input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		return invalidInput("accountId")
	}
	opportunityID, err := optionalUUID(req.OpportunityID, "opportunityId")
	if err != nil {
		return err
	}

	proposal, err := h.uc.CreateProposal(c.Request().Context(), usecase.CreateProposalInput{
		AccountID:     accountID,
		OpportunityID: opportunityID,
		Title:         req.Title,
		AmountCents:   req.AmountCents,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, proposal, "Proposal created")
}

// Get handles GET /api/proposals/:id.
func (h *ProposalHandler) Get(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	proposal, err := h.uc.GetProposal(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, proposal, "")
}

// Update handles PUT /api/proposals/:id.
func (h *ProposalHandler) Update(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req proposalRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid proposal input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	proposal, err := h.uc.UpdateProposal(c.Request().Context(), usecase.UpdateProposalInput{
		ID:          id,
		Title:       req.Title,
		Status:      entity.ProposalStatus(req.Status),
		AmountCents: req.AmountCents,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, proposal, "Proposal updated")
}

// List handles GET /api/proposals.
func (h *ProposalHandler) List(c echo.Context) error {
	accountID, err := accountScope(c)
	if err != nil {
		return err
	}

	proposals, err := h.uc.ListProposals(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, proposals, "")
}
