package handler

import (
	"net/http"

	"freshware/internal/delivery/http/response"
	"freshware/internal/domain/entity"
	"freshware/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler holds dependencies for account handlers.
type AccountHandler struct {
	uc usecase.AccountUsecase
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase) *AccountHandler {
	return &AccountHandler{uc: uc}
}

type accountRequest struct {
	Name     string  `json:"name" validate:"required"`
	Industry string  `json:"industry"`
	Website  string  `json:"website"`
	Status   string  `json:"status"`
	OwnerID  *string `json:"ownerId"`
}

// Create handles POST /api/accounts.
func (h *AccountHandler) Create(c echo.Context) error {
	var req accountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid account input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	ownerID, err := optionalUUID(req.OwnerID, "ownerId")
	if err != nil {
		return err
	}

	account, err := h.uc.CreateAccount(c.Request().Context(), usecase.CreateAccountInput{
		Name:     req.Name,
		Industry: req.Industry,
		Website:  req.Website,
		Status:   entity.AccountStatus(req.Status),
		OwnerID:  ownerID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, account, "Account created")
}

// Get handles GET /api/accounts/:id.
func (h *AccountHandler) Get(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	account, err := h.uc.GetAccount(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, account, "")
}

// Update handles PUT /api/accounts/:id.
func (h *AccountHandler) Update(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req accountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid account input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	ownerID, err := optionalUUID(req.OwnerID, "ownerId")
	if err != nil {
		return err
	}

	account, err := h.uc.UpdateAccount(c.Request().Context(), usecase.UpdateAccountInput{
		ID:       id,
		Name:     req.Name,
		Industry: req.Industry,
		Website:  req.Website,
		Status:   entity.AccountStatus(req.Status),
		OwnerID:  ownerID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, account, "Account updated")
}

// Delete handles DELETE /api/accounts/:id.
func (h *AccountHandler) Delete(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteAccount(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Account deleted")
}

// List handles GET /api/accounts.
func (h *AccountHandler) List(c echo.Context) error {
	accounts, err := h.uc.ListAccounts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, accounts, "")
}
