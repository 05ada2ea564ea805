package handler

import (
	"net/http"

	"freshware/internal/delivery/http/response"
	"freshware/internal/domain/entity"
	"freshware/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// IntegrationHandler holds dependencies for tenant integration handlers.
type IntegrationHandler struct {
	uc usecase.IntegrationUsecase
}

// NewIntegrationHandler is the constructor for IntegrationHandler, injected by Fx.
func NewIntegrationHandler(uc usecase.IntegrationUsecase) *IntegrationHandler {
	return &IntegrationHandler{uc: uc}
}

type connectIntegrationRequest struct {
	Secret string `json:"secret" validate:"required"`
}

type integrationResponse struct {
	AccountID string `json:"accountId"`
	Provider  string `json:"provider"`
	Status    string `json:"status"`
}

// The shared secret never appears in a response body.
func newIntegrationResponse(credential *entity.IntegrationCredential) integrationResponse {
	return integrationResponse{
		AccountID: credential.AccountID.String(),
		Provider:  credential.Provider,
		Status:    string(credential.Status),
	}
}

// Connect handles PUT /api/accounts/:id/integrations/:provider.
func (h *IntegrationHandler) Connect(c echo.Context) error {
	accountID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req connectIntegrationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid integration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	credential, err := h.uc.ConnectIntegration(c.Request().Context(), usecase.ConnectIntegrationInput{
		AccountID: accountID,
		Provider:  c.Param("provider"),
		Secret:    req.Secret,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newIntegrationResponse(credential), "Integration connected")
}

// Disconnect handles DELETE /api/accounts/:id/integrations/:provider.
func (h *IntegrationHandler) Disconnect(c echo.Context) error {
	accountID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DisconnectIntegration(c.Request().Context(), accountID, c.Param("provider")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Integration disconnected")
}

// Get handles GET /api/accounts/:id/integrations/:provider.
func (h *IntegrationHandler) Get(c echo.Context) error {
	accountID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	credential, err := h.uc.GetIntegration(c.Request().Context(), accountID, c.Param("provider"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newIntegrationResponse(credential), "")
}
