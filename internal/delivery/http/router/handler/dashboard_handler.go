package handler

import (
	"net/http"

	"freshware/internal/delivery/http/response"
	"freshware/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DashboardHandler holds dependencies for the KPI dashboard handler.
type DashboardHandler struct {
	uc usecase.DashboardUsecase
}

// NewDashboardHandler is the constructor for DashboardHandler, injected by Fx.
func NewDashboardHandler(uc usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// KPIs handles GET /api/dashboard/kpis.
func (h *DashboardHandler) KPIs(c echo.Context) error {
	kpis, err := h.uc.GetKPIs(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, kpis, "")
}
