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

// ProjectHandler holds dependencies for delivery project handlers.
type ProjectHandler struct {
	uc usecase.ProjectUsecase
}

// NewProjectHandler is the constructor for ProjectHandler, injected by Fx.
func NewProjectHandler(uc usecase.ProjectUsecase) *ProjectHandler {
	return &ProjectHandler{uc: uc}
}

type projectRequest struct {
	AccountID string `json:"accountId"`
	Name      string `json:"name" validate:"required"`
	Status    string `json:"status"`
}

// Create handles POST /api/projects.
func (h *ProjectHandler) Create(c echo.Context) error {
	var req projectRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid project input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		return invalidInput("accountId")
	}

	project, err := h.uc.CreateProject(c.Request().Context(), usecase.CreateProjectInput{
		AccountID: accountID,
		Name:      req.Name,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, project, "Project created")
}

// Get handles GET /api/projects/:id.
func (h *ProjectHandler) Get(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	project, err := h.uc.GetProject(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, project, "")
}

// Update handles PUT /api/projects/:id.
func (h *ProjectHandler) Update(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req projectRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid project input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	project, err := h.uc.UpdateProject(c.Request().Context(), usecase.UpdateProjectInput{
		ID:     id,
		Name:   req.Name,
		Status: entity.ProjectStatus(req.Status),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, project, "Project updated")
}

// List handles GET /api/projects.
func (h *ProjectHandler) List(c echo.Context) error {
	accountID, err := accountScope(c)
	if err != nil {
		return err
	}

	projects, err := h.uc.ListProjects(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, projects, "")
}
