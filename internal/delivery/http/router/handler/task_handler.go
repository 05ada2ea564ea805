package handler

import (
	"net/http"

	"freshware/internal/delivery/http/response"
	"freshware/internal/domain/entity"
	"freshware/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TaskHandler holds dependencies for task handlers.
type TaskHandler struct {
	uc usecase.TaskUsecase
}

// NewTaskHandler is the constructor for TaskHandler, injected by Fx.
func NewTaskHandler(uc usecase.TaskUsecase) *TaskHandler {
	return &TaskHandler{uc: uc}
}

type taskRequest struct {
	AccountID   *string `json:"accountId"`
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	DueDate     *string `json:"dueDate"`
	AssigneeID  *string `json:"assigneeId"`
}

// Create handles POST /api/tasks.
func (h *TaskHandler) Create(c echo.Context) error {
	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid task input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	accountID, err := optionalUUID(req.AccountID, "accountId")
	if err != nil {
		return err
	}
	dueDate, err := optionalTime(req.DueDate, "dueDate")
	if err != nil {
		return err
	}
	assigneeID, err := optionalUUID(req.AssigneeID, "assigneeId")
	if err != nil {
		return err
	}

	task, err := h.uc.CreateTask(c.Request().Context(), usecase.CreateTaskInput{
		AccountID:   accountID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     dueDate,
		AssigneeID:  assigneeID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, task, "Task created")
}

// Get handles GET /api/tasks/:id.
func (h *TaskHandler) Get(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	task, err := h.uc.GetTask(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, task, "")
}

// Update handles PUT /api/tasks/:id.
func (h *TaskHandler) Update(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid task input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	dueDate, err := optionalTime(req.DueDate, "dueDate")
	if err != nil {
		return err
	}
	assigneeID, err := optionalUUID(req.AssigneeID, "assigneeId")
	if err != nil {
		return err
	}

	task, err := h.uc.UpdateTask(c.Request().Context(), usecase.UpdateTaskInput{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Status:      entity.TaskStatus(req.Status),
		DueDate:     dueDate,
		AssigneeID:  assigneeID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, task, "Task updated")
}

// Delete handles DELETE /api/tasks/:id.
func (h *TaskHandler) Delete(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteTask(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Task deleted")
}

// List handles GET /api/tasks.
func (h *TaskHandler) List(c echo.Context) error {
	accountID, err := accountScope(c)
	if err != nil {
		return err
	}

	tasks, err := h.uc.ListTasks(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tasks, "")
}
