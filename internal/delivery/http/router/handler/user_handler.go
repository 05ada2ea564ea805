package handler

import (
	"net/http"

	"freshware/internal/delivery/http/response"
	"freshware/internal/domain/entity"
	"freshware/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for the admin user directory handlers.
type UserHandler struct {
	uc usecase.UserUsecase
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

type createUserRequest struct {
	Email     string  `json:"email" validate:"required,email"`
	Name      string  `json:"name" validate:"required"`
	Password  string  `json:"password" validate:"required,min=8"`
	Role      string  `json:"role" validate:"required"`
	AccountID *string `json:"accountId"`
}

type updateUserRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

// Create handles POST /api/admin/users.
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	accountID, err := optionalUUID(req.AccountID, "accountId")
	if err != nil {
		return err
	}

	user, err := h.uc.CreateUser(c.Request().Context(), usecase.CreateUserInput{
		Email:     req.Email,
		Name:      req.Name,
		Password:  req.Password,
		Role:      entity.Role(req.Role),
		AccountID: accountID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, user, "User created")
}

// Get handles GET /api/admin/users/:id.
func (h *UserHandler) Get(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	user, err := h.uc.GetUser(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "")
}

// List handles GET /api/admin/users.
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users, "")
}

// UpdateRole handles PUT /api/admin/users/:id/role.
func (h *UserHandler) UpdateRole(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req updateUserRoleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid role input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.uc.UpdateUserRole(c.Request().Context(), usecase.UpdateUserRoleInput{
		UserID: id,
		Role:   entity.Role(req.Role),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Role updated")
}
