package handler

import (
	"log/slog"
	"net/http"

	"freshware/internal/delivery/http/middleware"
	"freshware/internal/delivery/http/response"
	"freshware/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	uc      usecase.AuthUsecase
	session *middleware.SessionMiddleware
	logger  *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, session *middleware.SessionMiddleware, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, session: session, logger: logger}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// Login verifies credentials and sets the session cookie pair.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	// Tokens travel only in httpOnly cookies, never in the body.
	h.session.SetSessionCookies(c, &output.Tokens)

	return response.Success(c, http.StatusOK, loginResponse{
		UserID: output.User.ID.String(),
		Name:   output.User.Name,
		Email:  output.User.Email,
		Role:   output.User.Role.String(),
	}, "Signed in")
}

// Logout ends the session and expires both cookies. It succeeds even when
// the session is already gone.
func (h *AuthHandler) Logout(c echo.Context) error {
	refreshToken := ""
	if cookie, err := c.Cookie(middleware.CookieRefreshToken); err == nil && cookie != nil {
		refreshToken = cookie.Value
	}

	if err := h.uc.Logout(c.Request().Context(), refreshToken); err != nil {
		return errors.WithStack(err)
	}

	h.session.ClearSessionCookies(c)

	return response.Success(c, http.StatusOK, nil, "Signed out")
}

// Me returns the authenticated caller's identity.
func (h *AuthHandler) Me(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "SESSION_INVALID", "Sign in required")
	}

	body := map[string]any{
		"userId": identity.UserID.String(),
		"role":   identity.Role.String(),
	}
	if identity.AccountID != nil {
		body["accountId"] = identity.AccountID.String()
	}

	return response.Success(c, http.StatusOK, body, "")
}
