package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"freshware/config"
	"freshware/internal/domain/entity"
	"freshware/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockAuthUsecase struct {
	loginFn          func(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error)
	logoutFn         func(ctx context.Context, refreshToken string) error
	resolveSessionFn func(ctx context.Context, accessToken, refreshToken string) (*usecase.ResolveOutput, error)
}

func (m *mockAuthUsecase) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	return m.loginFn(ctx, input)
}

func (m *mockAuthUsecase) Logout(ctx context.Context, refreshToken string) error {
	return m.logoutFn(ctx, refreshToken)
}

func (m *mockAuthUsecase) ResolveSession(ctx context.Context, accessToken, refreshToken string) (*usecase.ResolveOutput, error) {
	return m.resolveSessionFn(ctx, accessToken, refreshToken)
}

func newTestSessionMiddleware(auth usecase.AuthUsecase) *SessionMiddleware {
	cfg := &config.Config{
		Session: &config.SessionConfig{
			ProtectedPrefixes: []string{"/dashboard", "/admin"},
			LoginPath:         "/login",
		},
	}

	return NewSessionMiddleware(auth, cfg, slog.Default())
}

func performGuard(t *testing.T, m *SessionMiddleware, req *http.Request) (*httptest.ResponseRecorder, *entity.SessionIdentity) {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen *entity.SessionIdentity
	handler := m.Guard(func(c echo.Context) error {
		if identity, ok := GetIdentity(c); ok {
			seen = identity
		}

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))

	return rec, seen
}

func TestGuard_AnonymousOnPublicPathPasses(t *testing.T) {
	m := newTestSessionMiddleware(&mockAuthUsecase{})

	req := httptest.NewRequest(http.MethodGet, "/pricing", nil)
	rec, identity := performGuard(t, m, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, identity)
}

func TestGuard_AnonymousOnProtectedPathRedirectsWithNext(t *testing.T) {
	m := newTestSessionMiddleware(&mockAuthUsecase{})

	req := httptest.NewRequest(http.MethodGet, "/dashboard/accounts?page=2", nil)
	rec, _ := performGuard(t, m, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login?next=%2Fdashboard%2Faccounts%3Fpage%3D2", rec.Header().Get("Location"))
}

func TestGuard_ValidAccessTokenSetsIdentity(t *testing.T) {
	userID := uuid.New()
	auth := &mockAuthUsecase{
		resolveSessionFn: func(_ context.Context, accessToken, _ string) (*usecase.ResolveOutput, error) {
			assert.Equal(t, "valid-access", accessToken)

			return &usecase.ResolveOutput{
				Identity: &entity.SessionIdentity{UserID: userID, Role: entity.RoleSales},
			}, nil
		},
	}
	m := newTestSessionMiddleware(auth)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: CookieAccessToken, Value: "valid-access"})
	rec, identity := performGuard(t, m, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, identity)
	assert.Equal(t, userID, identity.UserID)
	assert.Equal(t, entity.RoleSales, identity.Role)
}

func TestGuard_RotatedSessionSetsFreshCookies(t *testing.T) {
	auth := &mockAuthUsecase{
		resolveSessionFn: func(_ context.Context, _, refreshToken string) (*usecase.ResolveOutput, error) {
			assert.Equal(t, "stale-refresh", refreshToken)

			return &usecase.ResolveOutput{
				Identity: &entity.SessionIdentity{UserID: uuid.New(), Role: entity.RoleOps},
				Rotated:  &usecase.TokenPair{AccessToken: "fresh-access", RefreshToken: "fresh-refresh"},
			}, nil
		},
	}
	m := newTestSessionMiddleware(auth)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: CookieRefreshToken, Value: "stale-refresh"})
	rec, identity := performGuard(t, m, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, identity)

	cookies := rec.Result().Cookies()
	byName := make(map[string]*http.Cookie, len(cookies))
	for _, cookie := range cookies {
		byName[cookie.Name] = cookie
	}
	require.Contains(t, byName, CookieAccessToken)
	require.Contains(t, byName, CookieRefreshToken)
	assert.Equal(t, "fresh-access", byName[CookieAccessToken].Value)
	assert.Equal(t, "fresh-refresh", byName[CookieRefreshToken].Value)
	assert.True(t, byName[CookieAccessToken].HttpOnly)
	assert.True(t, byName[CookieRefreshToken].HttpOnly)
}

func TestGuard_ResolutionErrorTreatedAsAnonymous(t *testing.T) {
	auth := &mockAuthUsecase{
		resolveSessionFn: func(_ context.Context, _, _ string) (*usecase.ResolveOutput, error) {
			return nil, assert.AnError
		},
	}
	m := newTestSessionMiddleware(auth)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: CookieAccessToken, Value: "garbage"})
	rec, identity := performGuard(t, m, req)

	assert.Nil(t, identity)
	assert.Equal(t, http.StatusFound, rec.Code)
}

func TestGuard_ResolutionPanicTreatedAsAnonymous(t *testing.T) {
	auth := &mockAuthUsecase{
		resolveSessionFn: func(_ context.Context, _, _ string) (*usecase.ResolveOutput, error) {
			panic("token parser exploded")
		},
	}
	m := newTestSessionMiddleware(auth)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: CookieAccessToken, Value: "boom"})
	rec, identity := performGuard(t, m, req)

	assert.Nil(t, identity)
	assert.Equal(t, http.StatusFound, rec.Code)
}

func TestGuard_NoCookiesSkipsResolution(t *testing.T) {
	resolved := false
	auth := &mockAuthUsecase{
		resolveSessionFn: func(_ context.Context, _, _ string) (*usecase.ResolveOutput, error) {
			resolved = true

			return nil, assert.AnError
		},
	}
	m := newTestSessionMiddleware(auth)

	req := httptest.NewRequest(http.MethodGet, "/pricing", nil)
	performGuard(t, m, req)

	assert.False(t, resolved)
}

func TestClearSessionCookies_ExpiresBoth(t *testing.T) {
	m := newTestSessionMiddleware(&mockAuthUsecase{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m.ClearSessionCookies(c)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 2)
	for _, cookie := range cookies {
		assert.Empty(t, cookie.Value)
		assert.Negative(t, cookie.MaxAge)
	}
}

func TestRequireIdentity_RejectsAnonymousWith401(t *testing.T) {
	m := newTestSessionMiddleware(&mockAuthUsecase{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/accounts", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := m.RequireIdentity(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequirePermission_EnforcesPolicy(t *testing.T) {
	m := newTestSessionMiddleware(&mockAuthUsecase{})

	run := func(role entity.Role) *httptest.ResponseRecorder {
		e := echo.New()
		req := httptest.NewRequest(http.MethodDelete, "/api/accounts/x", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set(identityContextKey, &entity.SessionIdentity{UserID: uuid.New(), Role: role})

		handler := m.RequirePermission("accounts", "delete")(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})
		require.NoError(t, handler(c))

		return rec
	}

	assert.Equal(t, http.StatusOK, run(entity.RoleAdmin).Code)
	assert.Equal(t, http.StatusOK, run(entity.RoleSales).Code)
	assert.Equal(t, http.StatusForbidden, run(entity.RoleStaff).Code)
}
