package middleware

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"freshware/config"
	deliverycontext "freshware/internal/delivery/context"
	"freshware/internal/delivery/http/response"
	"freshware/internal/domain/entity"
	"freshware/internal/domain/policy"
	"freshware/internal/usecase"

	"github.com/labstack/echo/v4"
)

// Cookie names for the session token pair.
const (
	CookieAccessToken  = "fw_access"
	CookieRefreshToken = "fw_refresh"
)

const (
	accessCookieTTL  = 15 * time.Minute
	refreshCookieTTL = 7 * 24 * time.Hour

	identityContextKey = "sessionIdentity"
)

const defaultLoginPath = "/login"

// SessionMiddleware is the edge guard for the portal. It resolves the
// caller's cookies to an identity on every request, silently rotating tokens
// when the access token has gone stale, and gates the configured protected
// path prefixes. Resolution failures are never fatal: the caller is simply
// anonymous, and anonymous callers get redirected off protected paths.
type SessionMiddleware struct {
	authUsecase       usecase.AuthUsecase
	protectedPrefixes []string
	loginPath         string
	cookieDomain      string
	cookieSecure      bool
	logger            *slog.Logger
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(authUsecase usecase.AuthUsecase, cfg *config.Config, logger *slog.Logger) *SessionMiddleware {
	m := &SessionMiddleware{
		authUsecase: authUsecase,
		loginPath:   defaultLoginPath,
		logger:      logger,
	}
	if cfg.Session != nil {
		m.protectedPrefixes = cfg.Session.ProtectedPrefixes
		m.cookieDomain = cfg.Session.CookieDomain
		m.cookieSecure = cfg.Session.CookieSecure
		if cfg.Session.LoginPath != "" {
			m.loginPath = cfg.Session.LoginPath
		}
	}

	return m
}

// Guard runs on every request. Auth work only happens when the caller
// presents cookies or the path is protected, so public traffic stays cheap.
func (m *SessionMiddleware) Guard(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity := m.resolveIdentity(c)
		if identity != nil {
			c.Set(identityContextKey, identity)
		}

		if m.isProtectedPath(c.Request().URL.Path) && identity == nil {
			return m.redirectToLogin(c)
		}

		return next(c)
	}
}

// resolveIdentity turns cookies into an identity, applying rotated cookies to
// the response when the session refreshes mid-request. Every failure path
// returns nil: a broken cookie must look exactly like no cookie.
func (m *SessionMiddleware) resolveIdentity(c echo.Context) (identity *entity.SessionIdentity) {
	// The guard fronts every route; a panic anywhere below must degrade to
	// an anonymous request, not a crash.
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("Session resolution panicked", slog.Any("panic", r))
			identity = nil
		}
	}()

	accessToken := cookieValue(c, CookieAccessToken)
	refreshToken := cookieValue(c, CookieRefreshToken)
	if accessToken == "" && refreshToken == "" {
		return nil
	}

	out, err := m.authUsecase.ResolveSession(c.Request().Context(), accessToken, refreshToken)
	if err != nil {
		return nil
	}

	if out.Rotated != nil {
		m.setSessionCookies(c, out.Rotated)
	}

	return out.Identity
}

func (m *SessionMiddleware) isProtectedPath(path string) bool {
	for _, prefix := range m.protectedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}

	return false
}

// redirectToLogin sends the anonymous caller to the login page, preserving
// the originally requested URL in the next parameter.
func (m *SessionMiddleware) redirectToLogin(c echo.Context) error {
	target := m.loginPath + "?next=" + url.QueryEscape(c.Request().URL.RequestURI())

	return c.Redirect(http.StatusFound, target)
}

// SetSessionCookies writes a token pair to the response, used on login.
func (m *SessionMiddleware) SetSessionCookies(c echo.Context, tokens *usecase.TokenPair) {
	m.setSessionCookies(c, tokens)
}

// ClearSessionCookies expires both cookies, used on logout.
func (m *SessionMiddleware) ClearSessionCookies(c echo.Context) {
	c.SetCookie(m.buildCookie(CookieAccessToken, "", -1))
	c.SetCookie(m.buildCookie(CookieRefreshToken, "", -1))
}

func (m *SessionMiddleware) setSessionCookies(c echo.Context, tokens *usecase.TokenPair) {
	c.SetCookie(m.buildCookie(CookieAccessToken, tokens.AccessToken, int(accessCookieTTL.Seconds())))
	c.SetCookie(m.buildCookie(CookieRefreshToken, tokens.RefreshToken, int(refreshCookieTTL.Seconds())))
}

func (m *SessionMiddleware) buildCookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   m.cookieDomain,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   m.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}

// RequireIdentity rejects anonymous callers with 401. Used on the JSON API
// groups, where a redirect would make no sense.
func (m *SessionMiddleware) RequireIdentity(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := GetIdentity(c); !ok {
			return response.Unauthorized(c, "SESSION_INVALID", "Sign in required")
		}

		return next(c)
	}
}

// RequirePermission checks the caller's role against the authorization policy
// for one resource and action. It must run after Guard.
func (m *SessionMiddleware) RequirePermission(resource policy.Resource, action policy.Action) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := GetIdentity(c)
			if !ok {
				return response.Unauthorized(c, "SESSION_INVALID", "Sign in required")
			}

			if !policy.Allowed(identity.Role, resource, action) {
				m.log(c).Warn("Permission denied",
					slog.Any("userID", identity.UserID),
					slog.String("role", identity.Role.String()),
					slog.String("resource", string(resource)),
					slog.String("action", string(action)))

				return response.Forbidden(c, "FORBIDDEN", "Access denied")
			}

			return next(c)
		}
	}
}

func (m *SessionMiddleware) log(c echo.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
}

// GetIdentity extracts the authenticated caller set by Guard.
func GetIdentity(c echo.Context) (*entity.SessionIdentity, bool) {
	identity, ok := c.Get(identityContextKey).(*entity.SessionIdentity)
	if !ok || identity == nil {
		return nil, false
	}

	return identity, true
}

func cookieValue(c echo.Context, name string) string {
	cookie, err := c.Cookie(name)
	if err != nil || cookie == nil {
		return ""
	}

	return cookie.Value
}
