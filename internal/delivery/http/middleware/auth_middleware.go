package middleware

import (
	"strings"

	"bakery/config"
	deliverycontext "bakery/internal/delivery/context"
	"bakery/internal/delivery/http/response"
	"bakery/internal/domain/entity"
	"bakery/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddleware resolves the caller's principal from a bearer token or the session cookie.
type AuthMiddleware struct {
	authUC     usecase.AuthUsecase
	cookieName string
}

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Config *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	cookieName := "session"
	if params.Config.Auth != nil && params.Config.Auth.CookieName != "" {
		cookieName = params.Config.Auth.CookieName
	}

	return &AuthMiddleware{authUC: params.AuthUC, cookieName: cookieName}
}

// CookieName is the name of the session cookie carrying the token.
func (m *AuthMiddleware) CookieName() string {
	return m.cookieName
}

// Authenticate accepts a bearer token or the session cookie; the bearer token wins when both are sent.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return m.authenticate(next, true)
}

// AuthenticateBearer accepts only a bearer token, for mobile clients.
func (m *AuthMiddleware) AuthenticateBearer(next echo.HandlerFunc) echo.HandlerFunc {
	return m.authenticate(next, false)
}

func (m *AuthMiddleware) authenticate(next echo.HandlerFunc, allowCookie bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := m.tokenFrom(c, allowCookie)
		if !ok {
			return response.Unauthorized(c, "UNAUTHORIZED", "Unauthorized")
		}

		principal, err := m.authUC.Authenticate(c.Request().Context(), token)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
		}

		deliverycontext.SetPrincipal(c, *principal)

		return next(c)
	}
}

func (m *AuthMiddleware) tokenFrom(c echo.Context, allowCookie bool) (string, bool) {
	if authHeader := c.Request().Header.Get(echo.HeaderAuthorization); strings.HasPrefix(authHeader, bearerPrefix) {
		if token := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix)); token != "" {
			return token, true
		}
	}

	if !allowCookie {
		return "", false
	}

	cookie, err := c.Cookie(m.cookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}

	return cookie.Value, true
}

// RequireRole rejects callers whose role is not one of roles.
// It must be used AFTER one of the Authenticate middlewares.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := deliverycontext.GetPrincipal(c)
			if !ok {
				return response.Unauthorized(c, "UNAUTHORIZED", "Unauthorized")
			}

			for _, role := range roles {
				if principal.Role == role {
					return next(c)
				}
			}

			return response.Forbidden(c, "FORBIDDEN", "Forbidden")
		}
	}
}
