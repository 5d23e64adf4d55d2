package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bakery/config"
	deliverycontext "bakery/internal/delivery/context"
	"bakery/internal/domain/entity"
	domainerrors "bakery/internal/domain/errors"
	mockUsecase "bakery/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestAuthMiddleware(t *testing.T) (*AuthMiddleware, *mockUsecase.MockAuthUsecase) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	cfg := &config.Config{Auth: &config.AuthConfig{CookieName: "bakery_session"}}

	return NewAuthMiddleware(AuthMiddlewareParams{AuthUC: authUC, Config: cfg}), authUC
}

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func whoAmI(c echo.Context) error {
	principal, _ := deliverycontext.GetPrincipal(c)

	return c.String(http.StatusOK, principal.Email)
}

func TestAuthMiddleware_Authenticate_TokenSources(t *testing.T) {
	bearerPrincipal := &entity.Principal{UserID: uuid.New(), Email: "bearer@example.com", Role: entity.RoleUser}
	cookiePrincipal := &entity.Principal{UserID: uuid.New(), Email: "cookie@example.com", Role: entity.RoleUser}

	tests := []struct {
		name      string
		header    string
		cookie    string
		wantToken string
		wantEmail string
	}{
		{name: "bearer", header: "Bearer b-token", wantToken: "b-token", wantEmail: bearerPrincipal.Email},
		{name: "cookie", cookie: "c-token", wantToken: "c-token", wantEmail: cookiePrincipal.Email},
		{name: "bearer wins", header: "Bearer b-token", cookie: "c-token", wantToken: "b-token", wantEmail: bearerPrincipal.Email},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, authUC := newTestAuthMiddleware(t)
			principal := bearerPrincipal
			if tt.wantToken == "c-token" {
				principal = cookiePrincipal
			}
			authUC.EXPECT().Authenticate(mock.Anything, tt.wantToken).Return(principal, nil)

			e := echo.New()
			e.GET("/me", whoAmI, m.Authenticate)

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "bakery_session", Value: tt.cookie})
			}
			rec := serve(e, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.wantEmail, rec.Body.String())
		})
	}
}

func TestAuthMiddleware_Authenticate_Rejections(t *testing.T) {
	t.Run("no credentials", func(t *testing.T) {
		m, _ := newTestAuthMiddleware(t)
		e := echo.New()
		e.GET("/me", whoAmI, m.Authenticate)

		rec := serve(e, httptest.NewRequest(http.MethodGet, "/me", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		m, authUC := newTestAuthMiddleware(t)
		authUC.EXPECT().Authenticate(mock.Anything, "stale").Return(nil, domainerrors.ErrUnauthorized)
		e := echo.New()
		e.GET("/me", whoAmI, m.Authenticate)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer stale")
		rec := serve(e, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("bearer only ignores the cookie", func(t *testing.T) {
		m, _ := newTestAuthMiddleware(t)
		e := echo.New()
		e.GET("/me", whoAmI, m.AuthenticateBearer)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: "bakery_session", Value: "c-token"})
		rec := serve(e, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	tests := []struct {
		name       string
		role       entity.Role
		wantStatus int
	}{
		{name: "admin passes", role: entity.RoleAdmin, wantStatus: http.StatusOK},
		{name: "baker is forbidden", role: entity.RoleBaker, wantStatus: http.StatusForbidden},
		{name: "user is forbidden", role: entity.RoleUser, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, authUC := newTestAuthMiddleware(t)
			authUC.EXPECT().Authenticate(mock.Anything, "tok").
				Return(&entity.Principal{UserID: uuid.New(), Email: "x@example.com", Role: tt.role}, nil)

			reached := false
			e := echo.New()
			e.GET("/admin", func(c echo.Context) error {
				reached = true

				return c.NoContent(http.StatusOK)
			}, m.Authenticate, m.RequireRole(entity.RoleAdmin))

			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			req.Header.Set(echo.HeaderAuthorization, "Bearer tok")
			rec := serve(e, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantStatus == http.StatusOK, reached)
		})
	}
}

func TestAuthMiddleware_RequireRole_WithoutPrincipal(t *testing.T) {
	m, _ := newTestAuthMiddleware(t)
	e := echo.New()
	e.GET("/admin", whoAmI, m.RequireRole(entity.RoleAdmin))

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/admin", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNewAuthMiddleware_DefaultCookieName(t *testing.T) {
	m := NewAuthMiddleware(AuthMiddlewareParams{AuthUC: mockUsecase.NewMockAuthUsecase(t), Config: &config.Config{}})

	assert.Equal(t, "session", m.CookieName())
}
