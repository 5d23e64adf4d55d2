package context

import (
	"bakery/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// SetPrincipal stores the resolved caller in echo.Context.
func SetPrincipal(c echo.Context, principal entity.Principal) {
	c.Set(string(KeyPrincipal), principal)
}

// GetPrincipal returns the caller resolved by the auth middleware, if any.
func GetPrincipal(c echo.Context) (entity.Principal, bool) {
	principal, ok := c.Get(string(KeyPrincipal)).(entity.Principal)

	return principal, ok
}
