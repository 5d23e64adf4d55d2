package handler

import (
	deliverycontext "bakery/internal/delivery/context"
	domainerrors "bakery/internal/domain/errors"
	"bakery/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// principalFrom returns the caller resolved by the auth middleware.
func principalFrom(c echo.Context) (entity.Principal, error) {
	principal, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return entity.Principal{}, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	return principal, nil
}

// profileIDParam parses the :id path parameter; malformed ids are a 400.
func profileIDParam(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, errors.WithStack(domainerrors.ErrInvalidInput.WithDetails("Invalid profile id"))
	}

	return id, nil
}
