package handler

import (
	"net/http"

	"bakery/internal/delivery/http/response"
	domainerrors "bakery/internal/domain/errors"
	"bakery/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type updateBakerStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING APPROVED REJECTED"`
}

type bakersAdminResponse struct {
	Bakers []*profileView `json:"bakers"`
}

type bakerAdminResponse struct {
	Baker *profileView `json:"baker"`
}

// AdminHandler serves the baker review workflow.
type AdminHandler struct {
	uc usecase.AdminUsecase
}

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
}

// NewAdminHandler is the constructor for AdminHandler.
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{uc: params.AdminUC}
}

// ListBakers lists baker profiles, optionally filtered by ?status=.
func (h *AdminHandler) ListBakers(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	profiles, err := h.uc.ListBakers(c.Request().Context(), principal, c.QueryParam("status"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, bakersAdminResponse{Bakers: newProfileViews(profiles)}, "Bakers retrieved successfully")
}

// UpdateBakerStatus approves, rejects or resets a baker profile.
func (h *AdminHandler) UpdateBakerStatus(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	profileID, err := profileIDParam(c)
	if err != nil {
		return err
	}

	var req updateBakerStatusRequest
	if err := c.Bind(&req); err != nil {
		return errors.WithStack(domainerrors.ErrInvalidInput.WithDetails("Invalid status input"))
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(domainerrors.ErrInvalidBakerStatus)
	}

	profile, err := h.uc.UpdateBakerStatus(c.Request().Context(), principal, profileID, req.Status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, bakerAdminResponse{Baker: newProfileView(profile)}, "Baker status updated successfully")
}
