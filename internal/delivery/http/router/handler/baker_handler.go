package handler

import (
	"net/http"

	"bakery/internal/delivery/http/response"
	"bakery/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type bakersResponse struct {
	Bakers []*publicBakerView `json:"bakers"`
}

type bakerResponse struct {
	Baker *publicBakerView `json:"baker"`
}

// BakerHandler serves the public directory of approved bakers.
type BakerHandler struct {
	uc usecase.DirectoryUsecase
}

// BakerHandlerParams holds dependencies for BakerHandler, injected by Fx.
type BakerHandlerParams struct {
	fx.In

	DirectoryUC usecase.DirectoryUsecase
}

// NewBakerHandler is the constructor for BakerHandler.
func NewBakerHandler(params BakerHandlerParams) *BakerHandler {
	return &BakerHandler{uc: params.DirectoryUC}
}

// ListBakers lists approved bakers, newest first.
func (h *BakerHandler) ListBakers(c echo.Context) error {
	profiles, err := h.uc.ListApprovedBakers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, bakersResponse{Bakers: newPublicBakerViews(profiles)}, "Bakers retrieved successfully")
}

// GetBaker returns one approved baker.
func (h *BakerHandler) GetBaker(c echo.Context) error {
	profileID, err := profileIDParam(c)
	if err != nil {
		return err
	}

	profile, err := h.uc.GetBaker(c.Request().Context(), profileID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, bakerResponse{Baker: newPublicBakerView(profile)}, "Baker retrieved successfully")
}

// QRCode renders a PNG QR code linking to the baker's public page.
func (h *BakerHandler) QRCode(c echo.Context) error {
	profileID, err := profileIDParam(c)
	if err != nil {
		return err
	}

	png, err := h.uc.BakerQRCode(c.Request().Context(), profileID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
