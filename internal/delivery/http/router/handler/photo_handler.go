package handler

import (
	"io"
	"net/http"
	"strconv"

	"bakery/internal/delivery/http/response"
	domainerrors "bakery/internal/domain/errors"
	"bakery/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const photoFormField = "photo"

type photoResponse struct {
	Reference   string `json:"reference"`
	ContentType string `json:"contentType"`
	Size        int    `json:"size"`
	Checksum    string `json:"checksum"`
}

// PhotoHandler accepts profile photo uploads and serves stored photos.
type PhotoHandler struct {
	uc usecase.PhotoUsecase
}

// PhotoHandlerParams holds dependencies for PhotoHandler, injected by Fx.
type PhotoHandlerParams struct {
	fx.In

	PhotoUC usecase.PhotoUsecase
}

// NewPhotoHandler is the constructor for PhotoHandler.
func NewPhotoHandler(params PhotoHandlerParams) *PhotoHandler {
	return &PhotoHandler{uc: params.PhotoUC}
}

// Upload stores the multipart "photo" file and returns the reference to put in a profile photo slot.
func (h *PhotoHandler) Upload(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile(photoFormField)
	if err != nil {
		return errors.WithStack(domainerrors.ErrMissingFields.WithDetails("Missing required fields: photo"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded photo")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return errors.Wrap(err, "failed to read uploaded photo")
	}

	output, err := h.uc.UploadPhoto(c.Request().Context(), principal, &usecase.UploadPhotoInput{
		Filename: fileHeader.Filename,
		Data:     data,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, photoResponse{
		Reference:   output.Reference,
		ContentType: output.ContentType,
		Size:        output.Size,
		Checksum:    output.Checksum,
	}, "Photo uploaded successfully")
}

// Serve streams a stored photo; the wildcard is the part of the reference after the public path.
func (h *PhotoHandler) Serve(c echo.Context) error {
	photo, err := h.uc.OpenPhoto(c.Request().Context(), c.Param("*"))
	if err != nil {
		return errors.WithStack(err)
	}
	defer photo.Body.Close()

	header := c.Response().Header()
	header.Set("Cache-Control", "public, max-age=86400")
	if photo.Size > 0 {
		header.Set(echo.HeaderContentLength, strconv.FormatInt(photo.Size, 10))
	}

	return c.Stream(http.StatusOK, photo.ContentType, photo.Body)
}
