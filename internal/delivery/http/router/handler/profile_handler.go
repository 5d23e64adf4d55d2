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

type educationRequest struct {
	UniversityName string `json:"universityName"`
	CourseName     string `json:"courseName"`
	GraduationYear string `json:"graduationYear"`
}

// submitProfileRequest is the wizard payload. Business fields are only kept for bakers.
// Web clients send education as "educationEntries", newer clients as "education".
type submitProfileRequest struct {
	FirstName        string             `json:"firstName"`
	LastName         string             `json:"lastName"`
	Bio              string             `json:"bio"`
	Phone            string             `json:"phone"`
	Photos           []string           `json:"photos"`
	Education        []educationRequest `json:"education"`
	EducationEntries []educationRequest `json:"educationEntries"`
	BusinessName     *string            `json:"businessName"`
	BusinessAddress  *string            `json:"businessAddress"`
	Specialties      []string           `json:"specialties"`
}

func (r *submitProfileRequest) toInput() *usecase.SubmitProfileInput {
	entries := r.Education
	if len(entries) == 0 {
		entries = r.EducationEntries
	}

	education := make([]usecase.EducationInput, 0, len(entries))
	for _, e := range entries {
		education = append(education, usecase.EducationInput(e))
	}

	return &usecase.SubmitProfileInput{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Bio:       r.Bio,
		Phone:     r.Phone,
		Photos:    r.Photos,
		Education: education,
		Baker: &usecase.BakerDetails{
			BusinessName:    r.BusinessName,
			BusinessAddress: r.BusinessAddress,
			Specialties:     r.Specialties,
		},
	}
}

type profileResponse struct {
	Profile *profileView `json:"profile"`
}

// ProfileHandler serves the caller's own profile.
type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
}

// NewProfileHandler is the constructor for ProfileHandler.
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{uc: params.ProfileUC}
}

// GetProfile returns the caller's profile.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	profile, err := h.uc.GetProfile(c.Request().Context(), principal)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profileResponse{Profile: newProfileView(profile)}, "Profile retrieved successfully")
}

// SubmitProfile creates or updates the caller's profile from the wizard payload.
func (h *ProfileHandler) SubmitProfile(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	var req submitProfileRequest
	if err := c.Bind(&req); err != nil {
		return errors.WithStack(domainerrors.ErrInvalidInput.WithDetails("Invalid profile input"))
	}

	output, err := h.uc.SubmitProfile(c.Request().Context(), principal, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	if output.Created {
		return response.Success(c, http.StatusCreated, profileResponse{Profile: newProfileView(output.Profile)}, "Profile created successfully")
	}

	return response.Success(c, http.StatusOK, profileResponse{Profile: newProfileView(output.Profile)}, "Profile updated successfully")
}
