package usecase

import (
	"context"

	"bakery/internal/domain/entity"
)

// EducationInput is one education line of a profile submission.
type EducationInput struct {
	UniversityName string
	CourseName     string
	GraduationYear string
}

// BakerDetails are the business fields only a BAKER may set.
// A nil field was omitted by the client and keeps its stored value.
type BakerDetails struct {
	BusinessName    *string
	BusinessAddress *string
	Specialties     []string
}

// SubmitProfileInput is the full profile as collected by the wizard.
// Education replaces the stored collection entirely.
type SubmitProfileInput struct {
	FirstName string
	LastName  string
	Bio       string
	Phone     string
	Photos    []string
	Education []EducationInput
	Baker     *BakerDetails
}

// SubmitProfileOutput reports whether the profile was created or updated.
type SubmitProfileOutput struct {
	Profile *entity.Profile
	Created bool
}

// ProfileUsecase defines the caller's own profile operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, principal entity.Principal) (*entity.Profile, error)
	SubmitProfile(ctx context.Context, principal entity.Principal, input *SubmitProfileInput) (*SubmitProfileOutput, error)
}
