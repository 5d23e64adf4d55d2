// Package wizard models the three-step profile wizard as a local draft that is
// submitted in one call once the last step is reached.
package wizard

import (
	"strings"

	"bakery/internal/domain/entity"
	domainerrors "bakery/internal/domain/errors"
	"bakery/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Step is a page of the wizard.
type Step int

const (
	StepPersonalInfo Step = iota + 1
	StepEducation
	StepPhotos
)

// EducationEntry is a draft education line; ID is local to the draft.
type EducationEntry struct {
	ID             string
	UniversityName string
	CourseName     string
	GraduationYear string
}

// Draft accumulates the wizard input. The zero value is not ready; use NewDraft.
type Draft struct {
	FirstName string
	LastName  string
	Bio       string
	Phone     string

	// Baker-only; dropped by Build for other roles.
	BusinessName    string
	BusinessAddress string
	Specialties     []string

	education []EducationEntry
	photos    [entity.ProfilePhotoSlots]string
	step      Step
}

// NewDraft starts an empty draft on the first step.
func NewDraft() *Draft {
	return &Draft{step: StepPersonalInfo}
}

// FromProfile starts a draft prefilled with a stored profile, for editing.
func FromProfile(profile *entity.Profile) *Draft {
	d := NewDraft()
	if profile == nil {
		return d
	}

	d.FirstName = profile.FirstName
	d.LastName = profile.LastName
	d.Bio = profile.Bio
	d.Phone = profile.Phone
	d.BusinessName = profile.BusinessName
	d.BusinessAddress = profile.BusinessAddress
	d.Specialties = append([]string(nil), profile.Specialties...)
	for i, ref := range profile.Photos {
		if i == len(d.photos) {
			break
		}
		d.photos[i] = ref
	}
	for _, e := range profile.Education {
		d.education = append(d.education, EducationEntry{
			ID:             e.ID.String(),
			UniversityName: e.UniversityName,
			CourseName:     e.CourseName,
			GraduationYear: e.GraduationYear,
		})
	}

	return d
}

// Step returns the current page.
func (d *Draft) Step() Step {
	return d.step
}

// Next moves forward, stopping at the photo step. Leaving the first step requires both names.
func (d *Draft) Next() error {
	if d.step == StepPersonalInfo &&
		(strings.TrimSpace(d.FirstName) == "" || strings.TrimSpace(d.LastName) == "") {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("First name and last name are required"))
	}
	if d.step < StepPhotos {
		d.step++
	}

	return nil
}

// Prev moves back, stopping at the first step.
func (d *Draft) Prev() {
	if d.step > StepPersonalInfo {
		d.step--
	}
}

// IsLastStep reports whether the next action is the submission.
func (d *Draft) IsLastStep() bool {
	return d.step == StepPhotos
}

// Education returns a copy of the draft education entries in insertion order.
func (d *Draft) Education() []EducationEntry {
	return append([]EducationEntry(nil), d.education...)
}

// SaveEducation adds entry, or replaces the entry with the same ID. It returns the entry ID.
func (d *Draft) SaveEducation(entry EducationEntry) string {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	for i := range d.education {
		if d.education[i].ID == entry.ID {
			d.education[i] = entry

			return entry.ID
		}
	}
	d.education = append(d.education, entry)

	return entry.ID
}

// RemoveEducation deletes the entry with id, reporting whether it existed.
func (d *Draft) RemoveEducation(id string) bool {
	for i := range d.education {
		if d.education[i].ID == id {
			d.education = append(d.education[:i], d.education[i+1:]...)

			return true
		}
	}

	return false
}

// SetPhoto puts a stored photo reference into slot (0-based). An empty ref clears the slot.
func (d *Draft) SetPhoto(slot int, ref string) error {
	if slot < 0 || slot >= len(d.photos) {
		return errors.Errorf("photo slot %d out of range [0,%d)", slot, len(d.photos))
	}
	d.photos[slot] = strings.TrimSpace(ref)

	return nil
}

// Photos returns the slots, empty strings marking unused ones.
func (d *Draft) Photos() [entity.ProfilePhotoSlots]string {
	return d.photos
}

// Build materializes the draft into a single profile submission for a caller with role.
// Empty photo slots are dropped; business fields are only sent for bakers.
func (d *Draft) Build(role entity.Role) *usecase.SubmitProfileInput {
	input := &usecase.SubmitProfileInput{
		FirstName: strings.TrimSpace(d.FirstName),
		LastName:  strings.TrimSpace(d.LastName),
		Bio:       strings.TrimSpace(d.Bio),
		Phone:     strings.TrimSpace(d.Phone),
		Photos:    make([]string, 0, len(d.photos)),
		Education: make([]usecase.EducationInput, 0, len(d.education)),
	}

	for _, ref := range d.photos {
		if ref != "" {
			input.Photos = append(input.Photos, ref)
		}
	}
	for _, e := range d.education {
		input.Education = append(input.Education, usecase.EducationInput{
			UniversityName: e.UniversityName,
			CourseName:     e.CourseName,
			GraduationYear: e.GraduationYear,
		})
	}

	if role == entity.RoleBaker {
		businessName, businessAddress := d.BusinessName, d.BusinessAddress
		input.Baker = &usecase.BakerDetails{
			BusinessName:    &businessName,
			BusinessAddress: &businessAddress,
			Specialties:     append([]string{}, d.Specialties...),
		}
	}

	return input
}
