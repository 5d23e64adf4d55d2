package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProfilePhotoSlots is the number of photos the profile wizard collects.
const ProfilePhotoSlots = 3

// Profile holds the personal and (for bakers) business information of a user.
// BakerStatus is non-nil iff the owning user has RoleBaker.
type Profile struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	FirstName       string
	LastName        string
	Bio             string
	Phone           string
	Photos          []string
	BusinessName    string
	BusinessAddress string
	Specialties     []string
	BakerStatus     *BakerStatus
	Education       []*EducationEntry
	User            *User // Owner summary, populated by queries that join users.
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// EducationEntry is one line of a profile's education history.
type EducationEntry struct {
	ID             uuid.UUID
	ProfileID      uuid.UUID
	UniversityName string
	CourseName     string
	GraduationYear string // Free text, e.g. "2019" or "expected 2026".
	CreatedAt      time.Time
}

// OwnedByBaker reports whether the owner (when loaded) is a baker.
func (p *Profile) OwnedByBaker() bool {
	return p != nil && p.User.IsBaker()
}

// HasStatus reports whether the profile currently carries the given approval status.
func (p *Profile) HasStatus(status BakerStatus) bool {
	return p != nil && p.BakerStatus != nil && *p.BakerStatus == status
}

// IsApprovedBaker reports whether the profile is visible in the directory and may receive orders.
func (p *Profile) IsApprovedBaker() bool {
	return p.OwnedByBaker() && p.HasStatus(BakerStatusApproved)
}
