package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ProfileModel mirrors the 'profiles' table. UserID is unique: one profile per user.
type ProfileModel struct {
	ID              uuid.UUID                   `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID          uuid.UUID                   `gorm:"type:uuid;uniqueIndex;not null"`
	FirstName       string                      `gorm:"type:varchar(100);not null"`
	LastName        string                      `gorm:"type:varchar(100);not null"`
	Bio             string                      `gorm:"type:text"`
	Phone           string                      `gorm:"type:varchar(32)"`
	Photos          datatypes.JSONSlice[string] `gorm:"type:jsonb;not null;default:'[]'"`
	BusinessName    string                      `gorm:"type:varchar(255)"`
	BusinessAddress string                      `gorm:"type:text"`
	Specialties     datatypes.JSONSlice[string] `gorm:"type:jsonb;not null;default:'[]'"`
	BakerStatus     *string                     `gorm:"type:varchar(16);index"`
	CreatedAt       time.Time                   `gorm:"index"`
	UpdatedAt       time.Time

	User      *UserModel             `gorm:"foreignKey:UserID"`
	Education []*EducationEntryModel `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}

// EducationEntryModel mirrors the 'education_entries' table.
type EducationEntryModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ProfileID       uuid.UUID `gorm:"type:uuid;index;not null"`
	InstitutionName string    `gorm:"type:varchar(255);not null"`
	CourseName      string    `gorm:"type:varchar(255);not null"`
	GraduationYear  string    `gorm:"type:varchar(16)"`
	CreatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (EducationEntryModel) TableName() string {
	return "education_entries"
}
