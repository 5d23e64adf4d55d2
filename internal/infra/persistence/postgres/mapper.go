package postgres

import (
	"bakery/internal/domain/entity"
	"bakery/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Role:         entity.Role(data.Role),
		Profile:      toProfileDomain(data.Profile),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Role:         data.Role.String(),
		Profile:      fromProfileDomain(data.Profile),
	}
}

// toProfileDomain converts a GORM ProfileModel to a domain Profile entity.
func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	profile := &entity.Profile{
		ID:              data.ID,
		UserID:          data.UserID,
		FirstName:       data.FirstName,
		LastName:        data.LastName,
		Bio:             data.Bio,
		Phone:           data.Phone,
		Photos:          cloneStrings(data.Photos),
		BusinessName:    data.BusinessName,
		BusinessAddress: data.BusinessAddress,
		Specialties:     cloneStrings(data.Specialties),
		Education:       toEducationDomain(data.Education),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
	if data.BakerStatus != nil {
		profile.BakerStatus = entity.BakerStatus(*data.BakerStatus).Ptr()
	}
	if data.User != nil {
		// The owner summary never carries the profile back.
		owner := *data.User
		owner.Profile = nil
		profile.User = toUserDomain(&owner)
	}

	return profile
}

// fromProfileDomain converts a domain Profile entity to a GORM ProfileModel. Owner is not mapped.
func fromProfileDomain(data *entity.Profile) *model.ProfileModel {
	if data == nil {
		return nil
	}

	profile := &model.ProfileModel{
		ID:              data.ID,
		UserID:          data.UserID,
		FirstName:       data.FirstName,
		LastName:        data.LastName,
		Bio:             data.Bio,
		Phone:           data.Phone,
		Photos:          datatypes.JSONSlice[string](cloneStrings(data.Photos)),
		BusinessName:    data.BusinessName,
		BusinessAddress: data.BusinessAddress,
		Specialties:     datatypes.JSONSlice[string](cloneStrings(data.Specialties)),
		Education:       fromEducationDomain(data.ID, data.Education),
	}
	if data.BakerStatus != nil {
		status := data.BakerStatus.String()
		profile.BakerStatus = &status
	}

	return profile
}

func toEducationDomain(data []*model.EducationEntryModel) []*entity.EducationEntry {
	entries := make([]*entity.EducationEntry, 0, len(data))
	for _, e := range data {
		entries = append(entries, &entity.EducationEntry{
			ID:             e.ID,
			ProfileID:      e.ProfileID,
			UniversityName: e.InstitutionName,
			CourseName:     e.CourseName,
			GraduationYear: e.GraduationYear,
			CreatedAt:      e.CreatedAt,
		})
	}

	return entries
}

func fromEducationDomain(profileID uuid.UUID, data []*entity.EducationEntry) []*model.EducationEntryModel {
	entries := make([]*model.EducationEntryModel, 0, len(data))
	for _, e := range data {
		entries = append(entries, &model.EducationEntryModel{
			ID:              e.ID,
			ProfileID:       profileID,
			InstitutionName: e.UniversityName,
			CourseName:      e.CourseName,
			GraduationYear:  e.GraduationYear,
		})
	}

	return entries
}

// toOrderDomain converts a GORM OrderModel, with whatever joins were preloaded, to a domain Order.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	return &entity.Order{
		ID:          data.ID,
		UserID:      data.UserID,
		BakerID:     data.BakerID,
		PastryType:  data.PastryType,
		Quantity:    data.Quantity,
		TotalAmount: data.TotalAmount,
		Status:      data.Status,
		User:        toUserDomain(data.User),
		Baker:       toProfileDomain(data.Baker),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	return &model.OrderModel{
		ID:          data.ID,
		UserID:      data.UserID,
		BakerID:     data.BakerID,
		PastryType:  data.PastryType,
		Quantity:    data.Quantity,
		TotalAmount: data.TotalAmount,
		Status:      data.Status,
	}
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)

	return out
}
