package postgres

import (
	"context"

	"bakery/internal/domain/entity"
	domainerrors "bakery/internal/domain/errors"
	"bakery/internal/domain/repository"
	"bakery/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// profileUpdateColumns are overwritten on every profile submission, zero values included.
var profileUpdateColumns = []string{
	"first_name", "last_name", "bio", "phone", "photos",
	"business_name", "business_address", "specialties", "baker_status",
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a profile repository bound to db (or a transaction).
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func educationByCreation(db *gorm.DB) *gorm.DB {
	return db.Order("education_entries.created_at ASC")
}

func (repo *profileRepository) findOne(ctx context.Context, query string, arg any) (*entity.Profile, error) {
	var profileM model.ProfileModel
	err := repo.db.WithContext(ctx).
		Preload("User").
		Preload("Education", educationByCreation).
		Where(query, arg).
		First(&profileM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return toProfileDomain(&profileM), nil
}

// FindByID loads a profile with its owner and education entries.
func (repo *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	return repo.findOne(ctx, "profiles.id = ?", id)
}

// FindByUserID loads the profile owned by userID.
func (repo *profileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	return repo.findOne(ctx, "profiles.user_id = ?", userID)
}

// Create inserts a profile together with its education entries.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrProfileUpdateFailed.WrapMessage("profile already exists for user")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("profile owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	profile.ID = profileM.ID
	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt
	profile.Education = toEducationDomain(profileM.Education)

	return nil
}

// Update overwrites the profile's own columns. Education entries are left alone.
func (repo *profileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)
	profileM.Education = nil

	result := repo.db.WithContext(ctx).
		Model(profileM).
		Select(profileUpdateColumns).
		Updates(profileM)
	if result.Error != nil {
		if isNotNullConstraintViolation(result.Error) {
			return domainerrors.ErrProfileUpdateFailed.WrapMessage("missing required profile information")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// ReplaceEducation deletes the profile's education entries and inserts the given ones.
// Run it inside TransactionManager.Execute so readers never observe the gap.
func (repo *profileRepository) ReplaceEducation(ctx context.Context, profileID uuid.UUID, entries []*entity.EducationEntry) error {
	db := repo.db.WithContext(ctx)

	if err := db.Where("profile_id = ?", profileID).Delete(&model.EducationEntryModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete education entries")
	}
	if len(entries) == 0 {
		return nil
	}

	entriesM := fromEducationDomain(profileID, entries)
	if err := db.Create(&entriesM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProfileNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create education entries")
	}

	for i, e := range entriesM {
		entries[i].ID = e.ID
		entries[i].ProfileID = profileID
		entries[i].CreatedAt = e.CreatedAt
	}

	return nil
}

// ListBakers returns profiles whose owner is a BAKER, newest first.
func (repo *profileRepository) ListBakers(ctx context.Context, filter repository.BakerFilter) ([]*entity.Profile, error) {
	query := repo.db.WithContext(ctx).
		Joins("User").
		Preload("Education", educationByCreation).
		Where(`"User"."role" = ?`, entity.RoleBaker.String())
	if filter.Status != nil {
		query = query.Where("profiles.baker_status = ?", filter.Status.String())
	}

	var profilesM []*model.ProfileModel
	if err := query.Order("profiles.created_at DESC").Find(&profilesM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list baker profiles")
	}

	profiles := make([]*entity.Profile, 0, len(profilesM))
	for _, p := range profilesM {
		profiles = append(profiles, toProfileDomain(p))
	}

	return profiles, nil
}

// UpdateBakerStatus sets the approval status of a profile.
func (repo *profileRepository) UpdateBakerStatus(ctx context.Context, id uuid.UUID, status entity.BakerStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("id = ?", id).
		Update("baker_status", status.String())
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update baker status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}
