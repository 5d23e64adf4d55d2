package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "bakery/internal/delivery/context"
	"bakery/internal/domain/entity"
	domainerrors "bakery/internal/domain/errors"
	"bakery/internal/domain/repository"
	"bakery/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager   repository.TransactionManager
	profileRepo repository.ProfileRepository
	logger      *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProfileRepo repository.ProfileRepository
	Logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager:   params.TxManager,
		profileRepo: params.ProfileRepo,
		logger:      params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile returns the caller's own profile.
func (srv *profileService) GetProfile(ctx context.Context, principal entity.Principal) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindByUserID(ctx, principal.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.WithStack(domainerrors.ErrProfileNotFound)
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return profile, nil
}

// SubmitProfile creates or updates the caller's profile and replaces its education entries,
// all inside one transaction. Baker fields are applied only for BAKER owners.
func (srv *profileService) SubmitProfile(ctx context.Context, principal entity.Principal, input *usecase.SubmitProfileInput) (*usecase.SubmitProfileOutput, error) {
	firstName := strings.TrimSpace(input.FirstName)
	lastName := strings.TrimSpace(input.LastName)
	if firstName == "" || lastName == "" {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("First name and last name are required"))
	}

	photos := compactStrings(input.Photos)
	if len(photos) > entity.ProfilePhotoSlots {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("A profile holds at most 3 photos"))
	}

	education := toEducationEntries(input.Education)

	var (
		result  *entity.Profile
		created bool
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		owner, err := repoFactory.UserRepo().FindByID(ctx, principal.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.WithStack(domainerrors.ErrUserNotFound)
			}

			return errors.Wrap(err, "failed to find profile owner")
		}

		profileRepo := repoFactory.ProfileRepo()
		existing, err := profileRepo.FindByUserID(ctx, principal.UserID)
		if err != nil && !errors.Is(err, repository.ErrProfileNotFound) {
			return errors.Wrap(err, "failed to find profile")
		}

		profile := existing
		if profile == nil {
			profile = &entity.Profile{UserID: owner.ID, Specialties: []string{}}
			created = true
		}

		profile.FirstName = firstName
		profile.LastName = lastName
		profile.Bio = strings.TrimSpace(input.Bio)
		profile.Phone = strings.TrimSpace(input.Phone)
		profile.Photos = photos
		applyBakerDetails(profile, owner, input.Baker)

		if created {
			profile.Education = education
			if err := profileRepo.Create(ctx, profile); err != nil {
				return errors.Wrap(err, "failed to create profile")
			}
		} else {
			if err := profileRepo.Update(ctx, profile); err != nil {
				return errors.Wrap(err, "failed to update profile")
			}
			if err := profileRepo.ReplaceEducation(ctx, profile.ID, education); err != nil {
				return errors.Wrap(err, "failed to replace education entries")
			}
			profile.Education = education
		}

		profile.User = &entity.User{ID: owner.ID, Email: owner.Email, Role: owner.Role, CreatedAt: owner.CreatedAt}
		result = profile

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to submit profile", slog.Any("userID", principal.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute profile submission transaction")
	}

	srv.log(ctx).Info("Profile submitted",
		slog.Any("profileID", result.ID),
		slog.Bool("created", created),
		slog.Int("education", len(result.Education)),
	)

	return &usecase.SubmitProfileOutput{Profile: result, Created: created}, nil
}

// applyBakerDetails keeps the bakerStatus invariant: non-nil exactly when the owner is a baker.
// An existing status is never changed here.
func applyBakerDetails(profile *entity.Profile, owner *entity.User, details *usecase.BakerDetails) {
	if !owner.IsBaker() {
		profile.BusinessName = ""
		profile.BusinessAddress = ""
		profile.Specialties = []string{}
		profile.BakerStatus = nil

		return
	}

	if profile.BakerStatus == nil {
		profile.BakerStatus = entity.BakerStatusPending.Ptr()
	}
	if details == nil {
		return
	}
	if details.BusinessName != nil {
		profile.BusinessName = strings.TrimSpace(*details.BusinessName)
	}
	if details.BusinessAddress != nil {
		profile.BusinessAddress = strings.TrimSpace(*details.BusinessAddress)
	}
	if details.Specialties != nil {
		profile.Specialties = uniqueStrings(details.Specialties)
	}
}

func toEducationEntries(in []usecase.EducationInput) []*entity.EducationEntry {
	entries := make([]*entity.EducationEntry, 0, len(in))
	for _, e := range in {
		entry := &entity.EducationEntry{
			UniversityName: strings.TrimSpace(e.UniversityName),
			CourseName:     strings.TrimSpace(e.CourseName),
			GraduationYear: strings.TrimSpace(e.GraduationYear),
		}
		entries = append(entries, entry)
	}

	return entries
}

// compactStrings trims every value and drops the empty ones, keeping order.
func compactStrings(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}

	return out
}

// uniqueStrings is compactStrings without repeats; the first occurrence wins.
func uniqueStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range compactStrings(in) {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	return out
}
