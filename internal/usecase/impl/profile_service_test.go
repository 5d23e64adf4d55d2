package impl

import (
	"context"
	"testing"

	"bakery/internal/domain/entity"
	domainerrors "bakery/internal/domain/errors"
	"bakery/internal/domain/repository"
	mockRepo "bakery/internal/mocks/repository"
	"bakery/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type profileServiceFixtures struct {
	service     usecase.ProfileUsecase
	txManager   *mockRepo.MockTransactionManager
	profileRepo *mockRepo.MockProfileRepository
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	fixtures := profileServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		profileRepo: mockRepo.NewMockProfileRepository(t),
	}
	fixtures.service = NewProfileService(ProfileServiceParams{
		TxManager:   fixtures.txManager,
		ProfileRepo: fixtures.profileRepo,
		Logger:      newDiscardLogger(),
	})

	return fixtures
}

func TestProfileService_GetProfile(t *testing.T) {
	principal := principalOf(entity.RoleUser)

	t.Run("found", func(t *testing.T) {
		fx := createTestProfileService(t)
		profile := customerProfile()
		fx.profileRepo.EXPECT().FindByUserID(mock.Anything, principal.UserID).Return(profile, nil)

		got, err := fx.service.GetProfile(context.Background(), principal)

		require.NoError(t, err)
		assert.Equal(t, profile, got)
	})

	t.Run("not found", func(t *testing.T) {
		fx := createTestProfileService(t)
		fx.profileRepo.EXPECT().FindByUserID(mock.Anything, principal.UserID).Return(nil, repository.ErrProfileNotFound)

		_, err := fx.service.GetProfile(context.Background(), principal)

		assert.True(t, errors.Is(err, domainerrors.ErrProfileNotFound))
	})
}

func TestProfileService_SubmitProfile_CreatesCustomerProfile(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	principal := principalOf(entity.RoleUser)
	owner := &entity.User{ID: principal.UserID, Email: principal.Email, Role: entity.RoleUser}

	var saved *entity.Profile
	onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		profileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().UserRepo().Return(userRepo)
		factory.EXPECT().ProfileRepo().Return(profileRepo)
		userRepo.EXPECT().FindByID(ctx, principal.UserID).Return(owner, nil)
		profileRepo.EXPECT().FindByUserID(ctx, principal.UserID).Return(nil, repository.ErrProfileNotFound)
		profileRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Profile")).
			RunAndReturn(func(_ context.Context, profile *entity.Profile) error {
				saved = profile

				return nil
			})
	})

	out, err := fx.service.SubmitProfile(ctx, principal, &usecase.SubmitProfileInput{
		FirstName: " Cai ",
		LastName:  "Customer",
		Photos:    []string{"/photos/a.png", " ", "/photos/b.png"},
		Education: []usecase.EducationInput{
			{UniversityName: "Culinary Institute", CourseName: "Pastry", GraduationYear: "2019"},
			{},
		},
		Baker: &usecase.BakerDetails{BusinessName: stringPtr("Ignored"), Specialties: []string{"bread"}},
	})

	require.NoError(t, err)
	assert.True(t, out.Created)
	require.NotNil(t, saved)
	assert.Equal(t, "Cai", saved.FirstName)
	assert.Equal(t, []string{"/photos/a.png", "/photos/b.png"}, saved.Photos)
	assert.Nil(t, saved.BakerStatus)
	assert.Empty(t, saved.BusinessName)
	assert.Empty(t, saved.Specialties)
	require.Len(t, saved.Education, 2)
	assert.Equal(t, "Pastry", saved.Education[0].CourseName)
	assert.Empty(t, saved.Education[1].UniversityName)
	assert.Equal(t, entity.RoleUser, out.Profile.User.Role)
}

func TestProfileService_SubmitProfile_NewBakerProfileIsPending(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	principal := principalOf(entity.RoleBaker)
	owner := &entity.User{ID: principal.UserID, Role: entity.RoleBaker}

	onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		profileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().UserRepo().Return(userRepo)
		factory.EXPECT().ProfileRepo().Return(profileRepo)
		userRepo.EXPECT().FindByID(ctx, principal.UserID).Return(owner, nil)
		profileRepo.EXPECT().FindByUserID(ctx, principal.UserID).Return(nil, repository.ErrProfileNotFound)
		profileRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Profile")).Return(nil)
	})

	out, err := fx.service.SubmitProfile(ctx, principal, &usecase.SubmitProfileInput{
		FirstName: "Ada",
		LastName:  "Baker",
		Baker: &usecase.BakerDetails{
			BusinessName: stringPtr("Ada's Oven"),
			Specialties:  []string{"sourdough", "croissant", "sourdough", ""},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, entity.BakerStatusPending.Ptr(), out.Profile.BakerStatus)
	assert.Equal(t, "Ada's Oven", out.Profile.BusinessName)
	assert.Equal(t, []string{"sourdough", "croissant"}, out.Profile.Specialties)
}

func TestProfileService_SubmitProfile_UpdateKeepsStatusAndReplacesEducation(t *testing.T) {
	tests := []struct {
		name      string
		education []usecase.EducationInput
		wantLen   int
	}{
		{name: "cleared", education: nil, wantLen: 0},
		{
			name: "replaced",
			education: []usecase.EducationInput{
				{UniversityName: "A", CourseName: "Bread", GraduationYear: "2015"},
				{UniversityName: "B", CourseName: "Cakes", GraduationYear: "expected 2026"},
			},
			wantLen: 2,
		},
		{
			name: "blank entries are kept",
			education: []usecase.EducationInput{
				{UniversityName: "A", CourseName: "Bread"},
				{},
			},
			wantLen: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProfileService(t)
			ctx := context.Background()
			existing := bakerProfile(entity.BakerStatusApproved.Ptr())
			existing.Education = []*entity.EducationEntry{{ID: uuid.New(), CourseName: "Old"}}
			principal := entity.Principal{UserID: existing.UserID, Role: entity.RoleBaker}
			owner := &entity.User{ID: existing.UserID, Role: entity.RoleBaker}

			var replaced []*entity.EducationEntry
			onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
				userRepo := mockRepo.NewMockUserRepository(t)
				profileRepo := mockRepo.NewMockProfileRepository(t)
				factory.EXPECT().UserRepo().Return(userRepo)
				factory.EXPECT().ProfileRepo().Return(profileRepo)
				userRepo.EXPECT().FindByID(ctx, existing.UserID).Return(owner, nil)
				profileRepo.EXPECT().FindByUserID(ctx, existing.UserID).Return(existing, nil)
				profileRepo.EXPECT().Update(ctx, existing).Return(nil)
				profileRepo.EXPECT().ReplaceEducation(ctx, existing.ID, mock.Anything).
					RunAndReturn(func(_ context.Context, _ uuid.UUID, entries []*entity.EducationEntry) error {
						replaced = entries

						return nil
					})
			})

			out, err := fx.service.SubmitProfile(ctx, principal, &usecase.SubmitProfileInput{
				FirstName: "Ada",
				LastName:  "Baker",
				Education: tt.education,
			})

			require.NoError(t, err)
			assert.False(t, out.Created)
			assert.Equal(t, entity.BakerStatusApproved.Ptr(), out.Profile.BakerStatus)
			assert.Equal(t, []string{"sourdough"}, out.Profile.Specialties)
			assert.Len(t, replaced, tt.wantLen)
			assert.Len(t, out.Profile.Education, tt.wantLen)
		})
	}
}

func TestProfileService_SubmitProfile_OmittedBusinessFieldsAreKept(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	existing := bakerProfile(entity.BakerStatusApproved.Ptr())
	existing.BusinessName = "Ada's Oven"
	existing.BusinessAddress = "2 Rye Road"
	principal := entity.Principal{UserID: existing.UserID, Role: entity.RoleBaker}
	owner := &entity.User{ID: existing.UserID, Role: entity.RoleBaker}

	onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		profileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().UserRepo().Return(userRepo)
		factory.EXPECT().ProfileRepo().Return(profileRepo)
		userRepo.EXPECT().FindByID(ctx, existing.UserID).Return(owner, nil)
		profileRepo.EXPECT().FindByUserID(ctx, existing.UserID).Return(existing, nil)
		profileRepo.EXPECT().Update(ctx, existing).Return(nil)
		profileRepo.EXPECT().ReplaceEducation(ctx, existing.ID, mock.Anything).Return(nil)
	})

	out, err := fx.service.SubmitProfile(ctx, principal, &usecase.SubmitProfileInput{
		FirstName: "Ada",
		LastName:  "Baker",
		Baker:     &usecase.BakerDetails{BusinessAddress: stringPtr(" 3 Wheat Way ")},
	})

	require.NoError(t, err)
	assert.Equal(t, "Ada's Oven", out.Profile.BusinessName)
	assert.Equal(t, "3 Wheat Way", out.Profile.BusinessAddress)
	assert.Equal(t, []string{"sourdough"}, out.Profile.Specialties)
}

func TestProfileService_SubmitProfile_ValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.SubmitProfileInput
	}{
		{name: "missing first name", input: usecase.SubmitProfileInput{LastName: "B"}},
		{name: "missing last name", input: usecase.SubmitProfileInput{FirstName: "A"}},
		{name: "too many photos", input: usecase.SubmitProfileInput{
			FirstName: "A", LastName: "B", Photos: []string{"1", "2", "3", "4"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProfileService(t)

			_, err := fx.service.SubmitProfile(context.Background(), principalOf(entity.RoleUser), &tt.input)

			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestProfileService_SubmitProfile_OwnerMissing(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	principal := principalOf(entity.RoleUser)

	onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(userRepo)
		userRepo.EXPECT().FindByID(ctx, principal.UserID).Return(nil, repository.ErrUserNotFound)
	})

	_, err := fx.service.SubmitProfile(ctx, principal, &usecase.SubmitProfileInput{FirstName: "A", LastName: "B"})

	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUniqueStrings(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, uniqueStrings([]string{" a", "b", "a ", "", "b"}))
	assert.Equal(t, []string{}, uniqueStrings(nil))
}
