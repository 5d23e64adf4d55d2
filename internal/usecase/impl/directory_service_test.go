package impl

import (
	"context"
	"testing"

	"bakery/internal/domain/entity"
	domainerrors "bakery/internal/domain/errors"
	"bakery/internal/domain/repository"
	mockRepo "bakery/internal/mocks/repository"
	mockService "bakery/internal/mocks/service"
	"bakery/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type directoryServiceFixtures struct {
	service     usecase.DirectoryUsecase
	profileRepo *mockRepo.MockProfileRepository
	qrService   *mockService.MockQRCodeService
}

func createTestDirectoryService(t *testing.T) directoryServiceFixtures {
	fixtures := directoryServiceFixtures{
		profileRepo: mockRepo.NewMockProfileRepository(t),
		qrService:   mockService.NewMockQRCodeService(t),
	}
	fixtures.service = NewDirectoryService(DirectoryServiceParams{
		ProfileRepo: fixtures.profileRepo,
		QRService:   fixtures.qrService,
		Logger:      newDiscardLogger(),
	})

	return fixtures
}

func TestDirectoryService_ListApprovedBakers(t *testing.T) {
	fx := createTestDirectoryService(t)
	bakers := []*entity.Profile{bakerProfile(entity.BakerStatusApproved.Ptr())}
	fx.profileRepo.EXPECT().
		ListBakers(mock.Anything, repository.BakerFilter{Status: entity.BakerStatusApproved.Ptr()}).
		Return(bakers, nil)

	got, err := fx.service.ListApprovedBakers(context.Background())

	require.NoError(t, err)
	assert.Equal(t, bakers, got)
}

func TestDirectoryService_GetBaker(t *testing.T) {
	approved := bakerProfile(entity.BakerStatusApproved.Ptr())

	tests := []struct {
		name    string
		profile *entity.Profile
		findErr error
		wantErr error
	}{
		{name: "approved", profile: approved},
		{name: "missing", findErr: repository.ErrProfileNotFound, wantErr: domainerrors.ErrBakerNotFound},
		{name: "customer", profile: customerProfile(), wantErr: domainerrors.ErrNotABaker},
		{name: "pending", profile: bakerProfile(entity.BakerStatusPending.Ptr()), wantErr: domainerrors.ErrBakerNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDirectoryService(t)
			id := uuid.New()
			fx.profileRepo.EXPECT().FindByID(mock.Anything, id).Return(tt.profile, tt.findErr)

			got, err := fx.service.GetBaker(context.Background(), id)

			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				assert.Nil(t, got)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.profile, got)
		})
	}
}

func TestDirectoryService_BakerQRCode(t *testing.T) {
	t.Run("approved baker", func(t *testing.T) {
		fx := createTestDirectoryService(t)
		baker := bakerProfile(entity.BakerStatusApproved.Ptr())
		fx.profileRepo.EXPECT().FindByID(mock.Anything, baker.ID).Return(baker, nil)
		fx.qrService.EXPECT().GenerateBakerQR(baker.ID).Return([]byte("png"), nil)

		got, err := fx.service.BakerQRCode(context.Background(), baker.ID)

		require.NoError(t, err)
		assert.Equal(t, []byte("png"), got)
	})

	t.Run("pending baker gets no code", func(t *testing.T) {
		fx := createTestDirectoryService(t)
		baker := bakerProfile(entity.BakerStatusPending.Ptr())
		fx.profileRepo.EXPECT().FindByID(mock.Anything, baker.ID).Return(baker, nil)

		_, err := fx.service.BakerQRCode(context.Background(), baker.ID)

		assert.True(t, errors.Is(err, domainerrors.ErrBakerNotFound))
	})

	t.Run("generator failure", func(t *testing.T) {
		fx := createTestDirectoryService(t)
		baker := bakerProfile(entity.BakerStatusApproved.Ptr())
		fx.profileRepo.EXPECT().FindByID(mock.Anything, baker.ID).Return(baker, nil)
		fx.qrService.EXPECT().GenerateBakerQR(baker.ID).Return(nil, errors.New("boom"))

		_, err := fx.service.BakerQRCode(context.Background(), baker.ID)

		assert.ErrorContains(t, err, "failed to generate QR code")
	})
}
