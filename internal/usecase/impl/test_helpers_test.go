package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bakery/internal/domain/entity"
	"bakery/internal/domain/repository"
	mockRepo "bakery/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// onExecute makes txManager run the callback against a fresh mock factory prepared by setup.
func onExecute(t *testing.T, txManager *mockRepo.MockTransactionManager, setup func(factory *mockRepo.MockRepositoryFactory)) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)

			return fn(factory)
		})
}

func stringPtr(s string) *string {
	return &s
}

func principalOf(role entity.Role) entity.Principal {
	return entity.Principal{UserID: uuid.New(), Email: "caller@example.com", Role: role}
}

func bakerProfile(status *entity.BakerStatus) *entity.Profile {
	userID := uuid.New()

	return &entity.Profile{
		ID:          uuid.New(),
		UserID:      userID,
		FirstName:   "Ada",
		LastName:    "Baker",
		Photos:      []string{},
		Specialties: []string{"sourdough"},
		BakerStatus: status,
		User:        &entity.User{ID: userID, Email: "ada@example.com", Role: entity.RoleBaker},
	}
}

func customerProfile() *entity.Profile {
	userID := uuid.New()

	return &entity.Profile{
		ID:        uuid.New(),
		UserID:    userID,
		FirstName: "Cai",
		LastName:  "Customer",
		User:      &entity.User{ID: userID, Email: "cai@example.com", Role: entity.RoleUser},
	}
}
