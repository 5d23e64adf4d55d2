package main

import (
	"context"
	"testing"

	"bakery/internal/domain/entity"
	"bakery/internal/domain/repository"
	mockRepo "bakery/internal/mocks/repository"
	mockService "bakery/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var adminInput = seedInput{Email: "admin@example.com", Password: "s3cret!", FirstName: "Ada", LastName: "Admin"}

func TestSeedAdmin_CreatesAdmin(t *testing.T) {
	users := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)

	hasher.EXPECT().ValidatePasswordStrength("s3cret!").Return(nil).Once()
	users.EXPECT().FindByEmail(mock.Anything, "admin@example.com").Return(nil, repository.ErrUserNotFound).Once()
	hasher.EXPECT().Hash("s3cret!").Return("hashed", nil).Once()
	users.EXPECT().Create(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.Role == entity.RoleAdmin && u.PasswordHash == "hashed" && u.Profile.BakerStatus == nil
	})).Return(nil).Once()

	created, err := seedAdmin(context.Background(), users, hasher, adminInput)

	require.NoError(t, err)
	assert.True(t, created)
}

func TestSeedAdmin_ExistingAccounts(t *testing.T) {
	tests := []struct {
		name    string
		role    entity.Role
		wantErr bool
	}{
		{name: "admin already seeded", role: entity.RoleAdmin},
		{name: "customer keeps its role", role: entity.RoleUser, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := mockRepo.NewMockUserRepository(t)
			hasher := mockService.NewMockPasswordHasher(t)

			hasher.EXPECT().ValidatePasswordStrength(mock.Anything).Return(nil).Once()
			users.EXPECT().FindByEmail(mock.Anything, "admin@example.com").
				Return(&entity.User{Email: "admin@example.com", Role: tt.role}, nil).Once()

			created, err := seedAdmin(context.Background(), users, hasher, adminInput)

			assert.False(t, created)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSeedAdmin_RejectsBadInput(t *testing.T) {
	users := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)

	_, err := seedAdmin(context.Background(), users, hasher, seedInput{Email: "nope", Password: "s3cret!"})
	assert.Error(t, err)

	_, err = seedAdmin(context.Background(), users, hasher, seedInput{Email: "admin@example.com"})
	assert.Error(t, err)
}
