package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service     usecase.ProfileUsecase
	txManager   *mockRepo.MockTransactionManager
	userRepo    *mockRepo.MockUserRepository
	profileRepo *mockRepo.MockProfileRepository
	hasher      *mockSvc.MockPasswordHasher
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	svc := NewProfileService(ProfileServiceParams{
		TxManager:   txManager,
		UserRepo:    userRepo,
		ProfileRepo: profileRepo,
		Hasher:      hasher,
		Logger:      newDiscardLogger(),
	})

	return profileServiceFixtures{
		service:     svc,
		txManager:   txManager,
		userRepo:    userRepo,
		profileRepo: profileRepo,
		hasher:      hasher,
	}
}

func TestProfileService_GetProfile_CreatesProfileOnFirstAccess(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Username: "alice", IsActive: true}
	profile := &entity.UserProfile{UserID: userID}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.profileRepo.EXPECT().GetOrCreate(ctx, userID).Return(profile, nil)

	got, err := fx.service.GetProfile(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, got.Profile)
	assert.Equal(t, userID, got.Profile.UserID)
}

func TestProfileService_GetProfile_UserNotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	got, err := fx.service.GetProfile(ctx, userID)
	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestProfileService_UpdateProfile_PartialUpdate(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:        userID,
		Username:  "alice",
		Email:     "old@example.com",
		FirstName: "Alice",
		IsActive:  true,
	}
	profile := &entity.UserProfile{UserID: userID, Bio: "old bio", Phone: "111"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)
			txProfileRepo := mockRepo.NewMockProfileRepository(t)

			mockFactory.EXPECT().UserRepo().Return(txUserRepo)
			mockFactory.EXPECT().ProfileRepo().Return(txProfileRepo)

			txUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
			txUserRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(_ context.Context, updated *entity.User) {
					assert.Equal(t, "new@example.com", updated.Email)
					assert.Equal(t, "Alice", updated.FirstName)
				}).
				Return(nil)

			txProfileRepo.EXPECT().GetOrCreate(ctx, userID).Return(profile, nil)
			txProfileRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.UserProfile")).
				Run(func(_ context.Context, updated *entity.UserProfile) {
					assert.Equal(t, "new bio", updated.Bio)
					assert.Equal(t, "111", updated.Phone)
				}).
				Return(nil)

			require.NoError(t, fn(mockFactory))
		}).
		Return(nil)

	email := "new@example.com"
	bio := "new bio"
	got, err := fx.service.UpdateProfile(ctx, userID, usecase.UpdateProfileInput{
		Email: &email,
		Bio:   &bio,
	})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", got.Email)
	assert.Equal(t, "new bio", got.Profile.Bio)
}

func TestProfileService_UpdateProfile_RehashesPassword(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Username: "alice", PasswordHash: "old-hash", IsActive: true}
	profile := &entity.UserProfile{UserID: userID}

	fx.hasher.EXPECT().Hash("new-password").Return("new-hash", nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)
			txProfileRepo := mockRepo.NewMockProfileRepository(t)

			mockFactory.EXPECT().UserRepo().Return(txUserRepo)
			mockFactory.EXPECT().ProfileRepo().Return(txProfileRepo)

			txUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
			txUserRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(_ context.Context, updated *entity.User) {
					assert.Equal(t, "new-hash", updated.PasswordHash)
				}).
				Return(nil)

			txProfileRepo.EXPECT().GetOrCreate(ctx, userID).Return(profile, nil)
			txProfileRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.UserProfile")).Return(nil)

			require.NoError(t, fn(mockFactory))
		}).
		Return(nil)

	password := "new-password"
	_, err := fx.service.UpdateProfile(ctx, userID, usecase.UpdateProfileInput{Password: &password})
	require.NoError(t, err)
}

func TestProfileService_UpdateProfile_DuplicateEmail(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Username: "alice", Email: "old@example.com", IsActive: true}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)
			txProfileRepo := mockRepo.NewMockProfileRepository(t)

			mockFactory.EXPECT().UserRepo().Return(txUserRepo)
			mockFactory.EXPECT().ProfileRepo().Return(txProfileRepo)

			txUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
			txUserRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.User")).
				Return(repository.ErrDuplicateUser)

			return fn(mockFactory)
		})

	email := "taken@example.com"
	got, err := fx.service.UpdateProfile(ctx, userID, usecase.UpdateProfileInput{Email: &email})
	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}
