package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	svc := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      svc,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	newID := uuid.New()

	fx.hasher.EXPECT().Hash("secret123").Return("hashed-secret", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = newID
			user.JoinedAt = time.Now()
		}).
		Return(nil)

	output, err := fx.service.Register(ctx, usecase.RegisterInput{
		Username:  "alice",
		Email:     "alice@example.com",
		Password:  "secret123",
		FirstName: "Alice",
	})
	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, newID, output.User.ID)
	assert.Equal(t, "alice", output.User.Username)
	assert.Equal(t, "hashed-secret", output.User.PasswordHash)
	assert.True(t, output.User.IsActive)
}

func TestUserService_Register_DuplicateUsername(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().Hash("secret123").Return("hashed-secret", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrDuplicateUser)

	output, err := fx.service.Register(ctx, usecase.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:           userID,
		Username:     "alice",
		PasswordHash: "hashed-secret",
		IsActive:     true,
	}

	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(user, nil)
	fx.hasher.EXPECT().Check("secret123", "hashed-secret").Return(true)
	fx.tokenService.EXPECT().GenerateTokens(userID).Return("access", "refresh", nil)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Username: "alice", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
	assert.Equal(t, userID, output.User.ID)
}

func TestUserService_Login_UnknownUsername(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Username: "ghost", Password: "whatever"})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Username:     "alice",
		PasswordHash: "hashed-secret",
		IsActive:     true,
	}

	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed-secret").Return(false)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Username: "alice", Password: "wrong"})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_DisabledAccount(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Username:     "alice",
		PasswordHash: "hashed-secret",
		IsActive:     false,
	}

	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(user, nil)
	fx.hasher.EXPECT().Check("secret123", "hashed-secret").Return(true)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Username: "alice", Password: "secret123"})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrAccountDisabled)
}

func TestUserService_Refresh_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	claims := &service.Claims{
		UserID:           userID,
		Type:             service.TokenTypeRefresh,
		RegisteredClaims: jwt.RegisteredClaims{},
	}
	user := &entity.User{ID: userID, Username: "alice", IsActive: true}

	fx.tokenService.EXPECT().ValidateRefreshToken("old-refresh").Return(claims, nil)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.tokenService.EXPECT().GenerateTokens(userID).Return("new-access", "new-refresh", nil)

	pair, err := fx.service.Refresh(ctx, "old-refresh")
	require.NoError(t, err)
	assert.Equal(t, "new-access", pair.AccessToken)
	assert.Equal(t, "new-refresh", pair.RefreshToken)
}

func TestUserService_Refresh_InvalidToken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().ValidateRefreshToken("garbage").Return(nil, assert.AnError)

	pair, err := fx.service.Refresh(ctx, "garbage")
	require.Error(t, err)
	assert.Nil(t, pair)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestUserService_Refresh_DisabledAccount(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	claims := &service.Claims{UserID: userID, Type: service.TokenTypeRefresh}
	user := &entity.User{ID: userID, Username: "alice", IsActive: false}

	fx.tokenService.EXPECT().ValidateRefreshToken("old-refresh").Return(claims, nil)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

	pair, err := fx.service.Refresh(ctx, "old-refresh")
	require.Error(t, err)
	assert.Nil(t, pair)
	assert.ErrorIs(t, err, domainerrors.ErrAccountDisabled)
}
