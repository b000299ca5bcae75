package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager   repository.TransactionManager
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	hasher      service.PasswordHasher
	logger      *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	UserRepo    repository.UserRepository
	ProfileRepo repository.ProfileRepository
	Hasher      service.PasswordHasher
	Logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager:   params.TxManager,
		userRepo:    params.UserRepo,
		profileRepo: params.ProfileRepo,
		hasher:      params.Hasher,
		logger:      params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile returns the user with their profile attached. The profile row is
// created on first access; GetOrCreate is atomic on its own, so no transaction
// is needed here.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	profile, err := srv.profileRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get or create profile")
	}
	user.Profile = profile

	return user, nil
}

// UpdateProfile applies a partial update across the user and profile rows in a
// single transaction, so a failed profile write never leaves a half-updated
// account behind.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input usecase.UpdateProfileInput) (*entity.User, error) {
	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		profileRepo := repoFactory.ProfileRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrNotFound
			}

			return errors.Wrap(err, "failed to find user by id")
		}

		if err := srv.applyUserChanges(user, input); err != nil {
			return err
		}

		if err := userRepo.Update(ctx, user); err != nil {
			if errors.Is(err, repository.ErrDuplicateUser) {
				return domainerrors.ErrUserAlreadyExists.WrapMessage("email already in use")
			}

			return errors.Wrap(err, "failed to update user")
		}

		profile, err := profileRepo.GetOrCreate(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to get or create profile")
		}

		applyProfileChanges(profile, input)

		if err := profileRepo.Update(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to update profile")
		}

		user.Profile = profile
		updated = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Profile update failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Profile updated", slog.Any("userID", userID))

	return updated, nil
}

func (srv *profileService) applyUserChanges(user *entity.User, input usecase.UpdateProfileInput) error {
	if input.Username != nil {
		user.Username = *input.Username
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Password != nil {
		hashed, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			return errors.Wrap(err, "failed to hash password")
		}
		user.PasswordHash = hashed
	}

	return nil
}

func applyProfileChanges(profile *entity.UserProfile, input usecase.UpdateProfileInput) {
	if input.Image != nil {
		profile.Image = *input.Image
	}
	if input.Bio != nil {
		profile.Bio = *input.Bio
	}
	if input.Phone != nil {
		profile.Phone = *input.Phone
	}
	if input.BirthDate != nil {
		profile.BirthDate = input.BirthDate
	}
	if input.Address != nil {
		profile.Address = *input.Address
	}
	if input.Telegram != nil {
		profile.Telegram = *input.Telegram
	}
}
