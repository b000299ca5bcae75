package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateProfileInput carries a partial update of the account and its profile.
// nil fields are left untouched; non-nil fields are written, including
// explicit clears with empty strings.
type UpdateProfileInput struct {
	Username  *string
	Email     *string
	Password  *string
	FirstName *string
	LastName  *string

	Image     *string
	Bio       *string
	Phone     *string
	BirthDate *time.Time
	Address   *string
	Telegram  *string
}

// ProfileUsecase defines the interface for profile management.
type ProfileUsecase interface {
	// GetProfile returns the user with their profile attached, creating an
	// empty profile on first access.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// UpdateProfile applies a partial update across the user and profile rows
	// atomically and returns the merged result.
	UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*entity.User, error)
}
