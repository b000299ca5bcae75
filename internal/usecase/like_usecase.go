package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// LikeUsecase defines the interface for the per-user like toggle.
type LikeUsecase interface {
	// ListLikes returns the user's likes, newest first, with products attached.
	ListLikes(ctx context.Context, userID uuid.UUID) ([]*entity.Like, error)

	// ToggleLike flips the like state for a (product, user) pair and reports
	// the end state. Calling it twice in a row returns to the initial state.
	ToggleLike(ctx context.Context, userID, productID uuid.UUID) (*entity.LikeResult, error)
}
