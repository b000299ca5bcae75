// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for like persistence.
var (
	// ErrLikeNotFound is returned when no like row exists for the queried pair.
	ErrLikeNotFound = errors.New("like not found")
	// ErrDuplicateLike is returned when the (product, user) unique constraint
	// rejects a create. A concurrent toggle from the same user is the only way
	// to hit it, and the caller resolves it by re-reading the row.
	ErrDuplicateLike = errors.New("like already exists")
)

// LikeRepository defines the operations for like persistence.
type LikeRepository interface {
	// FindByUser retrieves the likes of the given user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Like, error)

	// FindByProductAndUser retrieves the like row for a (product, user) pair.
	FindByProductAndUser(ctx context.Context, productID, userID uuid.UUID) (*entity.Like, error)

	// Create persists a new like row.
	Create(ctx context.Context, like *entity.Like) error

	// Delete removes a like row by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
