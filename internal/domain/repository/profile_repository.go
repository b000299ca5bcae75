// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileRepository defines the operations for user-profile persistence.
// The profile row is created lazily, so the read path is an explicit upsert.
type ProfileRepository interface {
	// GetOrCreate returns the profile for the given user, creating an empty
	// one first if none exists yet.
	GetOrCreate(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error)

	// Update modifies an existing profile row.
	Update(ctx context.Context, profile *entity.UserProfile) error
}
