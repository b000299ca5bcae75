// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Like is the presence row of the per-user like toggle. At most one row exists
// per (product, user) pair; the pair's uniqueness is enforced by the database
// and is the safety net against duplicate likes under concurrent toggles.
type Like struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`

	Product *Product `json:"product,omitempty"` // Populated on list reads.
}

// LikeResult is the outcome of a toggle: the product acted on and the end state.
type LikeResult struct {
	ProductID uuid.UUID `json:"product_id"`
	Liked     bool      `json:"liked"`
}
