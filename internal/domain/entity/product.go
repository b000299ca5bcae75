// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog item listed by a user. The owner is the only identity
// allowed to mutate it; everyone may read it.
type Product struct {
	ID          uuid.UUID       `json:"id"`
	UserID      uuid.UUID       `json:"user_id"`            // The owning user.
	BrandID     *uuid.UUID      `json:"brand_id,omitempty"` // nil when the product has no brand or the brand was removed.
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Ram         string          `json:"ram,omitempty"`   // Optional hardware attribute, e.g. "8GB".
	Color       string          `json:"color,omitempty"` // Optional color attribute.
	Price       decimal.Decimal `json:"price"`           // Must be strictly positive.
	Stock       int             `json:"stock"`           // Must be non-negative. Not decremented on order placement.
	IsAvailable bool            `json:"is_available"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	Brand  *Brand         `json:"brand,omitempty"`  // Populated on reads when the product has a brand.
	Images []ProductImage `json:"images,omitempty"` // Populated on reads.
}

// ProductImage is a stored image attached to a product. Ownership follows the
// product: only the product's owner may create or delete images.
type ProductImage struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	Image     string    `json:"image"` // Storage key; resolved to a public URL at the delivery layer.
}
