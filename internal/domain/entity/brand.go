// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Brand is a manufacturer label referenced by products. Brands are administered
// out of band; the API only reads them.
type Brand struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"` // Unique brand name.
	Description string    `json:"description"`
	Logo        string    `json:"logo"` // Storage key of the logo, empty if unset.
	CreatedAt   time.Time `json:"created_at"`
}
