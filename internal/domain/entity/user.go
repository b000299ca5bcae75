// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity in the system, representing a single registered account.
// Credentials live on the user row because the storefront only supports password login;
// access/refresh tokens are issued by the token service and never stored.
type User struct {
	ID           uuid.UUID    `json:"id"`         // The Global Unique Identifier (GUID) for the user.
	Username     string       `json:"username"`   // Unique login name, also the public display handle.
	Email        string       `json:"email"`      // Unique contact email.
	PasswordHash string       `json:"-"`          // bcrypt hash of the password. Never serialized.
	FirstName    string       `json:"first_name"` // Optional given name.
	LastName     string       `json:"last_name"`  // Optional family name.
	IsVerified   bool         `json:"is_verified"`
	IsActive     bool         `json:"is_active"`
	JoinedAt     time.Time    `json:"joined_at"` // Timestamp of registration.
	Profile      *UserProfile `json:"profile,omitempty"`
}

// UserProfile holds the optional, mutable presentation data attached to a user.
// At most one profile exists per user; it is created lazily on first profile access.
type UserProfile struct {
	UserID    uuid.UUID  `json:"user_id"` // Foreign key linking this profile to its User.
	Image     string     `json:"image"`   // Storage key of the avatar, empty if unset.
	Bio       string     `json:"bio"`
	Phone     string     `json:"phone"`
	BirthDate *time.Time `json:"birth_date"` // nil when the user has not provided one.
	Address   string     `json:"address"`
	Telegram  string     `json:"telegram"`
	UpdatedAt time.Time  `json:"updated_at"`
}
