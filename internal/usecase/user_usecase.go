// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// LoginInput defines the data required to log in. Login is by username,
// not email.
type LoginInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// TokenPair carries a freshly issued access/refresh token couple.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// UserUsecase defines the interface for account and session operations.
// This is the contract that the delivery layer depends on.
type UserUsecase interface {
	// Register creates a new account with a hashed password.
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)

	// Login verifies credentials and issues a token pair.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// Refresh exchanges a valid refresh token for a new token pair.
	// Tokens are stateless; nothing is revoked server-side.
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
}
