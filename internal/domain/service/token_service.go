package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token types carried in the "type" claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	UserID uuid.UUID
	Type   string // "access" or "refresh".
	jwt.RegisteredClaims
}

// TokenService is the identity-provider contract: it issues bearer credentials
// and maps them back to a stable user identity. Refresh is stateless; no token
// state is persisted server-side.
type TokenService interface {
	// GenerateTokens creates a new access/refresh token pair for a given user.
	GenerateTokens(userID uuid.UUID) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken parses and verifies an access token.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// ValidateRefreshToken parses and verifies a refresh token.
	ValidateRefreshToken(tokenString string) (*Claims, error)

	// GetRefreshTokenDuration returns the configured duration for refresh tokens.
	GetRefreshTokenDuration() time.Duration
}
