package auth

import (
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T) service.TokenService {
	t.Helper()
	cfg := &config.Config{}
	cfg.SecretKey.Access = "access-secret"
	cfg.SecretKey.Refresh = "refresh-secret"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

func TestJWTService_RequiresSecrets(t *testing.T) {
	cfg := &config.Config{}

	_, err := NewJWTService(cfg)
	require.Error(t, err)
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := newTestJWTService(t)
	userID := uuid.New()

	accessToken, refreshToken, err := svc.GenerateTokens(userID)
	require.NoError(t, err)
	require.NotEmpty(t, accessToken)
	require.NotEmpty(t, refreshToken)
	assert.NotEqual(t, accessToken, refreshToken)

	accessClaims, err := svc.ValidateAccessToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.Equal(t, service.TokenTypeAccess, accessClaims.Type)

	refreshClaims, err := svc.ValidateRefreshToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, userID, refreshClaims.UserID)
	assert.Equal(t, service.TokenTypeRefresh, refreshClaims.Type)
}

func TestJWTService_RejectsCrossTypeTokens(t *testing.T) {
	svc := newTestJWTService(t)

	accessToken, refreshToken, err := svc.GenerateTokens(uuid.New())
	require.NoError(t, err)

	// A refresh token must not pass as an access token, and vice versa.
	_, err = svc.ValidateAccessToken(refreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.ValidateRefreshToken(accessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_RejectsTamperedToken(t *testing.T) {
	svc := newTestJWTService(t)

	accessToken, _, err := svc.GenerateTokens(uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(accessToken + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.ValidateAccessToken("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc := &jwtService{
		accessSecret:  "access-secret",
		refreshSecret: "refresh-secret",
		accessTTL:     -time.Minute,
		refreshTTL:    time.Hour,
	}

	accessToken, _, err := svc.GenerateTokens(uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(accessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_RefreshTokenDuration(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "access-secret"
	cfg.SecretKey.Refresh = "refresh-secret"
	cfg.Auth = &config.AuthConfig{RefreshTokenTTL: 48 * time.Hour}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, 48*time.Hour, svc.GetRefreshTokenDuration())
}
