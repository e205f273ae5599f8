package handlers

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken_RoundTrip(t *testing.T) {
	cfg := testJWTConfig()

	token, expiresIn, err := GenerateAccessToken(cfg, "user-123", "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(cfg.AccessTokenTTL.Seconds()), expiresIn)

	claims, err := ValidateAccessToken(cfg, token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, tokenIssuer, claims.Issuer)
}

func TestValidateAccessToken_Expired(t *testing.T) {
	cfg := testJWTConfig()
	cfg.AccessTokenTTL = -time.Minute

	token, _, err := GenerateAccessToken(cfg, "user-123", "alice")
	require.NoError(t, err)

	_, err = ValidateAccessToken(testJWTConfig(), token)
	assert.Error(t, err)
}

func TestValidateAccessToken_WrongIssuer(t *testing.T) {
	cfg := testJWTConfig()

	claims := CustomClaims{
		UserID:   "user-123",
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			Issuer:    "someone-else",
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(cfg.Secret)
	require.NoError(t, err)

	_, err = ValidateAccessToken(cfg, token)
	assert.Error(t, err)
}

func TestValidateAccessToken_WrongAlgorithm(t *testing.T) {
	cfg := testJWTConfig()

	claims := CustomClaims{
		UserID:   "user-123",
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			Issuer:    tokenIssuer,
		},
	}
	// Same secret, different signing method
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(cfg.Secret)
	require.NoError(t, err)

	_, err = ValidateAccessToken(cfg, token)
	assert.Error(t, err)
}

func TestValidateAccessToken_NoExpiration(t *testing.T) {
	cfg := testJWTConfig()

	claims := CustomClaims{
		UserID:   "user-123",
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer: tokenIssuer,
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(cfg.Secret)
	require.NoError(t, err)

	// Tokens without exp are rejected outright
	_, err = ValidateAccessToken(cfg, token)
	assert.Error(t, err)
}

func TestValidateAccessToken_MissingUserID(t *testing.T) {
	cfg := testJWTConfig()

	claims := CustomClaims{
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			Issuer:    tokenIssuer,
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(cfg.Secret)
	require.NoError(t, err)

	_, err = ValidateAccessToken(cfg, token)
	assert.Error(t, err)
}

func TestValidateAccessToken_Garbage(t *testing.T) {
	_, err := ValidateAccessToken(testJWTConfig(), "not.a.token")
	assert.Error(t, err)
}

func TestGenerateRefreshToken(t *testing.T) {
	cfg := testJWTConfig()

	token1, expiresAt, err := GenerateRefreshToken(cfg)
	require.NoError(t, err)
	token2, _, err := GenerateRefreshToken(cfg)
	require.NoError(t, err)

	assert.NotEmpty(t, token1)
	assert.NotEqual(t, token1, token2)
	assert.WithinDuration(t, time.Now().Add(cfg.RefreshTokenTTL), expiresAt, time.Minute)
}
