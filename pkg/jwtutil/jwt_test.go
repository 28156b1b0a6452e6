package jwtutil

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	util := NewJWTUtil(&JWTConfig{SigningKey: "test-secret"})

	token, err := util.GenerateToken("64f1b2c3d4e5f6a7b8c9d0e1", "ana@example.com", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := util.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "64f1b2c3d4e5f6a7b8c9d0e1", claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.WithinDuration(t, time.Now().Add(TokenLifetime), claims.ExpiresAt.Time, time.Minute)
}

func TestValidateToken_WrongKey(t *testing.T) {
	util := NewJWTUtil(&JWTConfig{SigningKey: "test-secret"})
	other := NewJWTUtil(&JWTConfig{SigningKey: "another-secret"})

	token, err := util.GenerateToken("64f1b2c3d4e5f6a7b8c9d0e1", "ana@example.com", "admin")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
	assert.False(t, IsExpired(err))
}

func TestValidateToken_Expired(t *testing.T) {
	util := NewJWTUtil(&JWTConfig{SigningKey: "test-secret"})

	claims := UserClaims{
		UserID: "64f1b2c3d4e5f6a7b8c9d0e1",
		Email:  "ana@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = util.ValidateToken(signed)
	require.Error(t, err)
	assert.True(t, IsExpired(err))
}

func TestIsExpired_UnrelatedError(t *testing.T) {
	assert.False(t, IsExpired(errors.New("boom")))
	assert.False(t, IsExpired(nil))
}
