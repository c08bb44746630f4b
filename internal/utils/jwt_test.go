package utils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWTClaims(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")

	signed, err := GenerateJWT("64f000000000000000000001", "user@example.com", "seller")
	require.NoError(t, err)

	token, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return []byte("test_secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "64f000000000000000000001", claims["user_id"])
	assert.Equal(t, "user@example.com", claims["email"])
	assert.Equal(t, "seller", claims["role"])
	assert.NotNil(t, claims["exp"])
}
