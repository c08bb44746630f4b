package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)
	require.NotEqual(t, "hunter22", hash)

	assert.True(t, CheckPassword("hunter22", hash))
	assert.False(t, CheckPassword("hunter23", hash))
	assert.False(t, CheckPassword("", hash))
}

func TestCheckPasswordGarbageHash(t *testing.T) {
	assert.False(t, CheckPassword("hunter22", "not-a-bcrypt-hash"))
}
