package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_VerifyRoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", hash)

	ok, err := VerifyPassword("hunter2", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("hunter3", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashPassword_Salted(t *testing.T) {
	a, err := HashPassword("same")
	require.NoError(t, err)
	b, err := HashPassword("same")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestVerifyPassword_MalformedDigest(t *testing.T) {
	ok, err := VerifyPassword("pw", "not-a-bcrypt-hash")
	assert.Error(t, err)
	assert.False(t, ok)
}
