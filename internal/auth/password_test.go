package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_Roundtrip(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("pw1")
	require.NoError(t, err)

	assert.NotEqual(t, "pw1", hash)
	assert.True(t, CheckPassword("pw1", hash))
	assert.False(t, CheckPassword("wrong", hash))
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("same-password")
	require.NoError(t, err)
	h2, err := HashPassword("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func TestCheckPassword_MalformedDigest(t *testing.T) {
	t.Parallel()

	assert.False(t, CheckPassword("pw1", "not-a-bcrypt-digest"))
	assert.False(t, CheckPassword("pw1", ""))
}
