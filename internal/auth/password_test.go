package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := Hashpassword("s3cret-passw0rd")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "s3cret-passw0rd", hash)

	assert.NoError(t, VerifyPassword(hash, "s3cret-passw0rd"))
	assert.Error(t, VerifyPassword(hash, "wrong-password"))
}

func TestHashpassword_Salted(t *testing.T) {
	h1, err := Hashpassword("same-password")
	require.NoError(t, err)
	h2, err := Hashpassword("same-password")
	require.NoError(t, err)

	// bcrypt salts each hash; equal inputs never collide
	assert.NotEqual(t, h1, h2)
}
