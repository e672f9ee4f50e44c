package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, CheckPassword(hash, "correct horse battery staple"))
	assert.False(t, CheckPassword(hash, "wrong password"))
}

func TestHashPasswordDistinctSalts(t *testing.T) {
	h1, err := HashPassword("secret123")
	require.NoError(t, err)
	h2, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
	assert.True(t, CheckPassword(h1, "secret123"))
	assert.True(t, CheckPassword(h2, "secret123"))
}

func TestCheckPasswordFailsClosed(t *testing.T) {
	assert.False(t, CheckPassword("", "anything"))
	assert.False(t, CheckPassword("not-a-bcrypt-hash", "anything"))
}
