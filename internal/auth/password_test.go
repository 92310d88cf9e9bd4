package auth_test

import (
	"testing"

	"github.com/emanueletoscanosoftware/fridly/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := auth.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "correct horse battery staple", hash)

	t.Run("same password hashes differently", func(t *testing.T) {
		other, err := auth.HashPassword("correct horse battery staple")
		require.NoError(t, err)
		assert.NotEqual(t, hash, other) // salted
	})
}

func TestCheckPassword(t *testing.T) {
	hash, err := auth.HashPassword("s3cret-pw")
	require.NoError(t, err)

	assert.True(t, auth.CheckPassword("s3cret-pw", hash))
	assert.False(t, auth.CheckPassword("wrong-pw", hash))
	assert.False(t, auth.CheckPassword("", hash))
	assert.False(t, auth.CheckPassword("s3cret-pw", "not-a-hash"))
}
