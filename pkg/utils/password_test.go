package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	h := HashPassword("correct horse")
	require.NotEmpty(t, h)
	assert.NotEqual(t, "correct horse", h)

	assert.True(t, CheckPassword("correct horse", h))
	assert.False(t, CheckPassword("battery staple", h))
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	a := HashPassword("pw")
	b := HashPassword("pw")
	assert.NotEqual(t, a, b)
}

func TestCheckPassword_EmptyHash(t *testing.T) {
	assert.False(t, CheckPassword("pw", ""))
}
