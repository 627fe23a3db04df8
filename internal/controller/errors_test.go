package controller

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Rendering(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			"validation detail",
			&Error{Kind: ValidationFailed, Op: "create booking", Detail: "Missing required booking fields"},
			"Failed to create booking: Missing required booking fields",
		},
		{
			"wrapped cause",
			&Error{Kind: OperationFailed, Op: "get setting", Cause: errors.New("db down")},
			"Failed to get setting: db down",
		},
		{
			"custom prefix",
			&Error{Kind: ValidationFailed, Prefix: "Authentication failed", Detail: "User account is not active"},
			"Authentication failed: User account is not active",
		},
		{
			"bare prefix",
			&Error{Kind: OperationFailed, Op: "delete user"},
			"Failed to delete user",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := opFailed("get setting", cause)
	assert.ErrorIs(t, err, cause)
}

func TestIsValidation(t *testing.T) {
	assert.True(t, IsValidation(invalid("create user", "Name and email are required")))
	assert.False(t, IsValidation(opFailed("create user", errors.New("db down"))))
	assert.False(t, IsValidation(errors.New("plain")))
}

func TestRelabel(t *testing.T) {
	t.Run("keeps kind, swaps op", func(t *testing.T) {
		in := invalid("update availability", "Invalid type. Must be hosting or obs")
		out := relabel(in, "update hosting availability")
		assert.True(t, IsValidation(out))
		assert.Equal(t, "Failed to update hosting availability: Invalid type. Must be hosting or obs", out.Error())
	})

	t.Run("wraps foreign errors", func(t *testing.T) {
		out := relabel(errors.New("db down"), "get observatory availability")
		assert.False(t, IsValidation(out))
		assert.Equal(t, "Failed to get observatory availability: db down", out.Error())
	})
}
