//go:build unit

package user_test

import (
	"testing"

	"shareit/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestNewUser(t *testing.T) {
	t.Run("valid user", func(t *testing.T) {
		u, err := user.NewUser("alice", "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, "alice", u.Name())
		assert.Equal(t, "alice@example.com", u.Email())
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := user.NewUser("  ", "alice@example.com")
		assert.ErrorIs(t, err, user.ErrEmptyName)
	})

	t.Run("email without at sign", func(t *testing.T) {
		_, err := user.NewUser("alice", "alice.example.com")
		assert.ErrorIs(t, err, user.ErrInvalidEmail)
	})
}

func TestUserApplyPatch(t *testing.T) {
	t.Run("email-only patch keeps name", func(t *testing.T) {
		u, err := user.NewUser("alice", "alice@example.com")
		require.NoError(t, err)

		require.NoError(t, u.ApplyPatch(nil, strPtr("alice@new.example.com")))
		assert.Equal(t, "alice", u.Name())
		assert.Equal(t, "alice@new.example.com", u.Email())
	})

	t.Run("patching to invalid email fails", func(t *testing.T) {
		u, err := user.NewUser("alice", "alice@example.com")
		require.NoError(t, err)

		assert.ErrorIs(t, u.ApplyPatch(nil, strPtr("nope")), user.ErrInvalidEmail)
	})
}
