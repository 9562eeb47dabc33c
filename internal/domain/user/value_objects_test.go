//go:build unit

package user_test

import (
	"testing"

	"lumina-hotel-api/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	t.Run("lowercases and trims", func(t *testing.T) {
		e, err := user.NewEmail("  Admin@Example.COM  ")
		require.NoError(t, err)
		assert.Equal(t, "admin@example.com", e.String())
	})

	cases := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "plain address", input: "admin@example.com"},
		{name: "plus tag", input: "admin+test@example.com"},
		{name: "empty", input: "", wantErr: true},
		{name: "missing domain", input: "admin@", wantErr: true},
		{name: "missing local part", input: "@example.com", wantErr: true},
		{name: "no tld", input: "admin@example", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := user.NewEmail(tc.input)
			if tc.wantErr {
				require.ErrorIs(t, err, user.ErrInvalidEmail)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestNewCredentials(t *testing.T) {
	t.Run("valid credentials", func(t *testing.T) {
		c, err := user.NewCredentials("admin@example.com", "secret1")
		require.NoError(t, err)
		assert.Equal(t, "admin@example.com", c.Email().String())
		assert.Equal(t, "secret1", c.Password())
	})

	t.Run("password below minimum length", func(t *testing.T) {
		_, err := user.NewCredentials("admin@example.com", "12345")
		require.ErrorIs(t, err, user.ErrPasswordTooWeak)
	})

	t.Run("invalid email rejected first", func(t *testing.T) {
		_, err := user.NewCredentials("not-an-email", "secret1")
		require.ErrorIs(t, err, user.ErrInvalidEmail)
	})
}

func TestRole(t *testing.T) {
	t.Run("known roles", func(t *testing.T) {
		admin, err := user.NewRole("ADMIN")
		require.NoError(t, err)
		assert.True(t, admin.IsAdmin())

		staff, err := user.NewRole("STAFF")
		require.NoError(t, err)
		assert.False(t, staff.IsAdmin())
	})

	t.Run("unknown role", func(t *testing.T) {
		_, err := user.NewRole("ROOT")
		require.ErrorIs(t, err, user.ErrInvalidRole)
	})
}
