//go:build unit

package user_test

import (
	"testing"

	"stay-admin/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdmin(t *testing.T) {
	t.Run("valid admin", func(t *testing.T) {
		a, err := user.NewAdmin(" 42 ", "operator")
		require.NoError(t, err)
		assert.Equal(t, "42", a.ID())
		assert.Equal(t, user.RoleOperator, a.Role())
		assert.True(t, a.CanWrite())
	})

	t.Run("viewer cannot write", func(t *testing.T) {
		a, err := user.NewAdmin("7", "viewer")
		require.NoError(t, err)
		assert.False(t, a.CanWrite())
	})

	t.Run("invalid input", func(t *testing.T) {
		_, err := user.NewAdmin("", "admin")
		assert.ErrorIs(t, err, user.ErrEmptyID)

		_, err = user.NewAdmin("1", "owner")
		assert.ErrorIs(t, err, user.ErrInvalidRole)
	})
}

func TestRoleAtLeast(t *testing.T) {
	cases := []struct {
		role user.Role
		min  user.Role
		want bool
	}{
		{user.RoleAdmin, user.RoleOperator, true},
		{user.RoleOperator, user.RoleOperator, true},
		{user.RoleViewer, user.RoleOperator, false},
		{user.Role("ghost"), user.RoleViewer, false},
	}
	for _, c := range cases {
		t.Run(string(c.role)+">="+string(c.min), func(t *testing.T) {
			assert.Equal(t, c.want, c.role.AtLeast(c.min))
		})
	}
}
