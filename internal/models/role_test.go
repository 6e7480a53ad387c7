package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	for _, s := range []string{"client", "stylist", "admin"} {
		role, err := ParseRole(s)
		require.NoError(t, err)
		require.Equal(t, s, role.String())
		require.True(t, role.Valid())
	}
}

func TestParseRoleRejectsUnknown(t *testing.T) {
	for _, s := range []string{"", "owner", "Client", "superadmin"} {
		_, err := ParseRole(s)
		require.Error(t, err, "role %q should be rejected", s)
	}
}

func TestRoleValid(t *testing.T) {
	require.False(t, Role("").Valid())
	require.False(t, Role("barber").Valid())
	require.True(t, RoleAdmin.Valid())
}
