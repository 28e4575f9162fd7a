package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRolesFromStrings_DropsUnknownRoles(t *testing.T) {
	t.Parallel()

	roles := RolesFromStrings([]string{"customer", "merchant", "admin", ""})

	assert.Equal(t, Roles{RoleCustomer, RoleAdmin}, roles)
	assert.True(t, roles.Contains(RoleAdmin))
	assert.Equal(t, []string{"customer", "admin"}, roles.ToStrings())
}
