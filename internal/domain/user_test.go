package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureUsers() Users {
	return Users{
		{ID: 1, Name: "Fawaz Ahmed", Email: "fawaz@greedygame.com", Role: RoleSuperuser, IsActive: true},
		{ID: 2, Name: "Prashant", Email: "prashant@greedygame.com", Role: RoleUser, IsActive: true},
		{ID: 3, Name: "Rahul Singh", Email: "rahul@greedygame.com", Role: RoleUser, IsActive: false},
	}
}

func TestFilterBySearchRoleAndStatus(t *testing.T) {
	users := fixtureUsers()

	bySearch := users.Filter("RAHUL", "all", "all")
	require.Len(t, bySearch, 1)
	assert.Equal(t, int64(3), bySearch[0].ID)

	byEmail := users.Filter("greedygame", "all", "all")
	assert.Len(t, byEmail, 3)

	byRole := users.Filter("", "superuser", "all")
	require.Len(t, byRole, 1)
	assert.Equal(t, int64(1), byRole[0].ID)

	byStatus := users.Filter("", "all", "inactive")
	require.Len(t, byStatus, 1)
	assert.Equal(t, int64(3), byStatus[0].ID)

	combined := users.Filter("greedygame", "user", "active")
	require.Len(t, combined, 1)
	assert.Equal(t, int64(2), combined[0].ID)
}

func TestToggleRoleFlipsBothWays(t *testing.T) {
	users := fixtureUsers()

	promoted, _ := users.ToggleRole(2).FindByID(2)
	assert.Equal(t, RoleSuperuser, promoted.Role)

	demoted, _ := users.ToggleRole(1).FindByID(1)
	assert.Equal(t, RoleUser, demoted.Role)

	assert.Equal(t, users, users.ToggleRole(99))
}

func TestToggleActiveNeverChangesSuperusers(t *testing.T) {
	users := fixtureUsers()

	for range [3]struct{}{} {
		users = users.ToggleActive(1)
		super, _ := users.FindByID(1)
		assert.True(t, super.IsActive)
	}

	flipped, _ := users.ToggleActive(2).FindByID(2)
	assert.False(t, flipped.IsActive)
}

func TestActiveTreatsSuperusersAsAlwaysActive(t *testing.T) {
	u := User{Role: RoleSuperuser, IsActive: false}
	assert.True(t, u.Active())

	u.Role = RoleUser
	assert.False(t, u.Active())
}

func TestFindByEmailCaseInsensitive(t *testing.T) {
	users := fixtureUsers()

	found, ok := users.FindByEmail("FAWAZ@greedygame.com")
	require.True(t, ok)
	assert.Equal(t, int64(1), found.ID)

	_, ok = users.FindByEmail("nobody@greedygame.com")
	assert.False(t, ok)
}

func TestUsersNextID(t *testing.T) {
	assert.Equal(t, int64(4), fixtureUsers().NextID())
	assert.Equal(t, int64(1), Users{}.NextID())
}
