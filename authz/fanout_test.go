package authz

import (
	"testing"

	"fiber-admin/models"

	"github.com/stretchr/testify/assert"
)

func menuWithPermission(id uint, permissionID *uint) models.Menu {
	m := menu(id, nil, 0)
	m.PermissionID = permissionID
	return m
}

func TestResolvePermissionsDeduplicates(t *testing.T) {
	pid := uintPtr(7)
	menus := []models.Menu{
		menuWithPermission(1, pid),
		menuWithPermission(2, pid),
	}

	got := ResolvePermissions(menus)
	assert.Equal(t, []uint{7}, got)
}

func TestResolvePermissionsSkipsMenusWithoutPermission(t *testing.T) {
	menus := []models.Menu{
		menuWithPermission(1, nil),
		menuWithPermission(2, uintPtr(3)),
		menuWithPermission(3, nil),
	}

	got := ResolvePermissions(menus)
	assert.Equal(t, []uint{3}, got)
}

func TestResolvePermissionsPreservesInputOrder(t *testing.T) {
	menus := []models.Menu{
		menuWithPermission(1, uintPtr(9)),
		menuWithPermission(2, uintPtr(4)),
		menuWithPermission(3, uintPtr(9)),
		menuWithPermission(4, uintPtr(1)),
	}

	got := ResolvePermissions(menus)
	assert.Equal(t, []uint{9, 4, 1}, got)
}

func TestResolvePermissionsEmptyInput(t *testing.T) {
	assert.Empty(t, ResolvePermissions(nil))
}
