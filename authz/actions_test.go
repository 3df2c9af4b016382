package authz

import (
	"testing"

	"fiber-admin/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseMenu() models.Menu {
	return models.Menu{
		ID:        10,
		Label:     "Orders",
		LabelEn:   "Orders",
		Type:      models.MenuTypePage,
		MenuOrder: 5,
		State:     models.MenuStateVisible,
	}
}

func TestGenerateActionsDerivesPermissionsAndButtons(t *testing.T) {
	labels := map[string]string{
		"create": "创建权限",
		"delete": "删除权限",
	}

	pairs, err := GenerateActions(baseMenu(), "orders", []string{"create", "delete"}, labels, nil)
	require.NoError(t, err)
	require.Len(t, pairs, 2)

	assert.Equal(t, "orders/create", pairs[0].Permission.Name)
	assert.Equal(t, "orders/delete", pairs[1].Permission.Name)

	for _, pair := range pairs {
		assert.Equal(t, models.MenuTypeButton, pair.Menu.Type)
		require.NotNil(t, pair.Menu.ParentID)
		assert.Equal(t, uint(10), *pair.Menu.ParentID)
		assert.Equal(t, 5, pair.Menu.MenuOrder)
		assert.Equal(t, models.MenuStateVisible, pair.Menu.State)
		assert.False(t, pair.Reused)
	}
	assert.Equal(t, "Orders-创建权限", pairs[0].Menu.Label)
	assert.Equal(t, "Orders-删除权限", pairs[1].Menu.Label)
}

func TestGenerateActionsLabelFallback(t *testing.T) {
	pairs, err := GenerateActions(baseMenu(), "orders", []string{"export"}, nil, nil)
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	assert.Equal(t, "Orders-Export", pairs[0].Menu.Label)
}

func TestGenerateActionsReusesExistingPermission(t *testing.T) {
	existing := map[string]models.Permission{
		"orders/create": {ID: 33, Name: "orders/create"},
	}

	pairs, err := GenerateActions(baseMenu(), "orders", []string{"create", "delete"}, nil, existing)
	require.NoError(t, err)
	require.Len(t, pairs, 2)

	assert.True(t, pairs[0].Reused)
	assert.Equal(t, uint(33), pairs[0].Permission.ID)
	require.NotNil(t, pairs[0].Menu.PermissionID)
	assert.Equal(t, uint(33), *pairs[0].Menu.PermissionID)

	assert.False(t, pairs[1].Reused)
	assert.Zero(t, pairs[1].Permission.ID)
}

func TestGenerateActionsIdempotentNames(t *testing.T) {
	first, err := GenerateActions(baseMenu(), "orders", []string{"create", "delete"}, nil, nil)
	require.NoError(t, err)

	second, err := GenerateActions(baseMenu(), "orders", []string{"create", "export"}, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, first[0].Permission.Name, second[0].Permission.Name)
}

func TestGenerateActionsPreservesInputOrder(t *testing.T) {
	pairs, err := GenerateActions(baseMenu(), "orders", []string{"delete", "create", "export"}, nil, nil)
	require.NoError(t, err)
	require.Len(t, pairs, 3)
	assert.Equal(t, "orders/delete", pairs[0].Permission.Name)
	assert.Equal(t, "orders/create", pairs[1].Permission.Name)
	assert.Equal(t, "orders/export", pairs[2].Permission.Name)
}

func TestGenerateActionsRequiresBaseRule(t *testing.T) {
	_, err := GenerateActions(baseMenu(), "", []string{"create"}, nil, nil)
	assert.ErrorIs(t, err, ErrActionsWithoutRule)

	_, err = GenerateActions(baseMenu(), "   ", []string{"create"}, nil, nil)
	assert.ErrorIs(t, err, ErrActionsWithoutRule)
}

func TestGenerateActionsEmptyActionList(t *testing.T) {
	pairs, err := GenerateActions(baseMenu(), "", nil, nil, nil)
	require.NoError(t, err)
	assert.Nil(t, pairs)
}
