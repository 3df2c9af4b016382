package services

import (
	"testing"
	"time"

	"fiber-admin/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uintPtr(v uint) *uint {
	return &v
}

func menuNode(id uint, parentID *uint) models.Menu {
	return models.Menu{
		ID:       id,
		Type:     models.MenuTypePage,
		State:    models.MenuStateVisible,
		ParentID: parentID,
	}
}

func menuRow(id uint, menuType int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "label", "label_en", "icon", "router", "type",
		"menu_order", "state", "parent_id", "permission_id",
		"created_at", "updated_at", "deleted_at",
	}).AddRow(id, "menu", "menu", "", "/menu", menuType,
		1, models.MenuStateVisible, nil, nil, time.Now(), time.Now(), nil)
}

func TestIsDescendantWalksChain(t *testing.T) {
	menus := []models.Menu{
		menuNode(1, nil),
		menuNode(2, uintPtr(1)),
		menuNode(3, uintPtr(2)),
		menuNode(4, nil),
	}

	assert.True(t, isDescendant(menus, 1, 2))
	assert.True(t, isDescendant(menus, 1, 3))
	assert.False(t, isDescendant(menus, 2, 1))
	assert.False(t, isDescendant(menus, 1, 4))
}

func TestIsDescendantDeepChainRejects(t *testing.T) {
	// rantai lebih dalam dari batas telusur: jawabannya harus true
	// supaya reparent yang tidak terbukti aman ditolak
	menus := []models.Menu{menuNode(1000, nil)}
	for id := uint(1001); id <= 1070; id++ {
		menus = append(menus, menuNode(id, uintPtr(id-1)))
	}

	assert.True(t, isDescendant(menus, 1000, 1070))
}

func TestIsDescendantCycleRejects(t *testing.T) {
	menus := []models.Menu{
		menuNode(1, uintPtr(2)),
		menuNode(2, uintPtr(1)),
		menuNode(3, nil),
	}

	assert.True(t, isDescendant(menus, 3, 1))
}

func TestCreateMenuRejectsActionsOnButton(t *testing.T) {
	svc := NewMenuService(nil)

	_, err := svc.CreateMenu(CreateMenuInput{
		Label:   "orders-create",
		Rule:    "orders",
		Type:    models.MenuTypeButton,
		Actions: []string{"create"},
	}, 1)
	assert.ErrorIs(t, err, ErrButtonNesting)
}

func TestCreateMenuRejectsButtonUnderButton(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewMenuService(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `menus` WHERE `menus`\\.`id` = \\?").
		WithArgs(2, 1).
		WillReturnRows(menuRow(2, models.MenuTypeButton))
	mock.ExpectRollback()

	_, err := svc.CreateMenu(CreateMenuInput{
		Label:    "orders-create",
		Type:     models.MenuTypeButton,
		ParentID: uintPtr(2),
	}, 1)
	assert.ErrorIs(t, err, ErrButtonNesting)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserMenuTreeUsesGivenRoleIDs(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewMenuService(db)

	// tidak ada query ke user_roles; role id dipakai apa adanya
	mock.ExpectQuery("SELECT DISTINCT `menu_id` FROM `role_menus` WHERE role_id IN \\(\\?\\)").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"menu_id"}).AddRow(1))
	mock.ExpectQuery("SELECT \\* FROM `menus` WHERE `menus`\\.`deleted_at` IS NULL ORDER BY menu_order asc").
		WillReturnRows(menuRow(1, models.MenuTypePage))

	tree, err := svc.UserMenuTree([]uint{7})
	require.NoError(t, err)
	require.Len(t, tree, 1)
	assert.Equal(t, uint(1), tree[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateMenuRejectsButtonUnderButton(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewMenuService(db)

	mock.ExpectQuery("SELECT \\* FROM `menus` WHERE `menus`\\.`id` = \\?").
		WithArgs(5, 1).
		WillReturnRows(menuRow(5, models.MenuTypeButton))
	mock.ExpectQuery("SELECT \\* FROM `menus` WHERE `menus`\\.`id` = \\?").
		WithArgs(2, 1).
		WillReturnRows(menuRow(2, models.MenuTypeButton))

	_, err := svc.UpdateMenu(5, UpdateMenuInput{
		Type:     models.MenuTypeButton,
		ParentID: uintPtr(2),
	})
	assert.ErrorIs(t, err, ErrButtonNesting)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateMenuRejectsButtonTypeWithButtonChildren(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewMenuService(db)

	mock.ExpectQuery("SELECT \\* FROM `menus` WHERE `menus`\\.`id` = \\?").
		WithArgs(5, 1).
		WillReturnRows(menuRow(5, models.MenuTypePage))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `menus` WHERE \\(?parent_id = \\? AND type = \\?\\)?").
		WithArgs(5, models.MenuTypeButton).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))

	_, err := svc.UpdateMenu(5, UpdateMenuInput{Type: models.MenuTypeButton})
	require.ErrorIs(t, err, ErrButtonNesting)
	assert.NoError(t, mock.ExpectationsWereMet())
}
