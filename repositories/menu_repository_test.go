package repositories

import (
	"regexp"
	"testing"
	"time"

	"fiber-admin/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return db, mock
}

func menuRows(ids ...uint) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "label", "label_en", "icon", "router", "type",
		"menu_order", "state", "parent_id", "permission_id",
		"created_at", "updated_at", "deleted_at",
	})
	now := time.Now()
	for _, id := range ids {
		rows.AddRow(id, "menu", "menu", "", "/menu", models.MenuTypePage,
			int(id), models.MenuStateVisible, nil, nil, now, now, nil)
	}
	return rows
}

func TestMenuRepositoryGetByIDScopesSoftDelete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMenuRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `menus` WHERE `menus`.`id` = ? AND `menus`.`deleted_at` IS NULL")).
		WithArgs(7, 1).
		WillReturnRows(menuRows(7))

	menu, err := repo.GetByID(7)
	require.NoError(t, err)
	assert.Equal(t, uint(7), menu.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMenuRepositoryGetByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMenuRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `menus`").
		WillReturnRows(menuRows())

	_, err := repo.GetByID(404)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestMenuRepositoryGetAllOrdersByMenuOrder(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMenuRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `menus` WHERE `menus`.`deleted_at` IS NULL ORDER BY menu_order asc").
		WillReturnRows(menuRows(1, 2, 3))

	menus, err := repo.GetAll()
	require.NoError(t, err)
	assert.Len(t, menus, 3)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMenuRepositoryGetByIDsEmptySkipsQuery(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMenuRepository(db)

	menus, err := repo.GetByIDs(nil)
	require.NoError(t, err)
	assert.Empty(t, menus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMenuRepositoryGetByRoleIDs(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMenuRepository(db)

	mock.ExpectQuery("SELECT DISTINCT .* FROM `menus` JOIN role_menus ON role_menus\\.menu_id = menus\\.id WHERE role_menus\\.role_id IN \\(\\?,\\?\\)").
		WithArgs(1, 2).
		WillReturnRows(menuRows(5, 6))

	menus, err := repo.GetByRoleIDs([]uint{1, 2})
	require.NoError(t, err)
	assert.Len(t, menus, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMenuRepositoryHasLiveChildren(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMenuRepository(db)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `menus` WHERE parent_id = \\? AND `menus`.`deleted_at` IS NULL").
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(2))

	has, err := repo.HasLiveChildren(3)
	require.NoError(t, err)
	assert.True(t, has)
}

func TestMenuRepositoryDeleteIsSoft(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMenuRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `menus` SET `deleted_at`=\\? WHERE `menus`.`id` = \\? AND `menus`.`deleted_at` IS NULL").
		WithArgs(sqlmock.AnyArg(), 9).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Delete(9)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMenuRepositoryHardDelete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMenuRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `menus` WHERE `menus`.`id` = \\?").
		WithArgs(9).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.HardDelete(9)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMenuRepositoryGrantedMenuIDs(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMenuRepository(db)

	mock.ExpectQuery("SELECT DISTINCT `menu_id` FROM `role_menus` WHERE role_id IN \\(\\?,\\?\\)").
		WithArgs(1, 2).
		WillReturnRows(sqlmock.NewRows([]string{"menu_id"}).AddRow(4).AddRow(8))

	ids, err := repo.GrantedMenuIDs([]uint{1, 2})
	require.NoError(t, err)
	assert.Equal(t, []uint{4, 8}, ids)
}
