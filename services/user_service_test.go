package services

import (
	"testing"

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

func TestEffectivePermissionsMergesInheritedAndDirect(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewUserService(db, nil)

	mock.ExpectQuery("SELECT .* FROM `roles` JOIN user_roles ON user_roles\\.role_id = roles\\.id WHERE user_roles\\.user_id = \\?").
		WithArgs(42).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "editor"))

	mock.ExpectQuery("SELECT DISTINCT .* FROM `permissions` JOIN role_permissions ON role_permissions\\.permission_id = permissions\\.id WHERE role_permissions\\.role_id IN \\(\\?\\)").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("orders/create").AddRow("orders/delete"))

	mock.ExpectQuery("SELECT DISTINCT .* FROM `permissions` JOIN user_permissions ON user_permissions\\.permission_id = permissions\\.id WHERE user_permissions\\.user_id = \\?").
		WithArgs(42).
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("orders/delete").AddRow("articles/read"))

	names, err := svc.EffectivePermissions(42)
	require.NoError(t, err)
	assert.Equal(t, []string{"articles/read", "orders/create", "orders/delete"}, names)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEffectivePermissionsNoRoles(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewUserService(db, nil)

	mock.ExpectQuery("SELECT .* FROM `roles` JOIN user_roles").
		WithArgs(42).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	mock.ExpectQuery("SELECT DISTINCT .* FROM `permissions` JOIN user_permissions").
		WithArgs(42).
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("articles/read"))

	names, err := svc.EffectivePermissions(42)
	require.NoError(t, err)
	assert.Equal(t, []string{"articles/read"}, names)
}
