package database

import (
	"fiber-admin/models"

	"gorm.io/gorm"
)

// Migrate auto migrate semua model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.Permission{},
		&models.Menu{},
		&models.RoleMenu{},
		&models.RolePermission{},
		&models.UserRole{},
		&models.UserPermission{},
		&models.Article{},
		&models.LoginLog{},
	)
}
