package models

import (
	"time"

	"gorm.io/gorm"
)

// Permission Model
type Permission struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"size:100;uniqueIndex;not null"`
	Description string         `json:"description" gorm:"size:200"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Permission) TableName() string {
	return "permissions"
}

// RolePermission relasi role -> permission.
type RolePermission struct {
	ID           uint `json:"id" gorm:"primaryKey"`
	RoleID       uint `json:"roleId" gorm:"uniqueIndex:idx_role_permission;not null"`
	PermissionID uint `json:"permissionId" gorm:"uniqueIndex:idx_role_permission;not null"`
}

func (RolePermission) TableName() string {
	return "role_permissions"
}

// UserPermission relasi langsung user -> permission.
type UserPermission struct {
	ID           uint `json:"id" gorm:"primaryKey"`
	UserID       uint `json:"userId" gorm:"uniqueIndex:idx_user_permission;not null"`
	PermissionID uint `json:"permissionId" gorm:"uniqueIndex:idx_user_permission;not null"`
}

func (UserPermission) TableName() string {
	return "user_permissions"
}
