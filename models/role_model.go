package models

import (
	"time"

	"gorm.io/gorm"
)

// Role Model
type Role struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"size:50;uniqueIndex;not null"`
	Description string         `json:"description" gorm:"size:200"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Role) TableName() string {
	return "roles"
}

// UserRole relasi user -> role.
type UserRole struct {
	ID     uint `json:"id" gorm:"primaryKey"`
	UserID uint `json:"userId" gorm:"uniqueIndex:idx_user_role;not null"`
	RoleID uint `json:"roleId" gorm:"uniqueIndex:idx_user_role;not null"`
}

func (UserRole) TableName() string {
	return "user_roles"
}
