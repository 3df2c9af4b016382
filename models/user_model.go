package models

import (
	"time"

	"gorm.io/gorm"
)

// User statuses.
const (
	UserStatusDisabled = 0
	UserStatusEnabled  = 1
)

// User Model
type User struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Username  string         `json:"username" gorm:"size:50;uniqueIndex;not null"`
	Password  string         `json:"-" gorm:"size:128;not null"`
	Email     string         `json:"email" gorm:"size:100"`
	Status    int            `json:"status" gorm:"default:1"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (User) TableName() string {
	return "users"
}

// LoginLog mencatat setiap login yang berhasil.
type LoginLog struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	SessionID string    `json:"sessionId" gorm:"size:64;index"`
	UserID    uint      `json:"userId" gorm:"index"`
	IPAddress string    `json:"ipAddress" gorm:"size:64"`
	UserAgent string    `json:"userAgent" gorm:"size:255"`
	LoginAt   time.Time `json:"loginAt"`
}

func (LoginLog) TableName() string {
	return "login_logs"
}
