package models

import (
	"time"

	"fiber-admin/types"

	"gorm.io/gorm"
)

// Article statuses.
const (
	ArticleStatusDraft     = 0
	ArticleStatusPublished = 1
)

// Article Model
type Article struct {
	ID        types.SnowflakeID `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Title     string            `json:"title" gorm:"size:200;not null"`
	Author    string            `json:"author" gorm:"size:100"`
	Content   string            `json:"content" gorm:"type:text"`
	Status    int               `json:"status" gorm:"default:1"`
	Creator   string            `json:"creator" gorm:"size:100"`
	Updater   string            `json:"updater" gorm:"size:100"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
	DeletedAt gorm.DeletedAt    `json:"-" gorm:"index"`
}

func (Article) TableName() string {
	return "articles"
}
