package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Menu types, ordered by specificity. Button entries are leaf actions
// (for example a "delete" button), not navigable pages.
const (
	MenuTypeDirectory = 1
	MenuTypePage      = 2
	MenuTypeButton    = 3
)

// Menu states.
const (
	MenuStateHidden  = 0
	MenuStateVisible = 1
)

// Menu Model
type Menu struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Label        string         `json:"label" gorm:"size:50;not null"`
	LabelEn      string         `json:"labelEn" gorm:"size:50"`
	Icon         string         `json:"icon" gorm:"size:50"`
	Router       string         `json:"router" gorm:"size:100"`
	Type         int            `json:"type" gorm:"not null"`
	MenuOrder    int            `json:"order" gorm:"column:menu_order;default:0;index"`
	State        int            `json:"state" gorm:"default:1"`
	ParentID     *uint          `json:"parentId" gorm:"index"`
	Parent       *Menu          `json:"-" gorm:"foreignKey:ParentID"`
	PermissionID *uint          `json:"permissionId"`
	Permission   *Permission    `json:"permission,omitempty" gorm:"foreignKey:PermissionID"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Menu) TableName() string {
	return "menus"
}

// RoleMenu relasi role -> menu, satu baris per grant.
type RoleMenu struct {
	ID     uint `json:"id" gorm:"primaryKey"`
	RoleID uint `json:"roleId" gorm:"uniqueIndex:idx_role_menu;not null"`
	MenuID uint `json:"menuId" gorm:"uniqueIndex:idx_role_menu;not null"`
}

func (RoleMenu) TableName() string {
	return "role_menus"
}

// ParseMenuState menerima representasi state dari query/body ("1", "true",
// angka, bool) dan mengembalikan enum kanonik. Semua handler wajib lewat
// sini sebelum nilai state menyentuh service atau engine.
func ParseMenuState(value interface{}) (int, error) {
	switch v := value.(type) {
	case nil:
		return 0, fmt.Errorf("state is empty")
	case bool:
		if v {
			return MenuStateVisible, nil
		}
		return MenuStateHidden, nil
	case int:
		return normalizeState(v)
	case int64:
		return normalizeState(int(v))
	case float64:
		return normalizeState(int(v))
	case string:
		s := strings.TrimSpace(strings.ToLower(v))
		if s == "" {
			return 0, fmt.Errorf("state is empty")
		}
		if s == "true" {
			return MenuStateVisible, nil
		}
		if s == "false" {
			return MenuStateHidden, nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("invalid state %q", v)
		}
		return normalizeState(n)
	default:
		return 0, fmt.Errorf("invalid state type %T", value)
	}
}

func normalizeState(n int) (int, error) {
	if n != MenuStateHidden && n != MenuStateVisible {
		return 0, fmt.Errorf("invalid state %d", n)
	}
	return n, nil
}

// ValidMenuType melaporkan apakah t salah satu dari tiga tipe menu.
func ValidMenuType(t int) bool {
	return t == MenuTypeDirectory || t == MenuTypePage || t == MenuTypeButton
}
