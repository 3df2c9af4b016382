package repositories

import (
	"fiber-admin/models"

	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(DB *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: DB}
}

// Create menu
func (r *MenuRepository) Create(menu *models.Menu) error {
	return r.DB.Create(menu).Error
}

// Get menu by ID, hanya yang belum dihapus
func (r *MenuRepository) GetByID(id uint) (*models.Menu, error) {
	var menu models.Menu
	err := r.DB.Preload("Permission").First(&menu, id).Error
	if err != nil {
		return nil, err
	}
	return &menu, nil
}

// Get menus by ID set
func (r *MenuRepository) GetByIDs(ids []uint) ([]models.Menu, error) {
	var menus []models.Menu
	if len(ids) == 0 {
		return menus, nil
	}
	err := r.DB.Preload("Permission").Where("id IN ?", ids).Find(&menus).Error
	return menus, err
}

// Get all menus (belum dihapus)
func (r *MenuRepository) GetAll() ([]models.Menu, error) {
	var menus []models.Menu
	err := r.DB.Preload("Permission").Order("menu_order asc").Find(&menus).Error
	return menus, err
}

// GetByRoleIDs ambil menu yang di-grant ke salah satu role.
func (r *MenuRepository) GetByRoleIDs(roleIDs []uint) ([]models.Menu, error) {
	var menus []models.Menu
	if len(roleIDs) == 0 {
		return menus, nil
	}
	err := r.DB.Preload("Permission").
		Joins("JOIN role_menus ON role_menus.menu_id = menus.id").
		Where("role_menus.role_id IN ?", roleIDs).
		Distinct("menus.*").
		Order("menus.menu_order asc").
		Find(&menus).Error
	return menus, err
}

// HasLiveChildren cek apakah masih ada anak yang belum dihapus.
func (r *MenuRepository) HasLiveChildren(id uint) (bool, error) {
	var count int64
	err := r.DB.Model(&models.Menu{}).Where("parent_id = ?", id).Count(&count).Error
	return count > 0, err
}

// HasButtonChildren cek apakah ada anak hidup bertipe Button.
func (r *MenuRepository) HasButtonChildren(id uint) (bool, error) {
	var count int64
	err := r.DB.Model(&models.Menu{}).
		Where("parent_id = ? AND type = ?", id, models.MenuTypeButton).
		Count(&count).Error
	return count > 0, err
}

// Update menu
func (r *MenuRepository) Update(menu *models.Menu) error {
	return r.DB.Save(menu).Error
}

// Soft delete menu
func (r *MenuRepository) Delete(id uint) error {
	return r.DB.Delete(&models.Menu{}, id).Error
}

// Hard delete menu, tidak bisa dibatalkan
func (r *MenuRepository) HardDelete(id uint) error {
	return r.DB.Unscoped().Delete(&models.Menu{}, id).Error
}

// GrantedMenuIDs ambil id menu yang sudah di-grant ke role.
func (r *MenuRepository) GrantedMenuIDs(roleIDs []uint) ([]uint, error) {
	var ids []uint
	if len(roleIDs) == 0 {
		return ids, nil
	}
	err := r.DB.Model(&models.RoleMenu{}).
		Where("role_id IN ?", roleIDs).
		Distinct().
		Pluck("menu_id", &ids).Error
	return ids, err
}
