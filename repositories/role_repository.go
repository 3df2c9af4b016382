package repositories

import (
	"fiber-admin/models"

	"gorm.io/gorm"
)

type RoleRepository struct {
	DB *gorm.DB
}

func NewRoleRepository(DB *gorm.DB) *RoleRepository {
	return &RoleRepository{DB: DB}
}

// Create role
func (r *RoleRepository) Create(role *models.Role) error {
	return r.DB.Create(role).Error
}

// Get role by ID
func (r *RoleRepository) GetByID(id uint) (*models.Role, error) {
	var role models.Role
	err := r.DB.First(&role, id).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// Get role by name
func (r *RoleRepository) GetByName(name string) (*models.Role, error) {
	var role models.Role
	err := r.DB.Where("name = ?", name).First(&role).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// Get all roles (belum dihapus)
func (r *RoleRepository) GetAll() ([]models.Role, error) {
	var roles []models.Role
	err := r.DB.Find(&roles).Error
	return roles, err
}

// Update role
func (r *RoleRepository) Update(role *models.Role) error {
	return r.DB.Save(role).Error
}

// Soft delete role
func (r *RoleRepository) Delete(id uint) error {
	return r.DB.Delete(&models.Role{}, id).Error
}

// MenuCount hitung menu yang di-grant ke role.
func (r *RoleRepository) MenuCount(roleID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&models.RoleMenu{}).Where("role_id = ?", roleID).Count(&count).Error
	return count, err
}

// PermissionCount hitung permission yang melekat ke role.
func (r *RoleRepository) PermissionCount(roleID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&models.RolePermission{}).Where("role_id = ?", roleID).Count(&count).Error
	return count, err
}

// MenuIDs ambil id menu yang di-grant ke role.
func (r *RoleRepository) MenuIDs(roleID uint) ([]uint, error) {
	var ids []uint
	err := r.DB.Model(&models.RoleMenu{}).Where("role_id = ?", roleID).Pluck("menu_id", &ids).Error
	return ids, err
}

// ReplaceGrants ganti seluruh grant menu + permission milik role dengan
// set baru. Delete dulu baru insert; caller wajib membungkusnya dalam
// transaksi supaya pembaca tidak pernah melihat role tanpa grant.
func (r *RoleRepository) ReplaceGrants(roleID uint, menuIDs []uint, permissionIDs []uint) error {
	if err := r.DB.Where("role_id = ?", roleID).Delete(&models.RoleMenu{}).Error; err != nil {
		return err
	}
	if err := r.DB.Where("role_id = ?", roleID).Delete(&models.RolePermission{}).Error; err != nil {
		return err
	}

	if len(menuIDs) > 0 {
		roleMenus := make([]models.RoleMenu, 0, len(menuIDs))
		for _, id := range menuIDs {
			roleMenus = append(roleMenus, models.RoleMenu{RoleID: roleID, MenuID: id})
		}
		if err := r.DB.Create(&roleMenus).Error; err != nil {
			return err
		}
	}
	if len(permissionIDs) > 0 {
		rolePermissions := make([]models.RolePermission, 0, len(permissionIDs))
		for _, id := range permissionIDs {
			rolePermissions = append(rolePermissions, models.RolePermission{RoleID: roleID, PermissionID: id})
		}
		if err := r.DB.Create(&rolePermissions).Error; err != nil {
			return err
		}
	}
	return nil
}

// AppendGrants tambahkan grant menu + permission tanpa menghapus yang
// sudah ada. Pasangan yang sudah ada dilewati.
func (r *RoleRepository) AppendGrants(roleID uint, menuIDs []uint, permissionIDs []uint) error {
	for _, id := range menuIDs {
		var count int64
		if err := r.DB.Model(&models.RoleMenu{}).
			Where("role_id = ? AND menu_id = ?", roleID, id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := r.DB.Create(&models.RoleMenu{RoleID: roleID, MenuID: id}).Error; err != nil {
			return err
		}
	}
	for _, id := range permissionIDs {
		var count int64
		if err := r.DB.Model(&models.RolePermission{}).
			Where("role_id = ? AND permission_id = ?", roleID, id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := r.DB.Create(&models.RolePermission{RoleID: roleID, PermissionID: id}).Error; err != nil {
			return err
		}
	}
	return nil
}
