package repositories

import (
	"fiber-admin/models"

	"gorm.io/gorm"
)

type PermissionRepository struct {
	DB *gorm.DB
}

func NewPermissionRepository(DB *gorm.DB) *PermissionRepository {
	return &PermissionRepository{DB: DB}
}

// Create permission
func (r *PermissionRepository) Create(permission *models.Permission) error {
	return r.DB.Create(permission).Error
}

// Get permission by ID
func (r *PermissionRepository) GetByID(id uint) (*models.Permission, error) {
	var permission models.Permission
	err := r.DB.First(&permission, id).Error
	if err != nil {
		return nil, err
	}
	return &permission, nil
}

// Get permission by name
func (r *PermissionRepository) GetByName(name string) (*models.Permission, error) {
	var permission models.Permission
	err := r.DB.Where("name = ?", name).First(&permission).Error
	if err != nil {
		return nil, err
	}
	return &permission, nil
}

// GetByNames ambil permission yang namanya ada di daftar, di-key nama.
func (r *PermissionRepository) GetByNames(names []string) (map[string]models.Permission, error) {
	result := make(map[string]models.Permission, len(names))
	if len(names) == 0 {
		return result, nil
	}
	var permissions []models.Permission
	if err := r.DB.Where("name IN ?", names).Find(&permissions).Error; err != nil {
		return nil, err
	}
	for _, p := range permissions {
		result[p.Name] = p
	}
	return result, nil
}

// Get all permissions
func (r *PermissionRepository) GetAll() ([]models.Permission, error) {
	var permissions []models.Permission
	err := r.DB.Order("id asc").Find(&permissions).Error
	return permissions, err
}

// Update permission
func (r *PermissionRepository) Update(permission *models.Permission) error {
	return r.DB.Save(permission).Error
}

// Soft delete permission
func (r *PermissionRepository) Delete(id uint) error {
	return r.DB.Delete(&models.Permission{}, id).Error
}

// RolePermissionNames ambil nama permission yang melekat ke role set.
func (r *PermissionRepository) RolePermissionNames(roleIDs []uint) ([]string, error) {
	var names []string
	if len(roleIDs) == 0 {
		return names, nil
	}
	err := r.DB.Model(&models.Permission{}).
		Joins("JOIN role_permissions ON role_permissions.permission_id = permissions.id").
		Where("role_permissions.role_id IN ?", roleIDs).
		Distinct().
		Pluck("permissions.name", &names).Error
	return names, err
}

// UserPermissionNames ambil nama permission yang di-grant langsung ke user.
func (r *PermissionRepository) UserPermissionNames(userID uint) ([]string, error) {
	var names []string
	err := r.DB.Model(&models.Permission{}).
		Joins("JOIN user_permissions ON user_permissions.permission_id = permissions.id").
		Where("user_permissions.user_id = ?", userID).
		Distinct().
		Pluck("permissions.name", &names).Error
	return names, err
}
