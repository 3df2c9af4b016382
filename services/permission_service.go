package services

import (
	"errors"

	"fiber-admin/models"
	"fiber-admin/repositories"

	"gorm.io/gorm"
)

type PermissionService struct {
	DB *gorm.DB
}

func NewPermissionService(DB *gorm.DB) *PermissionService {
	return &PermissionService{DB: DB}
}

// PagePermissions daftar permission hidup, difilter nama.
func (s *PermissionService) PagePermissions(page, pageSize int, name string) ([]models.Permission, int64, error) {
	query := s.DB.Model(&models.Permission{})
	if name != "" {
		query = query.Where("name LIKE ?", "%"+name+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var permissions []models.Permission
	if err := query.Order("id asc").Offset((page - 1) * pageSize).Limit(pageSize).Find(&permissions).Error; err != nil {
		return nil, 0, err
	}
	return permissions, total, nil
}

// ListPermissions seluruh permission hidup.
func (s *PermissionService) ListPermissions() ([]models.Permission, error) {
	return repositories.NewPermissionRepository(s.DB).GetAll()
}

// CreatePermission buat permission baru; nama yang sudah dipakai
// ditolak dengan id permission lama terlampir.
func (s *PermissionService) CreatePermission(name, description string) (*models.Permission, error) {
	permRepo := repositories.NewPermissionRepository(s.DB)

	existing, err := permRepo.GetByName(name)
	if err == nil {
		return nil, &PermissionExistsError{ID: existing.ID, Name: name}
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	permission := &models.Permission{Name: name, Description: description}
	if err := permRepo.Create(permission); err != nil {
		return nil, err
	}
	return permission, nil
}

// UpdatePermission ubah nama/deskripsi permission.
func (s *PermissionService) UpdatePermission(id uint, name, description string) (*models.Permission, error) {
	permRepo := repositories.NewPermissionRepository(s.DB)

	permission, err := permRepo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPermissionNotFound
	}
	if err != nil {
		return nil, err
	}

	if other, err := permRepo.GetByName(name); err == nil && other.ID != id {
		return nil, &PermissionExistsError{ID: other.ID, Name: name}
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	permission.Name = name
	permission.Description = description
	if err := permRepo.Update(permission); err != nil {
		return nil, err
	}
	return permission, nil
}

// DeletePermission soft delete permission.
func (s *PermissionService) DeletePermission(id uint) error {
	permRepo := repositories.NewPermissionRepository(s.DB)
	if _, err := permRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPermissionNotFound
		}
		return err
	}
	return permRepo.Delete(id)
}
