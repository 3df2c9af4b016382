package services

import (
	"errors"
	"strconv"

	"fiber-admin/authz"
	"fiber-admin/models"
	"fiber-admin/repositories"

	"gorm.io/gorm"
)

type RoleService struct {
	DB *gorm.DB
}

func NewRoleService(DB *gorm.DB) *RoleService {
	return &RoleService{DB: DB}
}

type RoleItem struct {
	models.Role
	MenuCount       int64 `json:"menuCount"`
	PermissionCount int64 `json:"permissionCount"`
}

// PageRoles daftar role hidup dengan jumlah grant, difilter nama.
func (s *RoleService) PageRoles(page, pageSize int, name string) ([]RoleItem, int64, error) {
	query := s.DB.Model(&models.Role{})
	if name != "" {
		query = query.Where("name LIKE ?", "%"+name+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var roles []models.Role
	if err := query.Order("id asc").Offset((page - 1) * pageSize).Limit(pageSize).Find(&roles).Error; err != nil {
		return nil, 0, err
	}

	roleRepo := repositories.NewRoleRepository(s.DB)
	items := make([]RoleItem, 0, len(roles))
	for _, role := range roles {
		menuCount, err := roleRepo.MenuCount(role.ID)
		if err != nil {
			return nil, 0, err
		}
		permissionCount, err := roleRepo.PermissionCount(role.ID)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, RoleItem{Role: role, MenuCount: menuCount, PermissionCount: permissionCount})
	}
	return items, total, nil
}

// ListRoles seluruh role hidup.
func (s *RoleService) ListRoles() ([]models.Role, error) {
	return repositories.NewRoleRepository(s.DB).GetAll()
}

// CreateRole buat role baru, opsional langsung dengan grant menu.
// Permission ikut di-fan-out dari menu yang dipilih.
func (s *RoleService) CreateRole(name, description string, authorize []uint) (*models.Role, error) {
	var created *models.Role
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		roleRepo := repositories.NewRoleRepository(tx)

		if _, err := roleRepo.GetByName(name); err == nil {
			return ErrRoleExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		role := &models.Role{Name: name, Description: description}
		if err := roleRepo.Create(role); err != nil {
			return err
		}

		if len(authorize) > 0 {
			if err := s.replaceGrants(tx, role.ID, authorize); err != nil {
				return err
			}
		}
		created = role
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateRole ubah role; authorize nil berarti grant tidak disentuh,
// selain itu seluruh grant diganti (delete lalu insert, satu transaksi).
func (s *RoleService) UpdateRole(id uint, name, description string, authorize []uint) (*models.Role, error) {
	var updated *models.Role
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		roleRepo := repositories.NewRoleRepository(tx)

		role, err := roleRepo.GetByID(id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRoleNotFound
		}
		if err != nil {
			return err
		}

		if other, err := roleRepo.GetByName(name); err == nil && other.ID != id {
			return ErrRoleExists
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		role.Name = name
		role.Description = description
		if err := roleRepo.Update(role); err != nil {
			return err
		}

		if authorize != nil {
			if err := s.replaceGrants(tx, role.ID, authorize); err != nil {
				return err
			}
		}
		updated = role
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// replaceGrants ganti seluruh grant menu role dengan menuIDs (hanya
// yang masih hidup) plus permission hasil fan-out.
func (s *RoleService) replaceGrants(tx *gorm.DB, roleID uint, menuIDs []uint) error {
	menuRepo := repositories.NewMenuRepository(tx)
	menus, err := menuRepo.GetByIDs(menuIDs)
	if err != nil {
		return err
	}
	liveIDs := make([]uint, 0, len(menus))
	for _, m := range menus {
		liveIDs = append(liveIDs, m.ID)
	}
	permissionIDs := authz.ResolvePermissions(menus)
	return repositories.NewRoleRepository(tx).ReplaceGrants(roleID, liveIDs, permissionIDs)
}

// RoleDetail role plus daftar id menu yang di-grant.
func (s *RoleService) RoleDetail(id uint) (*models.Role, []uint, error) {
	roleRepo := repositories.NewRoleRepository(s.DB)
	role, err := roleRepo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, ErrRoleNotFound
	}
	if err != nil {
		return nil, nil, err
	}
	menuIDs, err := roleRepo.MenuIDs(id)
	if err != nil {
		return nil, nil, err
	}
	return role, menuIDs, nil
}

// DeleteRole soft delete; role admin dilindungi.
func (s *RoleService) DeleteRole(id uint) error {
	roleRepo := repositories.NewRoleRepository(s.DB)
	role, err := roleRepo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrRoleNotFound
	}
	if err != nil {
		return err
	}
	if role.Name == "admin" {
		return ErrRoleProtected
	}
	return roleRepo.Delete(id)
}

type AuthorizeData struct {
	DefaultCheckedKeys []string                `json:"defaultCheckedKeys"`
	TreeData           []*authz.SelectTreeItem `json:"treeData"`
}

// Authorize data untuk widget otorisasi role: seluruh menu hidup
// sebagai tree pilihan, menu yang sudah di-grant sebagai checked keys.
func (s *RoleService) Authorize(roleID uint) (*AuthorizeData, error) {
	roleRepo := repositories.NewRoleRepository(s.DB)
	if _, err := roleRepo.GetByID(roleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoleNotFound
		}
		return nil, err
	}

	menus, err := repositories.NewMenuRepository(s.DB).GetAll()
	if err != nil {
		return nil, err
	}
	menuIDs, err := roleRepo.MenuIDs(roleID)
	if err != nil {
		return nil, err
	}

	checked := make([]string, 0, len(menuIDs))
	for _, id := range menuIDs {
		checked = append(checked, strconv.FormatUint(uint64(id), 10))
	}
	return &AuthorizeData{
		DefaultCheckedKeys: checked,
		TreeData:           authz.BuildSelectTree(menus),
	}, nil
}
