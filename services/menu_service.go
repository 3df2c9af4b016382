package services

import (
	"errors"
	"strings"

	"fiber-admin/authz"
	"fiber-admin/models"
	"fiber-admin/repositories"

	"gorm.io/gorm"
)

type MenuService struct {
	DB *gorm.DB
}

func NewMenuService(DB *gorm.DB) *MenuService {
	return &MenuService{DB: DB}
}

type CreateMenuInput struct {
	Label        string
	LabelEn      string
	Icon         string
	Router       string
	Rule         string
	Type         int
	Order        int
	State        int
	ParentID     *uint
	Actions      []string
	ActionLabels map[string]string
}

type UpdateMenuInput struct {
	Label    string
	LabelEn  string
	Icon     string
	Router   string
	Type     int
	Order    int
	State    int
	ParentID *uint
}

// UserMenuTree susun sidebar untuk user: menu yang di-grant lewat role,
// Visible, bukan Button, ditambah ancestor yang dibutuhkan supaya tree
// tetap tersambung. roleIDs datang dari klaim token, tidak di-query
// ulang.
func (s *MenuService) UserMenuTree(roleIDs []uint) ([]*authz.TreeItem, error) {
	menuRepo := repositories.NewMenuRepository(s.DB)

	grantedIDs, err := menuRepo.GrantedMenuIDs(roleIDs)
	if err != nil {
		return nil, err
	}
	all, err := menuRepo.GetAll()
	if err != nil {
		return nil, err
	}

	// Sidebar hanya menampilkan node Visible dan bukan Button; filter
	// dilakukan di sini sebelum closure dan build (bukan di engine).
	index := make(map[uint]*models.Menu, len(all))
	for i := range all {
		index[all[i].ID] = &all[i]
	}
	visible := make([]uint, 0, len(grantedIDs))
	for _, id := range grantedIDs {
		m, ok := index[id]
		if !ok {
			continue
		}
		if m.State != models.MenuStateVisible || m.Type >= models.MenuTypeButton {
			continue
		}
		visible = append(visible, id)
	}

	closure := authz.ResolveAncestors(visible, all)
	subset := make([]models.Menu, 0, len(closure))
	for _, id := range closure {
		if m, ok := index[id]; ok {
			subset = append(subset, *m)
		}
	}
	return authz.BuildTree(subset), nil
}

// PageMenus ambil tree menu milik role user dengan filter opsional,
// lalu paginasi di level root. Total mengikuti jumlah baris datar.
func (s *MenuService) PageMenus(userID uint, page, pageSize int, label, labelEn string, state *int) ([]*authz.TreeItem, int64, error) {
	userRepo := repositories.NewUserRepository(s.DB)
	roleIDs, err := userRepo.RoleIDs(userID)
	if err != nil {
		return nil, 0, err
	}
	if len(roleIDs) == 0 {
		return []*authz.TreeItem{}, 0, nil
	}

	query := s.DB.Model(&models.Menu{}).Preload("Permission").
		Joins("JOIN role_menus ON role_menus.menu_id = menus.id").
		Where("role_menus.role_id IN ?", roleIDs).
		Distinct("menus.*")
	if label != "" {
		query = query.Where("menus.label LIKE ?", "%"+label+"%")
	}
	if labelEn != "" {
		query = query.Where("menus.label_en LIKE ?", "%"+labelEn+"%")
	}
	if state != nil {
		query = query.Where("menus.state = ?", *state)
	}

	var menus []models.Menu
	if err := query.Order("menus.menu_order asc").Find(&menus).Error; err != nil {
		return nil, 0, err
	}

	tree := authz.BuildTree(menus)
	total := int64(len(menus))

	start := (page - 1) * pageSize
	if start >= len(tree) {
		return []*authz.TreeItem{}, total, nil
	}
	end := start + pageSize
	if end > len(tree) {
		end = len(tree)
	}
	return tree[start:end], total, nil
}

// SelectTree kembalikan seluruh menu hidup sebagai tree widget pilihan.
func (s *MenuService) SelectTree() ([]*authz.SelectTreeItem, error) {
	menuRepo := repositories.NewMenuRepository(s.DB)
	menus, err := menuRepo.GetAll()
	if err != nil {
		return nil, err
	}
	return authz.BuildSelectTree(menus), nil
}

// MenuDetail ambil satu menu hidup.
func (s *MenuService) MenuDetail(id uint) (*models.Menu, error) {
	menu, err := repositories.NewMenuRepository(s.DB).GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMenuNotFound
	}
	return menu, err
}

// CreateMenu buat menu baru, opsional dengan permission dasar dan
// bundel tombol action. Seluruhnya jalan dalam satu transaksi: kalau
// satu action gagal, tidak ada permission, menu, atau grant yang
// tersisa.
func (s *MenuService) CreateMenu(input CreateMenuInput, creatorID uint) (*models.Menu, error) {
	if len(input.Actions) > 0 && strings.TrimSpace(input.Rule) == "" {
		return nil, authz.ErrActionsWithoutRule
	}
	// Action menghasilkan anak Button; menu Button tidak boleh punya
	// anak Button.
	if len(input.Actions) > 0 && input.Type == models.MenuTypeButton {
		return nil, ErrButtonNesting
	}

	var created *models.Menu
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		menuRepo := repositories.NewMenuRepository(tx)
		permRepo := repositories.NewPermissionRepository(tx)

		if input.ParentID != nil {
			parent, err := menuRepo.GetByID(*input.ParentID)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrParentMenuNotFound
			}
			if err != nil {
				return err
			}
			if parent.Type == models.MenuTypeButton && input.Type == models.MenuTypeButton {
				return ErrButtonNesting
			}
		}

		menu := &models.Menu{
			Label:     input.Label,
			LabelEn:   input.LabelEn,
			Icon:      input.Icon,
			Router:    input.Router,
			Type:      input.Type,
			MenuOrder: input.Order,
			State:     input.State,
			ParentID:  input.ParentID,
		}

		// Permission dasar: tabrakan nama di jalur create langsung
		// adalah Conflict, bukan reuse.
		if rule := strings.TrimSpace(input.Rule); rule != "" {
			existing, err := permRepo.GetByName(rule)
			if err == nil {
				return &PermissionExistsError{ID: existing.ID, Name: rule}
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			perm := &models.Permission{Name: rule, Description: input.Label}
			if err := permRepo.Create(perm); err != nil {
				return err
			}
			menu.PermissionID = &perm.ID
		}

		if err := menuRepo.Create(menu); err != nil {
			return err
		}

		menuIDs := []uint{menu.ID}
		permissionIDs := []uint{}
		if menu.PermissionID != nil {
			permissionIDs = append(permissionIDs, *menu.PermissionID)
		}

		if len(input.Actions) > 0 {
			names := make([]string, 0, len(input.Actions))
			for _, action := range input.Actions {
				names = append(names, input.Rule+"/"+action)
			}
			existing, err := permRepo.GetByNames(names)
			if err != nil {
				return err
			}

			pairs, err := authz.GenerateActions(*menu, input.Rule, input.Actions, input.ActionLabels, existing)
			if err != nil {
				return err
			}
			for i := range pairs {
				pair := &pairs[i]
				if !pair.Reused {
					if err := permRepo.Create(&pair.Permission); err != nil {
						return err
					}
				}
				pid := pair.Permission.ID
				pair.Menu.PermissionID = &pid
				if err := menuRepo.Create(&pair.Menu); err != nil {
					return err
				}
				menuIDs = append(menuIDs, pair.Menu.ID)
				permissionIDs = append(permissionIDs, pid)
			}
		}

		// Menu baru langsung di-grant ke semua role si pembuat supaya
		// dia tidak kehilangan akses ke menu yang barusan dia buat.
		userRepo := repositories.NewUserRepository(tx)
		roleRepo := repositories.NewRoleRepository(tx)
		roleIDs, err := userRepo.RoleIDs(creatorID)
		if err != nil {
			return err
		}
		for _, roleID := range roleIDs {
			if err := roleRepo.AppendGrants(roleID, menuIDs, permissionIDs); err != nil {
				return err
			}
		}

		created = menu
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateMenu ubah menu, termasuk pindah parent. Menu tidak boleh jadi
// ancestor dirinya sendiri.
func (s *MenuService) UpdateMenu(id uint, input UpdateMenuInput) (*models.Menu, error) {
	menuRepo := repositories.NewMenuRepository(s.DB)

	menu, err := menuRepo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMenuNotFound
	}
	if err != nil {
		return nil, err
	}

	if input.ParentID != nil {
		if *input.ParentID == id {
			return nil, ErrMenuOwnParent
		}
		parent, err := menuRepo.GetByID(*input.ParentID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrParentMenuNotFound
		}
		if err != nil {
			return nil, err
		}
		if parent.Type == models.MenuTypeButton && input.Type == models.MenuTypeButton {
			return nil, ErrButtonNesting
		}
		all, err := menuRepo.GetAll()
		if err != nil {
			return nil, err
		}
		if isDescendant(all, id, *input.ParentID) {
			return nil, ErrMenuOwnParent
		}
	}

	// Ganti type ke Button ditolak selama masih ada anak Button hidup.
	if input.Type == models.MenuTypeButton {
		hasButtons, err := menuRepo.HasButtonChildren(id)
		if err != nil {
			return nil, err
		}
		if hasButtons {
			return nil, ErrButtonNesting
		}
	}

	menu.Label = input.Label
	menu.LabelEn = input.LabelEn
	menu.Icon = input.Icon
	menu.Router = input.Router
	menu.Type = input.Type
	menu.MenuOrder = input.Order
	menu.State = input.State
	menu.ParentID = input.ParentID

	if err := menuRepo.Update(menu); err != nil {
		return nil, err
	}
	return menu, nil
}

// isDescendant cek apakah candidate berada di subtree menuID dengan
// menelusuri rantai parent candidate ke atas. Kalau rantai tidak
// mencapai root dalam batas kedalaman, jawabannya true: reparent yang
// tidak bisa dibuktikan aman ditolak, bukan diloloskan.
func isDescendant(all []models.Menu, menuID, candidate uint) bool {
	parents := make(map[uint]*uint, len(all))
	for i := range all {
		parents[all[i].ID] = all[i].ParentID
	}
	cur := candidate
	for depth := 0; depth < maxTreeDepth; depth++ {
		parent, ok := parents[cur]
		if !ok || parent == nil {
			return false
		}
		if *parent == menuID {
			return true
		}
		cur = *parent
	}
	return true
}

const maxTreeDepth = 64

// ChangeState ubah state Hidden/Visible satu menu.
func (s *MenuService) ChangeState(id uint, state int) error {
	menuRepo := repositories.NewMenuRepository(s.DB)
	menu, err := menuRepo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrMenuNotFound
	}
	if err != nil {
		return err
	}
	menu.State = state
	return menuRepo.Update(menu)
}

// DeleteMenu soft delete; ditolak selama masih ada anak hidup.
func (s *MenuService) DeleteMenu(id uint) error {
	menuRepo := repositories.NewMenuRepository(s.DB)
	if _, err := menuRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMenuNotFound
		}
		return err
	}
	hasChildren, err := menuRepo.HasLiveChildren(id)
	if err != nil {
		return err
	}
	if hasChildren {
		return ErrMenuHasChildren
	}
	return menuRepo.Delete(id)
}

// PurgeMenu hard delete, tidak bisa dibatalkan. Syarat anak sama
// dengan soft delete.
func (s *MenuService) PurgeMenu(id uint) error {
	menuRepo := repositories.NewMenuRepository(s.DB)
	hasChildren, err := menuRepo.HasLiveChildren(id)
	if err != nil {
		return err
	}
	if hasChildren {
		return ErrMenuHasChildren
	}
	return menuRepo.HardDelete(id)
}
