package services

import (
	"errors"
	"sort"
	"strconv"

	"fiber-admin/authz"
	"fiber-admin/models"
	"fiber-admin/repositories"
	"fiber-admin/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	DB     *gorm.DB
	Mailer *utils.Mailer
}

func NewUserService(DB *gorm.DB, mailer *utils.Mailer) *UserService {
	return &UserService{DB: DB, Mailer: mailer}
}

type UserItem struct {
	models.User
	RoleNames []string `json:"roleNames"`
}

type CreateUserInput struct {
	Username string
	Password string
	Email    string
	Status   int
	RoleIDs  []uint
}

type UpdateUserInput struct {
	Email   string
	Status  int
	RoleIDs []uint
}

// PageUsers daftar user hidup dengan nama role, difilter username.
func (s *UserService) PageUsers(page, pageSize int, username string) ([]UserItem, int64, error) {
	query := s.DB.Model(&models.User{})
	if username != "" {
		query = query.Where("username LIKE ?", "%"+username+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []models.User
	if err := query.Order("id asc").Offset((page - 1) * pageSize).Limit(pageSize).Find(&users).Error; err != nil {
		return nil, 0, err
	}

	userRepo := repositories.NewUserRepository(s.DB)
	items := make([]UserItem, 0, len(users))
	for _, user := range users {
		roles, err := userRepo.Roles(user.ID)
		if err != nil {
			return nil, 0, err
		}
		names := make([]string, 0, len(roles))
		for _, role := range roles {
			names = append(names, role.Name)
		}
		items = append(items, UserItem{User: user, RoleNames: names})
	}
	return items, total, nil
}

// ListUsers seluruh user hidup.
func (s *UserService) ListUsers() ([]models.User, error) {
	return repositories.NewUserRepository(s.DB).GetAll()
}

// UserDetail user plus role-nya.
func (s *UserService) UserDetail(id uint) (*models.User, []models.Role, error) {
	userRepo := repositories.NewUserRepository(s.DB)
	user, err := userRepo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, ErrUserNotFound
	}
	if err != nil {
		return nil, nil, err
	}
	roles, err := userRepo.Roles(id)
	if err != nil {
		return nil, nil, err
	}
	return user, roles, nil
}

// CreateUser buat user baru dengan password ter-bcrypt dan role awal.
// Kalau mailer aktif, user baru dikirimi email selamat datang.
func (s *UserService) CreateUser(input CreateUserInput) (*models.User, error) {
	var created *models.User
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		userRepo := repositories.NewUserRepository(tx)

		if _, err := userRepo.GetByUsername(input.Username); err == nil {
			return ErrUserExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		user := &models.User{
			Username: input.Username,
			Password: string(hashed),
			Email:    input.Email,
			Status:   input.Status,
		}
		if err := userRepo.Create(user); err != nil {
			return err
		}
		if len(input.RoleIDs) > 0 {
			if err := userRepo.ReplaceRoles(user.ID, input.RoleIDs); err != nil {
				return err
			}
		}
		created = user
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.Mailer != nil && created.Email != "" {
		s.Mailer.SendWelcome(created.Email, created.Username)
	}
	return created, nil
}

// UpdateUser ubah email, status, dan role user.
func (s *UserService) UpdateUser(id uint, input UpdateUserInput) (*models.User, error) {
	var updated *models.User
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		userRepo := repositories.NewUserRepository(tx)

		user, err := userRepo.GetByID(id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		if err != nil {
			return err
		}

		user.Email = input.Email
		user.Status = input.Status
		if err := userRepo.Update(user); err != nil {
			return err
		}
		if input.RoleIDs != nil {
			if err := userRepo.ReplaceRoles(id, input.RoleIDs); err != nil {
				return err
			}
		}
		updated = user
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// UpdatePassword ganti password setelah password lama diverifikasi.
func (s *UserService) UpdatePassword(id uint, oldPassword, newPassword string) error {
	userRepo := repositories.NewUserRepository(s.DB)
	user, err := userRepo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)) != nil {
		return ErrInvalidCredentials
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashed)
	return userRepo.Update(user)
}

// DeleteUser soft delete user.
func (s *UserService) DeleteUser(id uint) error {
	userRepo := repositories.NewUserRepository(s.DB)
	if _, err := userRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return userRepo.Delete(id)
}

// EffectivePermissions gabungan permission langsung (user_permissions)
// dan warisan role (role_permissions), tanpa duplikat, terurut.
func (s *UserService) EffectivePermissions(userID uint) ([]string, error) {
	userRepo := repositories.NewUserRepository(s.DB)
	permRepo := repositories.NewPermissionRepository(s.DB)

	roleIDs, err := userRepo.RoleIDs(userID)
	if err != nil {
		return nil, err
	}
	inherited, err := permRepo.RolePermissionNames(roleIDs)
	if err != nil {
		return nil, err
	}
	direct, err := permRepo.UserPermissionNames(userID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(inherited)+len(direct))
	names := make([]string, 0, len(inherited)+len(direct))
	for _, name := range append(inherited, direct...) {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Authorize data widget otorisasi user: seluruh menu hidup sebagai
// tree, menu yang dia dapat lewat role sebagai checked keys.
func (s *UserService) Authorize(userID uint) (*AuthorizeData, error) {
	userRepo := repositories.NewUserRepository(s.DB)
	if _, err := userRepo.GetByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	menus, err := repositories.NewMenuRepository(s.DB).GetAll()
	if err != nil {
		return nil, err
	}
	roleIDs, err := userRepo.RoleIDs(userID)
	if err != nil {
		return nil, err
	}
	grantedIDs, err := repositories.NewMenuRepository(s.DB).GrantedMenuIDs(roleIDs)
	if err != nil {
		return nil, err
	}

	checked := make([]string, 0, len(grantedIDs))
	for _, id := range grantedIDs {
		checked = append(checked, strconv.FormatUint(uint64(id), 10))
	}
	sort.Strings(checked)
	return &AuthorizeData{
		DefaultCheckedKeys: checked,
		TreeData:           authz.BuildSelectTree(menus),
	}, nil
}

// SaveAuthorize simpan grant menu untuk user dengan menulis ulang
// grant semua role-nya: delete lalu insert dalam satu transaksi,
// permission di-fan-out dari menu terpilih.
func (s *UserService) SaveAuthorize(userID uint, menuIDs []uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		userRepo := repositories.NewUserRepository(tx)

		if _, err := userRepo.GetByID(userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		roleIDs, err := userRepo.RoleIDs(userID)
		if err != nil {
			return err
		}
		if len(roleIDs) == 0 {
			return ErrUserNoRoles
		}

		menus, err := repositories.NewMenuRepository(tx).GetByIDs(menuIDs)
		if err != nil {
			return err
		}
		liveIDs := make([]uint, 0, len(menus))
		for _, m := range menus {
			liveIDs = append(liveIDs, m.ID)
		}
		permissionIDs := authz.ResolvePermissions(menus)

		roleRepo := repositories.NewRoleRepository(tx)
		for _, roleID := range roleIDs {
			if err := roleRepo.ReplaceGrants(roleID, liveIDs, permissionIDs); err != nil {
				return err
			}
		}
		return nil
	})
}
