package repositories

import (
	"fiber-admin/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(DB *gorm.DB) *UserRepository {
	return &UserRepository{DB: DB}
}

// Create user
func (r *UserRepository) Create(user *models.User) error {
	return r.DB.Create(user).Error
}

// Get user by ID
func (r *UserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := r.DB.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Get user by username
func (r *UserRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.DB.Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Get all users
func (r *UserRepository) GetAll() ([]models.User, error) {
	var users []models.User
	err := r.DB.Find(&users).Error
	return users, err
}

// Update user
func (r *UserRepository) Update(user *models.User) error {
	return r.DB.Save(user).Error
}

// Soft delete user
func (r *UserRepository) Delete(id uint) error {
	return r.DB.Delete(&models.User{}, id).Error
}

// Roles ambil role user yang belum dihapus.
func (r *UserRepository) Roles(userID uint) ([]models.Role, error) {
	var roles []models.Role
	err := r.DB.
		Joins("JOIN user_roles ON user_roles.role_id = roles.id").
		Where("user_roles.user_id = ?", userID).
		Find(&roles).Error
	return roles, err
}

// RoleIDs ambil id role user yang belum dihapus.
func (r *UserRepository) RoleIDs(userID uint) ([]uint, error) {
	roles, err := r.Roles(userID)
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(roles))
	for _, role := range roles {
		ids = append(ids, role.ID)
	}
	return ids, nil
}

// ReplaceRoles ganti seluruh role user dengan set baru. Delete dulu
// baru insert, bungkus dengan transaksi di caller.
func (r *UserRepository) ReplaceRoles(userID uint, roleIDs []uint) error {
	if err := r.DB.Where("user_id = ?", userID).Delete(&models.UserRole{}).Error; err != nil {
		return err
	}
	if len(roleIDs) == 0 {
		return nil
	}
	userRoles := make([]models.UserRole, 0, len(roleIDs))
	for _, id := range roleIDs {
		userRoles = append(userRoles, models.UserRole{UserID: userID, RoleID: id})
	}
	return r.DB.Create(&userRoles).Error
}

// CreateLoginLog catat login yang berhasil.
func (r *UserRepository) CreateLoginLog(entry *models.LoginLog) error {
	return r.DB.Create(entry).Error
}
