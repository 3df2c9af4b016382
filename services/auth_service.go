package services

import (
	"errors"
	"time"

	"fiber-admin/config"
	"fiber-admin/models"
	"fiber-admin/repositories"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(DB *gorm.DB) *AuthService {
	return &AuthService{DB: DB}
}

type LoginResult struct {
	Token       string       `json:"token"`
	User        *models.User `json:"user"`
	Roles       []string     `json:"roles"`
	Permissions []string     `json:"permissions"`
}

// Login verifikasi username/password, terbitkan JWT, dan catat login.
// Permission efektif ikut dikembalikan supaya frontend tidak perlu
// panggilan kedua.
func (s *AuthService) Login(username, password, ip, userAgent string) (*LoginResult, error) {
	userRepo := repositories.NewUserRepository(s.DB)

	user, err := userRepo.GetByUsername(username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	if user.Status != models.UserStatusEnabled {
		return nil, ErrUserDisabled
	}

	roles, err := userRepo.Roles(user.ID)
	if err != nil {
		return nil, err
	}
	roleIDs := make([]uint, 0, len(roles))
	roleNames := make([]string, 0, len(roles))
	for _, role := range roles {
		roleIDs = append(roleIDs, role.ID)
		roleNames = append(roleNames, role.Name)
	}

	sessionID := uuid.New().String()
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"role_ids": roleIDs,
		"jti":      sessionID,
		"exp":      time.Now().Add(time.Duration(config.JWTExpiration) * time.Second).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(config.JWTSecret))
	if err != nil {
		return nil, err
	}

	if err := userRepo.CreateLoginLog(&models.LoginLog{
		SessionID: sessionID,
		UserID:    user.ID,
		IPAddress: ip,
		UserAgent: userAgent,
		LoginAt:   time.Now(),
	}); err != nil {
		return nil, err
	}

	permissions, err := NewUserService(s.DB, nil).EffectivePermissions(user.ID)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token:       token,
		User:        user,
		Roles:       roleNames,
		Permissions: permissions,
	}, nil
}
