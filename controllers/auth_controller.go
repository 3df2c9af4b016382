package controllers

import (
	"fiber-admin/services"
	"fiber-admin/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(DB *gorm.DB) *AuthController {
	return &AuthController{DB: DB}
}

// Login verifikasi kredensial dan kembalikan token + permission.
func (ac *AuthController) Login(ctx *fiber.Ctx) error {
	var req struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}
	if err := ctx.BodyParser(&req); err != nil {
		return utils.Error(ctx, 400, "invalid request body")
	}
	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return utils.Error(ctx, 400, "username and password are required")
	}

	service := services.NewAuthService(ac.DB)
	result, err := service.Login(req.Username, req.Password, ctx.IP(), ctx.Get("User-Agent"))
	if err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.SuccessMessage(ctx, result, "login successful")
}

// RefreshPermissions hitung ulang permission efektif user yang login.
func (ac *AuthController) RefreshPermissions(ctx *fiber.Ctx) error {
	service := services.NewUserService(ac.DB, nil)
	permissions, err := service.EffectivePermissions(currentUserID(ctx))
	if err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.Success(ctx, fiber.Map{"permissions": permissions})
}

// Profile data user yang sedang login beserta role-nya.
func (ac *AuthController) Profile(ctx *fiber.Ctx) error {
	service := services.NewUserService(ac.DB, nil)
	user, roles, err := service.UserDetail(currentUserID(ctx))
	if err != nil {
		return respondServiceError(ctx, err)
	}
	return utils.Success(ctx, fiber.Map{
		"user":  user,
		"roles": roles,
	})
}
