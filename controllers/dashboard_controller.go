package controllers

import (
	"fiber-admin/models"
	"fiber-admin/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(DB *gorm.DB) *DashboardController {
	return &DashboardController{DB: DB}
}

// List statistik ringkas untuk halaman dashboard.
func (dc *DashboardController) List(ctx *fiber.Ctx) error {
	var userCount, roleCount, menuCount, articleCount int64

	if err := dc.DB.Model(&models.User{}).Count(&userCount).Error; err != nil {
		return respondServiceError(ctx, err)
	}
	if err := dc.DB.Model(&models.Role{}).Count(&roleCount).Error; err != nil {
		return respondServiceError(ctx, err)
	}
	if err := dc.DB.Model(&models.Menu{}).Count(&menuCount).Error; err != nil {
		return respondServiceError(ctx, err)
	}
	if err := dc.DB.Model(&models.Article{}).Count(&articleCount).Error; err != nil {
		return respondServiceError(ctx, err)
	}

	return utils.Success(ctx, fiber.Map{
		"userCount":    userCount,
		"roleCount":    roleCount,
		"menuCount":    menuCount,
		"articleCount": articleCount,
	})
}
