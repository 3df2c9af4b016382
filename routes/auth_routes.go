package routes

import (
	"fiber-admin/config"
	"fiber-admin/controllers"
	"fiber-admin/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controllers.NewAuthController(db)

	api := app.Group(config.MAIN_ROUTES + "/auth")
	api.Post("/login", authController.Login)
	api.Get("/refreshPermissions", middleware.AuthMiddleware, authController.RefreshPermissions)
	api.Get("/profile", middleware.AuthMiddleware, authController.Profile)
}
