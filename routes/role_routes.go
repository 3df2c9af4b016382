package routes

import (
	"fiber-admin/config"
	"fiber-admin/controllers"
	"fiber-admin/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoleRoutes(app *fiber.App, db *gorm.DB) {
	roleController := controllers.NewRoleController(db)

	api := app.Group(config.MAIN_ROUTES+"/roles", middleware.AuthMiddleware)
	api.Get("/page", roleController.Page)
	api.Get("/list", roleController.List)
	api.Get("/detail", roleController.Detail)
	api.Get("/authorize", roleController.Authorize)
	api.Post("/create", roleController.Create)
	api.Put("/update/:id", roleController.Update)
	api.Delete("/:id", roleController.Delete)
}
