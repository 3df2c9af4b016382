package routes

import (
	"fiber-admin/config"
	"fiber-admin/controllers"
	"fiber-admin/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupPermissionRoutes(app *fiber.App, db *gorm.DB) {
	permissionController := controllers.NewPermissionController(db)

	api := app.Group(config.MAIN_ROUTES+"/permissions", middleware.AuthMiddleware)
	api.Get("/page", permissionController.Page)
	api.Get("/list", permissionController.List)
	api.Post("/create", permissionController.Create)
	api.Put("/update/:id", permissionController.Update)
	api.Delete("/:id", permissionController.Delete)
}
