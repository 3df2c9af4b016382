package routes

import (
	"fiber-admin/config"
	"fiber-admin/controllers"
	"fiber-admin/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupMenuRoutes(app *fiber.App, db *gorm.DB) {
	menuController := controllers.NewMenuController(db)

	api := app.Group(config.MAIN_ROUTES+"/menus", middleware.AuthMiddleware)
	api.Get("/list", menuController.List)
	api.Get("/page", menuController.Page)
	api.Get("/tree", menuController.Tree)
	api.Get("/detail", menuController.Detail)
	api.Post("/create", menuController.Create)
	api.Put("/update/:id", menuController.Update)
	api.Put("/changeState", menuController.ChangeState)
	api.Delete("/:id/purge", menuController.Purge)
	api.Delete("/:id", menuController.Delete)
}
