package routes

import (
	"fiber-admin/config"
	"fiber-admin/controllers"
	"fiber-admin/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupArticleRoutes(app *fiber.App, db *gorm.DB) {
	articleController := controllers.NewArticleController(db)

	api := app.Group(config.MAIN_ROUTES+"/articles", middleware.AuthMiddleware)
	api.Get("/page", articleController.Page)
	api.Get("/list", articleController.List)
	api.Get("/detail", articleController.Detail)
	api.Post("/create", articleController.Create)
	api.Put("/update/:id", articleController.Update)
	api.Put("/restore/:id", articleController.Restore)
	api.Delete("/delete/:id", articleController.Delete)
	api.Delete("/purge/:id", articleController.Purge)
}
