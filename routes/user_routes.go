package routes

import (
	"fiber-admin/config"
	"fiber-admin/controllers"
	"fiber-admin/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupUserRoutes(app *fiber.App, db *gorm.DB) {
	userController := controllers.NewUserController(db)

	api := app.Group(config.MAIN_ROUTES+"/users", middleware.AuthMiddleware)
	api.Get("/page", userController.Page)
	api.Get("/list", userController.List)
	api.Get("/detail", userController.Detail)
	api.Get("/export", userController.ExportExcel)
	api.Get("/authorize", userController.Authorize)
	api.Put("/authorize/save", userController.SaveAuthorize)
	api.Post("/create", userController.Create)
	api.Put("/update/:id", userController.Update)
	api.Put("/updatePassword", userController.UpdatePassword)
	api.Delete("/delete/:id", userController.Delete)
}
