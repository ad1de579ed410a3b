package menu

import (
	"pitstop/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupMenuRoutes(app *fiber.App) {
	// Customers browse the menu without a session
	app.Get("/api/menu", GetMenuAPI)

	api := app.Group("/api/menu")
	api.Use(auth.AuthMiddleware)
	api.Post("/", CreateMenuItemAPI)
	api.Put("/:id", UpdateMenuItemAPI)
	api.Delete("/:id", DeleteMenuItemAPI)
	api.Post("/:id/modifiers", CreateModifierAPI)
	api.Delete("/modifiers/:id", DeleteModifierAPI)
}
