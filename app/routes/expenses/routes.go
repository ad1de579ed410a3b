package expenses

import (
	"pitstop/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupExpensesRoutes(app *fiber.App) {
	api := app.Group("/api/expenses")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetExpensesAPI)
	api.Post("/", CreateExpenseAPI)
	api.Put("/:id", UpdateExpenseAPI)
	api.Delete("/:id", DeleteExpenseAPI)

	// Vendor API
	vendorAPI := app.Group("/api/vendors")
	vendorAPI.Use(auth.AuthMiddleware)
	vendorAPI.Get("/", GetVendorsAPI)
	vendorAPI.Post("/", CreateVendorAPI)
	vendorAPI.Put("/:id", UpdateVendorAPI)
	vendorAPI.Delete("/:id", DeleteVendorAPI)
}
