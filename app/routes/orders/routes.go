package orders

import (
	"pitstop/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupOrdersRoutes(app *fiber.App) {
	// Customers place and track orders without a session
	app.Post("/api/orders", CreateOrderAPI)
	app.Get("/api/orders/:id", GetOrderAPI)

	api := app.Group("/api/orders")
	api.Use(auth.AuthMiddleware)
	api.Get("/", ListOrdersAPI)
	api.Post("/:id/accept", AcceptOrderAPI)
	api.Post("/:id/reject", RejectOrderAPI)
	api.Post("/:id/ready", MarkReadyAPI)
}
