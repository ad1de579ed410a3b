package payments

import (
	"github.com/gofiber/fiber/v2"
)

func SetupPaymentsRoutes(app *fiber.App) {
	// Both endpoints are hit from the customer checkout flow, no admin
	// session required
	api := app.Group("/api/payments")
	api.Post("/intent", CreateIntentAPI)
	api.Post("/verify", VerifyPaymentAPI)
}
