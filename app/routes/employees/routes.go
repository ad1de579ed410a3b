package employees

import (
	"pitstop/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupEmployeesRoutes(app *fiber.App) {
	// Code verification is used by the register kiosk, no admin session
	app.Post("/api/employees/verify", VerifyCodeAPI)

	api := app.Group("/api/employees")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetEmployeesAPI)
	api.Post("/", CreateEmployeeAPI)
	api.Put("/:id", UpdateEmployeeAPI)
	api.Put("/:id/code", UpdateEmployeeCodeAPI)
	api.Delete("/:id", DeactivateEmployeeAPI)
	api.Get("/:id/expenses", GetEmployeeExpensesAPI)
	api.Post("/:id/expenses", CreateEmployeeExpenseAPI)
}
