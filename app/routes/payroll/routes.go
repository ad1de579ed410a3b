package payroll

import (
	"pitstop/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupPayrollRoutes(app *fiber.App) {
	api := app.Group("/api/payroll")
	api.Use(auth.AuthMiddleware)
	api.Get("/report", GetPayrollReportAPI)
	api.Get("/paychecks", GetPaychecksAPI)
	api.Get("/paychecks/employee/:id", GetEmployeePaychecksAPI)
	api.Post("/paychecks", RecordPaycheckAPI)
}
