package reconciliation

import (
	"pitstop/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupReconciliationRoutes(app *fiber.App) {
	api := app.Group("/api/reconciliation")
	api.Use(auth.AuthMiddleware)
	api.Get("/cash-day", GetCashDayAPI)
	api.Get("/deposits", GetDepositsReportAPI)
	api.Post("/deposits", CreateDepositAPI)
	api.Get("/safe-drops", GetSafeDropsAPI)
	api.Post("/safe-drops", CreateSafeDropAPI)
	api.Post("/safe-drops/:id/confirm", ConfirmSafeDropAPI)
}
