package dashboard

import (
	"time"

	"pitstop/app/config"
	"pitstop/app/database"
	"pitstop/app/routes/auth"
	"pitstop/app/services"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App) {
	api := app.Group("/api/dashboard")
	api.Use(auth.AuthMiddleware)
	api.Get("/stats", GetStatsAPI)
}

func GetStatsAPI(c *fiber.Ctx) error {
	// Before 03:00 the register still belongs to yesterday's business day
	now := time.Now()
	if now.Hour() < 3 {
		now = now.AddDate(0, 0, -1)
	}
	dayStart, dayEnd := services.BusinessDayWindow(now)
	stats, err := database.GetDashboardStats(config.GetDB(), dayStart, dayEnd)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load dashboard stats", "details": err.Error()})
	}
	return c.JSON(stats)
}
