package timeclock

import (
	"pitstop/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupTimeclockRoutes(app *fiber.App) {
	// Clock in/out are used by the register kiosk with a 4-digit code
	app.Post("/api/timeclock/clock-in", ClockInAPI)
	app.Post("/api/timeclock/clock-out", ClockOutAPI)

	api := app.Group("/api/timeclock")
	api.Use(auth.AuthMiddleware)
	api.Get("/entries", GetTimeEntriesAPI)
}
