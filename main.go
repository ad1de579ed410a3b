package main

import (
	"log"
	"os"
	"time"

	"pitstop/app/config"
	"pitstop/app/database"
	"pitstop/app/routes/auth"
	"pitstop/app/routes/dashboard"
	"pitstop/app/routes/employees"
	"pitstop/app/routes/expenses"
	"pitstop/app/routes/menu"
	"pitstop/app/routes/orders"
	"pitstop/app/routes/payments"
	"pitstop/app/routes/payroll"
	"pitstop/app/routes/reconciliation"
	"pitstop/app/routes/timeclock"
	"pitstop/app/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// customErrorHandler returns HTTP errors as JSON
func customErrorHandler(c *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError

	// Retrieve the custom status code if it's a *fiber.Error
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}

func main() {
	// All windows (payroll, business day) are built in local time
	tzName := os.Getenv("APP_TIMEZONE")
	if tzName != "" {
		loc, err := time.LoadLocation(tzName)
		if err != nil {
			log.Printf("Warning: Failed to load timezone %s, using system default: %v", tzName, err)
		} else {
			time.Local = loc
		}
	}
	log.Printf("Application time zone set to: %s", time.Local.String())

	// Initialize database
	config.InitDB()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Start background scheduler
	services.StartScheduler(config.GetDB())

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Setup auth routes
	auth.SetupAuthRoutes(app)

	// Setup dashboard routes
	dashboard.SetupDashboardRoutes(app)

	// Setup employees routes
	employees.SetupEmployeesRoutes(app)

	// Setup timeclock routes
	timeclock.SetupTimeclockRoutes(app)

	// Setup payroll routes
	payroll.SetupPayrollRoutes(app)

	// Setup expenses routes
	expenses.SetupExpensesRoutes(app)

	// Setup menu routes
	menu.SetupMenuRoutes(app)

	// Setup orders routes
	orders.SetupOrdersRoutes(app)

	// Setup payments routes
	payments.SetupPaymentsRoutes(app)

	// Setup reconciliation routes
	reconciliation.SetupReconciliationRoutes(app)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	})

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("Server starting on :" + port)
	log.Fatal(app.Listen(":" + port))
}
