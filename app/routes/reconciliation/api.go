package reconciliation

import (
	"database/sql"
	"time"

	"pitstop/app/config"
	"pitstop/app/database"
	"pitstop/app/models"
	"pitstop/app/services"

	"github.com/gofiber/fiber/v2"
)

func GetCashDayAPI(c *fiber.Ctx) error {
	dateStr := c.Query("date")
	if dateStr == "" {
		return c.Status(400).JSON(fiber.Map{"error": "date query parameter is required"})
	}
	// Parse in the configured zone so the business day starts at 03:00
	// local, not 03:00 UTC
	date, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date, expected YYYY-MM-DD"})
	}

	report, err := services.LoadCashDayReport(config.GetDB(), date)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build cash day report", "details": err.Error()})
	}
	return c.JSON(report)
}

func GetDepositsReportAPI(c *fiber.Ctx) error {
	startStr := c.Query("start")
	endStr := c.Query("end")
	if startStr == "" || endStr == "" {
		return c.Status(400).JSON(fiber.Map{"error": "start and end query parameters are required"})
	}

	start, err := time.ParseInLocation("2006-01-02", startStr, time.Local)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid start date, expected YYYY-MM-DD"})
	}
	end, err := time.ParseInLocation("2006-01-02", endStr, time.Local)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid end date, expected YYYY-MM-DD"})
	}
	if end.Before(start) {
		return c.Status(400).JSON(fiber.Map{"error": "end must not be before start"})
	}

	report, err := services.LoadDepositsReport(config.GetDB(), start, end)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build deposits report", "details": err.Error()})
	}
	return c.JSON(report)
}

func CreateDepositAPI(c *fiber.Ctx) error {
	var dep models.Deposit
	if err := c.BodyParser(&dep); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if dep.Amount <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Amount must be positive"})
	}
	if dep.DepositedAt.IsZero() {
		dep.DepositedAt = time.Now()
	}

	if err := database.CreateDeposit(config.GetDB(), &dep); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to record deposit", "details": err.Error()})
	}
	return c.Status(201).JSON(dep)
}

func GetSafeDropsAPI(c *fiber.Ctx) error {
	dateStr := c.Query("date")
	if dateStr == "" {
		return c.Status(400).JSON(fiber.Map{"error": "date query parameter is required"})
	}
	date, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date, expected YYYY-MM-DD"})
	}

	from, to := services.BusinessDayWindow(date)
	drops, err := database.GetSafeDropsInWindow(config.GetDB(), from, to)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load safe drops", "details": err.Error()})
	}
	return c.JSON(drops)
}

func CreateSafeDropAPI(c *fiber.Ctx) error {
	var drop models.SafeDrop
	if err := c.BodyParser(&drop); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if drop.Amount <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Amount must be positive"})
	}
	if drop.DroppedAt.IsZero() {
		drop.DroppedAt = time.Now()
	}

	if err := database.CreateSafeDrop(config.GetDB(), &drop); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to record safe drop", "details": err.Error()})
	}
	return c.Status(201).JSON(drop)
}

func ConfirmSafeDropAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := database.ConfirmSafeDrop(config.GetDB(), id); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Safe drop not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to confirm safe drop", "details": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Safe drop confirmed"})
}
