package timeclock

import (
	"time"

	"pitstop/app/config"
	"pitstop/app/database"
	"pitstop/app/services"

	"github.com/gofiber/fiber/v2"
)

func verifyEmployee(c *fiber.Ctx) (string, error) {
	type CodeRequest struct {
		Code string `json:"code"`
	}

	var req CodeRequest
	if err := c.BodyParser(&req); err != nil {
		return "", c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if !services.ValidCodeFormat(req.Code) {
		return "", c.Status(400).JSON(fiber.Map{"error": "Invalid code"})
	}

	employees, err := database.GetActiveEmployees(config.GetDB())
	if err != nil {
		return "", c.Status(500).JSON(fiber.Map{"error": "Failed to load employees", "details": err.Error()})
	}

	match := services.MatchEmployeeCode(req.Code, employees)
	if match == nil {
		return "", c.Status(401).JSON(fiber.Map{"error": "No matching employee"})
	}
	return match.ID, nil
}

func ClockInAPI(c *fiber.Ctx) error {
	employeeID, err := verifyEmployee(c)
	if err != nil || employeeID == "" {
		return err
	}

	open, dbErr := database.GetOpenTimeEntry(config.GetDB(), employeeID)
	if dbErr != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to check open entries", "details": dbErr.Error()})
	}
	if open != nil {
		return c.Status(409).JSON(fiber.Map{"error": "Already clocked in", "entry": open})
	}

	entry, dbErr := database.CreateTimeEntry(config.GetDB(), employeeID, time.Now())
	if dbErr != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to clock in", "details": dbErr.Error()})
	}
	return c.Status(201).JSON(entry)
}

func ClockOutAPI(c *fiber.Ctx) error {
	employeeID, err := verifyEmployee(c)
	if err != nil || employeeID == "" {
		return err
	}

	open, dbErr := database.GetOpenTimeEntry(config.GetDB(), employeeID)
	if dbErr != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to check open entries", "details": dbErr.Error()})
	}
	if open == nil {
		return c.Status(404).JSON(fiber.Map{"error": "Not clocked in"})
	}

	now := time.Now()
	if dbErr := database.CloseTimeEntry(config.GetDB(), open.ID, now); dbErr != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to clock out", "details": dbErr.Error()})
	}
	open.ClockOut = &now
	return c.JSON(open)
}

func GetTimeEntriesAPI(c *fiber.Ctx) error {
	startStr := c.Query("start")
	endStr := c.Query("end")
	if startStr == "" || endStr == "" {
		return c.Status(400).JSON(fiber.Map{"error": "start and end query parameters are required"})
	}

	// Parse in the configured zone, matching the locally stamped entries
	start, err := time.ParseInLocation("2006-01-02", startStr, time.Local)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid start date, expected YYYY-MM-DD"})
	}
	end, err := time.ParseInLocation("2006-01-02", endStr, time.Local)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid end date, expected YYYY-MM-DD"})
	}

	from, to := services.DateWindow(start, end)
	entries, err := database.GetTimeEntriesInWindow(config.GetDB(), from, to)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load time entries", "details": err.Error()})
	}
	return c.JSON(entries)
}
