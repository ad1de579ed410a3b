package payroll

import (
	"database/sql"
	"time"

	"pitstop/app/config"
	"pitstop/app/database"
	"pitstop/app/models"
	"pitstop/app/services"

	"github.com/gofiber/fiber/v2"
)

// GetPayrollReportAPI aggregates hours and expenses per employee over
// an inclusive date range.
func GetPayrollReportAPI(c *fiber.Ctx) error {
	startStr := c.Query("start")
	endStr := c.Query("end")
	if startStr == "" || endStr == "" {
		return c.Status(400).JSON(fiber.Map{"error": "start and end query parameters are required"})
	}

	// Dates are parsed in the configured zone so the window lines up
	// with locally stamped clock-ins
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

	buckets, err := services.LoadPayrollReport(config.GetDB(), start, end)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build payroll report", "details": err.Error()})
	}

	return c.JSON(fiber.Map{
		"start":     startStr,
		"end":       endStr,
		"employees": buckets,
	})
}

// RecordPaycheckAPI persists a paycheck, tags the contributing rows and
// books the payroll expense in one transaction.
func RecordPaycheckAPI(c *fiber.Ctx) error {
	type PaycheckRequest struct {
		EmployeeID    string   `json:"employee_id"`
		WeekStart     string   `json:"week_start"`
		WeekEnd       string   `json:"week_end"`
		Hours         float64  `json:"hours"`
		HourlyRate    *float64 `json:"hourly_rate"`
		GrossPay      *float64 `json:"gross_pay"`
		ExpensesTotal *float64 `json:"expenses_total"`
		NetPay        *float64 `json:"net_pay"`
	}

	var req PaycheckRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.EmployeeID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "employee_id is required"})
	}

	weekStart, err := time.ParseInLocation("2006-01-02", req.WeekStart, time.Local)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid week_start, expected YYYY-MM-DD"})
	}
	weekEnd, err := time.ParseInLocation("2006-01-02", req.WeekEnd, time.Local)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid week_end, expected YYYY-MM-DD"})
	}
	if weekEnd.Before(weekStart) {
		return c.Status(400).JSON(fiber.Map{"error": "week_end must not be before week_start"})
	}

	employee, err := database.GetEmployeeByID(config.GetDB(), req.EmployeeID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Employee not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error", "details": err.Error()})
	}

	windowStart, windowEnd := services.DateWindow(weekStart, weekEnd)

	rate := employee.HourlyRate
	if req.HourlyRate != nil {
		rate = *req.HourlyRate
	}

	// Derive the figures the caller left out. The expenses default is
	// the sum of the window's untagged expenses, which are the rows the
	// paycheck is about to claim.
	expensesTotal := 0.0
	if req.ExpensesTotal != nil {
		expensesTotal = *req.ExpensesTotal
	} else {
		total, err := database.UntaggedEmployeeExpenseTotal(config.GetDB(), req.EmployeeID, windowStart, windowEnd)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to total expenses", "details": err.Error()})
		}
		expensesTotal = services.Round2(total)
	}

	gross := services.Round2(req.Hours * rate)
	if req.GrossPay != nil {
		gross = *req.GrossPay
	}
	net := services.Round2(gross - expensesTotal)
	if req.NetPay != nil {
		net = *req.NetPay
	}

	paycheck := &models.Paycheck{
		EmployeeID:    req.EmployeeID,
		WeekStart:     weekStart,
		WeekEnd:       weekEnd,
		Hours:         req.Hours,
		HourlyRate:    rate,
		GrossPay:      gross,
		ExpensesTotal: expensesTotal,
		NetPay:        net,
	}

	employeeName := employee.FirstName + " " + employee.LastName

	taggedEntries, taggedExpenses, err := database.CreatePaycheck(config.GetDB(), paycheck, employeeName, windowStart, windowEnd)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to record paycheck", "details": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{
		"paycheck":        paycheck,
		"tagged_entries":  taggedEntries,
		"tagged_expenses": taggedExpenses,
	})
}

func GetPaychecksAPI(c *fiber.Ctx) error {
	paychecks, err := database.GetAllPaychecks(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load paychecks", "details": err.Error()})
	}
	return c.JSON(paychecks)
}

func GetEmployeePaychecksAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	paychecks, err := database.GetPaychecksByEmployee(config.GetDB(), id)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load paychecks", "details": err.Error()})
	}
	return c.JSON(paychecks)
}
