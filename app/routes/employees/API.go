package employees

import (
	"time"

	"pitstop/app/config"
	"pitstop/app/database"
	"pitstop/app/models"
	"pitstop/app/services"

	"github.com/gofiber/fiber/v2"
)

func GetEmployeesAPI(c *fiber.Ctx) error {
	employees, err := database.GetActiveEmployees(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load employees", "details": err.Error()})
	}
	return c.JSON(employees)
}

func CreateEmployeeAPI(c *fiber.Ctx) error {
	type CreateRequest struct {
		FirstName  string  `json:"first_name"`
		LastName   string  `json:"last_name"`
		Phone      string  `json:"phone"`
		HourlyRate float64 `json:"hourly_rate"`
		Code       string  `json:"code"`
	}

	var req CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.FirstName == "" || req.LastName == "" {
		return c.Status(400).JSON(fiber.Map{"error": "First and last name are required"})
	}
	if !services.ValidCodeFormat(req.Code) {
		return c.Status(400).JSON(fiber.Map{"error": "Code must be exactly 4 digits"})
	}

	hashed, err := services.HashCode(req.Code)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to hash code"})
	}

	e := &models.Employee{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Phone:      req.Phone,
		HourlyRate: req.HourlyRate,
		Code:       hashed,
		IsActive:   true,
	}
	if err := database.CreateEmployee(config.GetDB(), e); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create employee", "details": err.Error()})
	}
	return c.Status(201).JSON(e)
}

func UpdateEmployeeAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	var e models.Employee
	if err := c.BodyParser(&e); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	e.ID = id
	if err := database.UpdateEmployee(config.GetDB(), &e); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update employee", "details": err.Error()})
	}
	return c.JSON(e)
}

func UpdateEmployeeCodeAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	type CodeRequest struct {
		Code string `json:"code"`
	}

	var req CodeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if !services.ValidCodeFormat(req.Code) {
		return c.Status(400).JSON(fiber.Map{"error": "Code must be exactly 4 digits"})
	}

	hashed, err := services.HashCode(req.Code)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to hash code"})
	}
	if err := database.UpdateEmployeeCode(config.GetDB(), id, hashed); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update code"})
	}
	return c.JSON(fiber.Map{"message": "Code updated"})
}

func DeactivateEmployeeAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := database.DeactivateEmployee(config.GetDB(), id); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to deactivate employee"})
	}
	return c.SendStatus(204)
}

// VerifyCodeAPI matches a 4-digit code against the active employees.
// The format check runs before any database work.
func VerifyCodeAPI(c *fiber.Ctx) error {
	type VerifyRequest struct {
		Code string `json:"code"`
	}

	var req VerifyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if !services.ValidCodeFormat(req.Code) {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid code"})
	}

	employees, err := database.GetActiveEmployees(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load employees", "details": err.Error()})
	}

	match := services.MatchEmployeeCode(req.Code, employees)
	if match == nil {
		return c.Status(401).JSON(fiber.Map{"error": "No matching employee"})
	}
	return c.JSON(match)
}

func GetEmployeeExpensesAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	expenses, err := database.GetEmployeeExpensesByEmployee(config.GetDB(), id)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load expenses", "details": err.Error()})
	}
	return c.JSON(expenses)
}

func CreateEmployeeExpenseAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	type ExpenseRequest struct {
		Amount      float64 `json:"amount"`
		Description string  `json:"description"`
		SpentAt     string  `json:"spent_at"`
	}

	var req ExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Amount <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Amount must be positive"})
	}

	spentAt := time.Now()
	if req.SpentAt != "" {
		parsed, err := time.Parse(time.RFC3339, req.SpentAt)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid spent_at, expected RFC3339"})
		}
		spentAt = parsed
	}

	expense := &models.EmployeeExpense{
		EmployeeID:  id,
		Amount:      req.Amount,
		Description: req.Description,
		SpentAt:     spentAt,
	}
	if err := database.CreateEmployeeExpense(config.GetDB(), expense); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create expense", "details": err.Error()})
	}
	return c.Status(201).JSON(expense)
}
