package expenses

import (
	"time"

	"pitstop/app/config"
	"pitstop/app/models"

	"github.com/gofiber/fiber/v2"
)

func GetExpensesAPI(c *fiber.Ctx) error {
	expenses, err := GetAllBusinessExpenses(config.GetDB())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to load expenses",
			"details": err.Error(),
		})
	}
	return c.JSON(expenses)
}

func GetVendorsAPI(c *fiber.Ctx) error {
	vendors, err := GetAllVendors(config.GetDB())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to load vendors",
			"details": err.Error(),
		})
	}
	return c.JSON(vendors)
}

func validMethod(m models.ExpenseMethod) bool {
	switch m {
	case models.ExpenseCash, models.ExpenseCard, models.ExpenseCheck:
		return true
	}
	return false
}

func CreateExpenseAPI(c *fiber.Ctx) error {
	var e models.BusinessExpense
	if err := c.BodyParser(&e); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if e.Amount <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Amount must be positive"})
	}
	if !validMethod(e.Method) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Method must be cash, card or check"})
	}
	if e.Date.IsZero() {
		e.Date = time.Now()
	}

	if err := CreateBusinessExpense(config.GetDB(), &e); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create expense"})
	}

	return c.Status(fiber.StatusCreated).JSON(e)
}

func UpdateExpenseAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	var e models.BusinessExpense
	if err := c.BodyParser(&e); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if !validMethod(e.Method) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Method must be cash, card or check"})
	}

	e.ID = id
	if err := UpdateBusinessExpense(config.GetDB(), &e); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update expense"})
	}

	return c.JSON(e)
}

func DeleteExpenseAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := DeleteBusinessExpense(config.GetDB(), id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete expense"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func CreateVendorAPI(c *fiber.Ctx) error {
	var v models.Vendor
	if err := c.BodyParser(&v); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if v.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name is required"})
	}

	if err := CreateVendor(config.GetDB(), &v); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create vendor"})
	}

	return c.Status(fiber.StatusCreated).JSON(v)
}

func UpdateVendorAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	var v models.Vendor
	if err := c.BodyParser(&v); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	v.ID = id
	if err := UpdateVendor(config.GetDB(), &v); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update vendor"})
	}

	return c.JSON(v)
}

func DeleteVendorAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := DeleteVendor(config.GetDB(), id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete vendor"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
