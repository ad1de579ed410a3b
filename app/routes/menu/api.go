package menu

import (
	"pitstop/app/config"
	"pitstop/app/database"
	"pitstop/app/models"

	"github.com/gofiber/fiber/v2"
)

func GetMenuAPI(c *fiber.Ctx) error {
	includeUnavailable := c.Query("all") == "true"
	items, err := database.GetAllMenuItems(config.GetDB(), includeUnavailable)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load menu", "details": err.Error()})
	}
	return c.JSON(items)
}

func CreateMenuItemAPI(c *fiber.Ctx) error {
	var item models.MenuItem
	if err := c.BodyParser(&item); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if item.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Name is required"})
	}
	if item.Price < 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Price must not be negative"})
	}

	if err := database.CreateMenuItem(config.GetDB(), &item); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create menu item"})
	}
	return c.Status(201).JSON(item)
}

func UpdateMenuItemAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	var item models.MenuItem
	if err := c.BodyParser(&item); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	item.ID = id
	if err := database.UpdateMenuItem(config.GetDB(), &item); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update menu item"})
	}
	return c.JSON(item)
}

func DeleteMenuItemAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := database.DeleteMenuItem(config.GetDB(), id); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete menu item"})
	}
	return c.SendStatus(204)
}

func CreateModifierAPI(c *fiber.Ctx) error {
	itemID := c.Params("id")
	var mod models.MenuModifier
	if err := c.BodyParser(&mod); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if mod.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Name is required"})
	}

	mod.MenuItemID = itemID
	if err := database.CreateMenuModifier(config.GetDB(), &mod); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create modifier"})
	}
	return c.Status(201).JSON(mod)
}

func DeleteModifierAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := database.DeleteMenuModifier(config.GetDB(), id); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete modifier"})
	}
	return c.SendStatus(204)
}
