package payments

import (
	"database/sql"

	"pitstop/app/config"
	"pitstop/app/database"
	"pitstop/app/models"
	"pitstop/app/services"

	"github.com/gofiber/fiber/v2"
)

// CreateIntentAPI creates a payment intent for a card order and stores
// its id on the order.
func CreateIntentAPI(c *fiber.Ctx) error {
	type IntentRequest struct {
		OrderID string `json:"order_id"`
	}

	var req IntentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.OrderID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "order_id is required"})
	}

	order, err := database.GetOrderByID(config.GetDB(), req.OrderID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Order not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error", "details": err.Error()})
	}
	if order.PaymentMethod != models.MethodCard {
		return c.Status(400).JSON(fiber.Map{"error": "Order is not a card order"})
	}
	if order.PaymentStatus == models.PaymentPaid {
		return c.Status(400).JSON(fiber.Map{"error": "Order is already paid"})
	}

	intent, err := services.CreatePaymentIntent(order.Total, order.ID)
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"error": "Failed to create payment intent", "details": err.Error()})
	}

	if err := database.SetOrderPaymentIntent(config.GetDB(), order.ID, intent.ID); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save payment intent", "details": err.Error()})
	}

	return c.JSON(fiber.Map{
		"payment_intent_id": intent.ID,
		"client_secret":     intent.ClientSecret,
	})
}

// VerifyPaymentAPI re-checks the intent server-side before flipping the
// order's payment status. Only a succeeded intent marks the order paid.
func VerifyPaymentAPI(c *fiber.Ctx) error {
	type VerifyRequest struct {
		OrderID string `json:"order_id"`
	}

	var req VerifyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.OrderID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "order_id is required"})
	}

	order, err := database.GetOrderByID(config.GetDB(), req.OrderID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Order not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error", "details": err.Error()})
	}
	if order.PaymentIntentID == nil {
		return c.Status(400).JSON(fiber.Map{"error": "Order has no payment intent"})
	}
	if order.PaymentStatus == models.PaymentPaid {
		return c.JSON(fiber.Map{"payment_status": order.PaymentStatus, "order": order})
	}

	intent, err := services.RetrievePaymentIntent(*order.PaymentIntentID)
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"error": "Failed to verify payment", "details": err.Error()})
	}

	if intent.Status == "succeeded" {
		if err := database.MarkOrderPaid(config.GetDB(), order.ID); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to mark order paid", "details": err.Error()})
		}
		order.PaymentStatus = models.PaymentPaid
		if order.Status == models.OrderInitiated {
			order.Status = models.OrderPending
		}
	} else if intent.Status == "canceled" {
		if err := database.MarkOrderPaymentFailed(config.GetDB(), order.ID); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to mark payment failed", "details": err.Error()})
		}
		order.PaymentStatus = models.PaymentFailed
	}

	return c.JSON(fiber.Map{
		"payment_status": order.PaymentStatus,
		"intent_status":  intent.Status,
		"order":          order,
	})
}
