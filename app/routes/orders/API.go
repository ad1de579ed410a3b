package orders

import (
	"database/sql"

	"pitstop/app/config"
	"pitstop/app/database"
	"pitstop/app/models"
	"pitstop/app/services"

	"github.com/gofiber/fiber/v2"
)

// CreateOrderAPI places a new order. Item names and prices are
// snapshotted from the menu server-side; the client only sends ids and
// quantities.
func CreateOrderAPI(c *fiber.Ctx) error {
	type ItemRequest struct {
		MenuItemID  string   `json:"menu_item_id"`
		Quantity    int      `json:"quantity"`
		ModifierIDs []string `json:"modifier_ids"`
	}
	type OrderRequest struct {
		CustomerName  string        `json:"customer_name"`
		CustomerPhone string        `json:"customer_phone"`
		PaymentMethod string        `json:"payment_method"`
		Items         []ItemRequest `json:"items"`
	}

	var req OrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if len(req.Items) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Order must contain at least one item"})
	}
	method := models.PaymentMethod(req.PaymentMethod)
	if method != models.MethodCash && method != models.MethodCard {
		return c.Status(400).JSON(fiber.Map{"error": "payment_method must be cash or card"})
	}
	if req.CustomerName == "" || req.CustomerPhone == "" {
		return c.Status(400).JSON(fiber.Map{"error": "customer_name and customer_phone are required"})
	}

	db := config.GetDB()

	customer, err := database.FindOrCreateCustomer(db, req.CustomerName, req.CustomerPhone)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save customer", "details": err.Error()})
	}

	total := 0.0
	items := []*models.OrderItem{}
	for _, ir := range req.Items {
		if ir.Quantity <= 0 {
			return c.Status(400).JSON(fiber.Map{"error": "Item quantity must be positive"})
		}
		menuItem, err := database.GetMenuItemByID(db, ir.MenuItemID)
		if err != nil {
			if err == sql.ErrNoRows {
				return c.Status(400).JSON(fiber.Map{"error": "Unknown menu item: " + ir.MenuItemID})
			}
			return c.Status(500).JSON(fiber.Map{"error": "Database error", "details": err.Error()})
		}
		if !menuItem.IsAvailable {
			return c.Status(400).JSON(fiber.Map{"error": menuItem.Name + " is not available"})
		}

		item := &models.OrderItem{
			MenuItemID: menuItem.ID,
			Name:       menuItem.Name,
			Price:      menuItem.Price,
			Quantity:   ir.Quantity,
		}
		lineTotal := menuItem.Price

		for _, modID := range ir.ModifierIDs {
			mod, err := database.GetModifierByID(db, modID)
			if err != nil {
				if err == sql.ErrNoRows {
					return c.Status(400).JSON(fiber.Map{"error": "Unknown modifier: " + modID})
				}
				return c.Status(500).JSON(fiber.Map{"error": "Database error", "details": err.Error()})
			}
			item.Modifiers = append(item.Modifiers, &models.OrderItemModifier{
				ModifierID: mod.ID,
				Name:       mod.Name,
				Price:      mod.Price,
			})
			lineTotal += mod.Price
		}
		total += lineTotal * float64(ir.Quantity)
		items = append(items, item)
	}

	// Cash orders go straight to pending; card orders sit in initiated
	// until the payment intent is verified.
	status := models.OrderInitiated
	if method == models.MethodCash {
		status = models.OrderPending
	}

	order := &models.Order{
		CustomerID:    &customer.ID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Total:         services.Round2(total),
		PaymentMethod: method,
		PaymentStatus: models.PaymentPending,
		Status:        status,
		Items:         items,
	}
	if err := database.CreateOrder(db, order); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create order", "details": err.Error()})
	}

	return c.Status(201).JSON(order)
}

func GetOrderAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	order, err := database.GetOrderByID(config.GetDB(), id)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Order not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error", "details": err.Error()})
	}
	return c.JSON(order)
}

func ListOrdersAPI(c *fiber.Ctx) error {
	status := c.Query("status")
	limit := c.QueryInt("limit", 100)
	orders, err := database.ListOrders(config.GetDB(), status, limit)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load orders", "details": err.Error()})
	}
	return c.JSON(orders)
}

func loadOrder(c *fiber.Ctx) (*models.Order, error) {
	order, err := database.GetOrderByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, c.Status(404).JSON(fiber.Map{"error": "Order not found"})
		}
		return nil, c.Status(500).JSON(fiber.Map{"error": "Database error", "details": err.Error()})
	}
	return order, nil
}

func AcceptOrderAPI(c *fiber.Ctx) error {
	order, err := loadOrder(c)
	if order == nil {
		return err
	}

	if err := services.AcceptOrder(config.GetDB(), order); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(order)
}

func RejectOrderAPI(c *fiber.Ctx) error {
	type RejectRequest struct {
		Reason string `json:"reason"`
	}

	order, err := loadOrder(c)
	if order == nil {
		return err
	}

	var req RejectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := services.RejectOrder(config.GetDB(), order, req.Reason); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(order)
}

func MarkReadyAPI(c *fiber.Ctx) error {
	order, err := loadOrder(c)
	if order == nil {
		return err
	}

	if err := services.MarkOrderReady(config.GetDB(), order); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(order)
}
