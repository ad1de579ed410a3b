package database

import (
	"database/sql"
	"fmt"
	"pitstop/app/models"
	"time"
)

// CreateOrder inserts an order with its items and modifiers in one
// transaction. Item and modifier rows carry name/price snapshots taken
// from the menu at creation time.
func CreateOrder(db *sql.DB, order *models.Order) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	queryOrder := `INSERT INTO orders (customer_id, customer_name, customer_phone, total, payment_method, payment_status, status, created_at, updated_at)
	               VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
	               RETURNING id, created_at, updated_at`
	err = tx.QueryRow(queryOrder,
		order.CustomerID,
		order.CustomerName,
		order.CustomerPhone,
		order.Total,
		string(order.PaymentMethod),
		string(order.PaymentStatus),
		string(order.Status),
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert order: %v", err)
	}

	for _, item := range order.Items {
		item.OrderID = order.ID
		err = tx.QueryRow(`INSERT INTO order_items (order_id, menu_item_id, name, price, quantity)
		                   VALUES ($1, $2, $3, $4, $5) RETURNING id`,
			item.OrderID, item.MenuItemID, item.Name, item.Price, item.Quantity,
		).Scan(&item.ID)
		if err != nil {
			return fmt.Errorf("failed to insert order item: %v", err)
		}

		for _, mod := range item.Modifiers {
			mod.OrderItemID = item.ID
			err = tx.QueryRow(`INSERT INTO order_item_modifiers (order_item_id, modifier_id, name, price)
			                   VALUES ($1, $2, $3, $4) RETURNING id`,
				mod.OrderItemID, mod.ModifierID, mod.Name, mod.Price,
			).Scan(&mod.ID)
			if err != nil {
				return fmt.Errorf("failed to insert order item modifier: %v", err)
			}
		}
	}

	return tx.Commit()
}

func GetOrderByID(db *sql.DB, id string) (*models.Order, error) {
	order := &models.Order{}
	query := `SELECT id, customer_id, customer_name, customer_phone, total, payment_method, payment_status, status,
			  COALESCE(reject_reason, ''), payment_intent_id, created_at, updated_at
			  FROM orders WHERE id = $1`

	var method, payStatus, status string
	err := db.QueryRow(query, id).Scan(
		&order.ID, &order.CustomerID, &order.CustomerName, &order.CustomerPhone, &order.Total,
		&method, &payStatus, &status, &order.RejectReason, &order.PaymentIntentID,
		&order.CreatedAt, &order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	order.PaymentMethod = models.PaymentMethod(method)
	order.PaymentStatus = models.PaymentStatus(payStatus)
	order.Status = models.OrderStatus(status)

	items, err := getOrderItems(db, order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return order, nil
}

func getOrderItems(db *sql.DB, orderID string) ([]*models.OrderItem, error) {
	rows, err := db.Query(`SELECT id, order_id, menu_item_id, name, price, quantity
	                       FROM order_items WHERE order_id = $1`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []*models.OrderItem{}
	for rows.Next() {
		item := &models.OrderItem{}
		if err := rows.Scan(&item.ID, &item.OrderID, &item.MenuItemID, &item.Name, &item.Price, &item.Quantity); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	for _, item := range items {
		modRows, err := db.Query(`SELECT id, order_item_id, modifier_id, name, price
		                          FROM order_item_modifiers WHERE order_item_id = $1`, item.ID)
		if err != nil {
			return nil, err
		}
		mods := []*models.OrderItemModifier{}
		for modRows.Next() {
			mod := &models.OrderItemModifier{}
			if err := modRows.Scan(&mod.ID, &mod.OrderItemID, &mod.ModifierID, &mod.Name, &mod.Price); err != nil {
				modRows.Close()
				return nil, err
			}
			mods = append(mods, mod)
		}
		modRows.Close()
		item.Modifiers = mods
	}
	return items, nil
}

func ListOrders(db *sql.DB, status string, limit int) ([]*models.Order, error) {
	query := `SELECT id, customer_id, customer_name, customer_phone, total, payment_method, payment_status, status,
			  COALESCE(reject_reason, ''), payment_intent_id, created_at, updated_at
			  FROM orders`
	args := []interface{}{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`
	if limit > 0 {
		query += fmt.Sprintf(` LIMIT %d`, limit)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []*models.Order{}
	for rows.Next() {
		order := &models.Order{}
		var method, payStatus, st string
		err := rows.Scan(
			&order.ID, &order.CustomerID, &order.CustomerName, &order.CustomerPhone, &order.Total,
			&method, &payStatus, &st, &order.RejectReason, &order.PaymentIntentID,
			&order.CreatedAt, &order.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		order.PaymentMethod = models.PaymentMethod(method)
		order.PaymentStatus = models.PaymentStatus(payStatus)
		order.Status = models.OrderStatus(st)
		orders = append(orders, order)
	}
	return orders, nil
}

// UpdateOrderStatus moves an order to a new status, optionally
// persisting a reject reason.
func UpdateOrderStatus(db *sql.DB, orderID string, status models.OrderStatus, rejectReason string) error {
	query := `UPDATE orders SET status = $1, reject_reason = $2, updated_at = NOW() WHERE id = $3`
	result, err := db.Exec(query, string(status), rejectReason, orderID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func SetOrderPaymentIntent(db *sql.DB, orderID, intentID string) error {
	query := `UPDATE orders SET payment_intent_id = $1, updated_at = NOW() WHERE id = $2`
	_, err := db.Exec(query, intentID, orderID)
	return err
}

// MarkOrderPaid flips payment_status pending -> paid and promotes an
// initiated order to pending. Paid orders are never flipped back.
func MarkOrderPaid(db *sql.DB, orderID string) error {
	query := `UPDATE orders
	          SET payment_status = 'paid',
	              status = CASE WHEN status = 'initiated' THEN 'pending' ELSE status END,
	              updated_at = NOW()
	          WHERE id = $1 AND payment_status = 'pending'`
	_, err := db.Exec(query, orderID)
	return err
}

func MarkOrderPaymentFailed(db *sql.DB, orderID string) error {
	query := `UPDATE orders SET payment_status = 'failed', updated_at = NOW()
	          WHERE id = $1 AND payment_status = 'pending'`
	_, err := db.Exec(query, orderID)
	return err
}

// ExpireStaleInitiatedOrders removes abandoned checkouts older than the
// cutoff. Returns the number of orders expired.
func ExpireStaleInitiatedOrders(db *sql.DB, olderThan time.Time) (int64, error) {
	result, err := db.Exec(`UPDATE orders SET status = 'rejected', reject_reason = 'Abandoned checkout', updated_at = NOW()
	                        WHERE status = 'initiated' AND payment_status = 'pending' AND created_at < $1`, olderThan)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
