package models

import "time"

type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

// Order is a fast-food order. CustomerName/CustomerPhone are snapshots
// taken at order time so receipts survive later customer edits.
type Order struct {
	ID              string        `json:"id"`
	CustomerID      *string       `json:"customer_id,omitempty"`
	CustomerName    string        `json:"customer_name"`
	CustomerPhone   string        `json:"customer_phone"`
	Total           float64       `json:"total"`
	PaymentMethod   PaymentMethod `json:"payment_method"`
	PaymentStatus   PaymentStatus `json:"payment_status"`
	Status          OrderStatus   `json:"status"`
	RejectReason    string        `json:"reject_reason,omitempty"`
	PaymentIntentID *string       `json:"payment_intent_id,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
	Items           []*OrderItem  `json:"items,omitempty"`
}

// OrderItem carries a denormalized name/price snapshot so the receipt
// stays stable even if the menu changes later.
type OrderItem struct {
	ID         string               `json:"id"`
	OrderID    string               `json:"order_id"`
	MenuItemID string               `json:"menu_item_id"`
	Name       string               `json:"name"`
	Price      float64              `json:"price"`
	Quantity   int                  `json:"quantity"`
	Modifiers  []*OrderItemModifier `json:"modifiers,omitempty"`
}

type OrderItemModifier struct {
	ID          string  `json:"id"`
	OrderItemID string  `json:"order_item_id"`
	ModifierID  string  `json:"modifier_id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
}
