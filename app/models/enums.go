package models

// OrderStatus defines the lifecycle states of an order.
type OrderStatus string

const (
	OrderInitiated OrderStatus = "initiated"
	OrderPending   OrderStatus = "pending"
	OrderAccepted  OrderStatus = "accepted"
	OrderRejected  OrderStatus = "rejected"
	OrderReady     OrderStatus = "ready"
	OrderCompleted OrderStatus = "completed"
)

// PaymentStatus defines the status of an order's payment.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

// PaymentMethod defines how an order is paid.
type PaymentMethod string

const (
	MethodCash PaymentMethod = "cash"
	MethodCard PaymentMethod = "card"
)

// ExpenseMethod defines how a business expense was paid out.
type ExpenseMethod string

const (
	ExpenseCash  ExpenseMethod = "cash"
	ExpenseCard  ExpenseMethod = "card"
	ExpenseCheck ExpenseMethod = "check"
)

// NotificationStatus defines the delivery state of an outbound SMS.
type NotificationStatus string

const (
	NotificationPending NotificationStatus = "pending"
	NotificationSent    NotificationStatus = "sent"
	NotificationFailed  NotificationStatus = "failed"
)
