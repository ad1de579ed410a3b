package services

import (
	"database/sql"
	"fmt"

	"pitstop/app/database"
	"pitstop/app/models"
)

// statusTransitions is the fixed order lifecycle:
// initiated -> pending -> accepted|rejected, accepted -> ready -> completed.
var statusTransitions = map[models.OrderStatus][]models.OrderStatus{
	models.OrderInitiated: {models.OrderPending, models.OrderRejected},
	models.OrderPending:   {models.OrderAccepted, models.OrderRejected},
	models.OrderAccepted:  {models.OrderReady, models.OrderRejected},
	models.OrderReady:     {models.OrderCompleted},
}

// ValidStatusTransition reports whether an order may move from one
// status to another.
func ValidStatusTransition(from, to models.OrderStatus) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CustomerMessageForStatus builds the SMS text sent to the customer on
// a status change.
func CustomerMessageForStatus(order *models.Order, status models.OrderStatus) string {
	short := order.ID
	if len(short) > 8 {
		short = short[:8]
	}
	switch status {
	case models.OrderAccepted:
		return fmt.Sprintf("Your order %s has been accepted and is being prepared.", short)
	case models.OrderRejected:
		if order.RejectReason != "" {
			return fmt.Sprintf("Sorry, your order %s was declined: %s", short, order.RejectReason)
		}
		return fmt.Sprintf("Sorry, your order %s was declined.", short)
	case models.OrderReady:
		return fmt.Sprintf("Your order %s is ready for pickup!", short)
	default:
		return ""
	}
}

// AcceptOrder moves a pending order to accepted and notifies the
// customer.
func AcceptOrder(db *sql.DB, order *models.Order) error {
	if !ValidStatusTransition(order.Status, models.OrderAccepted) {
		return fmt.Errorf("cannot accept order in status %s", order.Status)
	}
	if err := database.UpdateOrderStatus(db, order.ID, models.OrderAccepted, ""); err != nil {
		return err
	}
	order.Status = models.OrderAccepted
	QueueNotification(db, order.CustomerPhone, CustomerMessageForStatus(order, models.OrderAccepted))
	return nil
}

// RejectOrder moves an order to rejected, persisting the reason. The
// notification is best-effort: its failure never fails the transition.
func RejectOrder(db *sql.DB, order *models.Order, reason string) error {
	if !ValidStatusTransition(order.Status, models.OrderRejected) {
		return fmt.Errorf("cannot reject order in status %s", order.Status)
	}
	if err := database.UpdateOrderStatus(db, order.ID, models.OrderRejected, reason); err != nil {
		return err
	}
	order.Status = models.OrderRejected
	order.RejectReason = reason
	QueueNotification(db, order.CustomerPhone, CustomerMessageForStatus(order, models.OrderRejected))
	return nil
}

// MarkOrderReady notifies the customer on the ready edge and advances
// straight to completed, which is the terminal status the record keeps.
// Exactly one notification attempt is made per call.
func MarkOrderReady(db *sql.DB, order *models.Order) error {
	if !ValidStatusTransition(order.Status, models.OrderReady) {
		return fmt.Errorf("cannot mark order ready in status %s", order.Status)
	}
	if err := database.UpdateOrderStatus(db, order.ID, models.OrderReady, ""); err != nil {
		return err
	}
	order.Status = models.OrderReady
	QueueNotification(db, order.CustomerPhone, CustomerMessageForStatus(order, models.OrderReady))

	if err := database.UpdateOrderStatus(db, order.ID, models.OrderCompleted, ""); err != nil {
		return err
	}
	order.Status = models.OrderCompleted
	return nil
}
