package database

import (
	"database/sql"
	"pitstop/app/models"
)

// EnqueueNotification inserts a pending outbox row.
func EnqueueNotification(db *sql.DB, phone, message string) (*models.Notification, error) {
	n := &models.Notification{Phone: phone, Message: message, Status: models.NotificationPending}
	query := `INSERT INTO notifications (phone, message, status, created_at)
			  VALUES ($1, $2, 'pending', NOW())
			  RETURNING id, created_at`
	err := db.QueryRow(query, phone, message).Scan(&n.ID, &n.CreatedAt)
	if err != nil {
		return nil, err
	}
	return n, nil
}

func MarkNotificationSent(db *sql.DB, id string) error {
	_, err := db.Exec(`UPDATE notifications
	                   SET status = 'sent', attempts = attempts + 1, last_error = '', sent_at = NOW()
	                   WHERE id = $1`, id)
	return err
}

func MarkNotificationFailed(db *sql.DB, id, lastError string) error {
	_, err := db.Exec(`UPDATE notifications
	                   SET status = 'failed', attempts = attempts + 1, last_error = $2
	                   WHERE id = $1`, id, lastError)
	return err
}

// GetRetryableNotifications returns pending or failed rows that have
// not exhausted their attempts, oldest first.
func GetRetryableNotifications(db *sql.DB, maxAttempts, limit int) ([]*models.Notification, error) {
	query := `SELECT id, phone, message, status, attempts, COALESCE(last_error, ''), created_at, sent_at
			  FROM notifications
			  WHERE status IN ('pending', 'failed') AND attempts < $1
			  ORDER BY created_at
			  LIMIT $2`

	rows, err := db.Query(query, maxAttempts, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := []*models.Notification{}
	for rows.Next() {
		n := &models.Notification{}
		var status string
		err := rows.Scan(&n.ID, &n.Phone, &n.Message, &status, &n.Attempts, &n.LastError, &n.CreatedAt, &n.SentAt)
		if err != nil {
			return nil, err
		}
		n.Status = models.NotificationStatus(status)
		notifications = append(notifications, n)
	}
	return notifications, nil
}

func CountPendingNotifications(db *sql.DB) (int, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM notifications WHERE status = 'pending'`).Scan(&count)
	return count, err
}
