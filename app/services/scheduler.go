package services

import (
	"database/sql"
	"log"
	"time"

	"pitstop/app/database"
)

const (
	maxNotificationAttempts = 5
	outboxBatchSize         = 20
	staleOrderCutoff        = 30 * time.Minute
)

// StartScheduler starts the background task scheduler.
func StartScheduler(db *sql.DB) {
	go func() {
		log.Println("Scheduler started...")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			FlushNotificationOutbox(db)

			expired, err := database.ExpireStaleInitiatedOrders(db, time.Now().Add(-staleOrderCutoff))
			if err != nil {
				log.Printf("Error expiring stale orders: %v", err)
			} else if expired > 0 {
				log.Printf("Expired %d abandoned orders", expired)
			}

			if err := database.DeleteExpiredSessions(db); err != nil {
				log.Printf("Error cleaning sessions: %v", err)
			}
		}
	}()
}

// FlushNotificationOutbox retries undelivered notifications, oldest
// first. Rows that have exhausted their attempts are left alone.
func FlushNotificationOutbox(db *sql.DB) {
	pending, err := database.GetRetryableNotifications(db, maxNotificationAttempts, outboxBatchSize)
	if err != nil {
		log.Printf("Error loading notification outbox: %v", err)
		return
	}

	for _, n := range pending {
		DeliverNotification(db, n)
	}
}
