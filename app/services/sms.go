package services

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pitstop/app/config"
	"pitstop/app/database"
	"pitstop/app/models"
)

var smsClient = &http.Client{Timeout: 10 * time.Second}

// smsTransport delivers one message through the gateway. Swappable so
// tests can count attempts without hitting the network.
var smsTransport = sendViaGateway

func sendViaGateway(phone, message string) error {
	cfg := config.AppConfig.SMS
	if cfg.AccountSID == "" || cfg.AuthToken == "" {
		return fmt.Errorf("sms gateway not configured")
	}

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", cfg.BaseURL, cfg.AccountSID)
	form := url.Values{}
	form.Set("To", phone)
	form.Set("From", cfg.From)
	form.Set("Body", message)

	req, err := http.NewRequest("POST", endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.SetBasicAuth(cfg.AccountSID, cfg.AuthToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := smsClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("sms gateway returned status %d", resp.StatusCode)
	}
	return nil
}

// QueueNotification writes an outbox row and makes one immediate
// delivery attempt. Delivery failure is logged and left for the
// scheduler to retry; it never propagates to the caller.
func QueueNotification(db *sql.DB, phone, message string) {
	if phone == "" {
		return
	}

	n, err := database.EnqueueNotification(db, phone, message)
	if err != nil {
		log.Printf("Failed to enqueue notification for %s: %v", phone, err)
		return
	}

	DeliverNotification(db, n)
}

// DeliverNotification makes exactly one delivery attempt and records
// the outcome on the outbox row.
func DeliverNotification(db *sql.DB, n *models.Notification) {
	if err := smsTransport(n.Phone, n.Message); err != nil {
		log.Printf("Failed to send SMS to %s: %v", n.Phone, err)
		if dbErr := database.MarkNotificationFailed(db, n.ID, err.Error()); dbErr != nil {
			log.Printf("Failed to mark notification %s failed: %v", n.ID, dbErr)
		}
		return
	}
	if err := database.MarkNotificationSent(db, n.ID); err != nil {
		log.Printf("Failed to mark notification %s sent: %v", n.ID, err)
	}
}
