package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"pitstop/app/config"
)

var paymentClient = &http.Client{Timeout: 15 * time.Second}

// PaymentIntent is the subset of the gateway's payment intent resource
// the app cares about.
type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Status       string `json:"status"`
	Amount       int64  `json:"amount"`
}

type gatewayError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// CreatePaymentIntent creates a payment intent at the card gateway for
// the order total. Amount is converted to the smallest currency unit.
func CreatePaymentIntent(total float64, orderID string) (*PaymentIntent, error) {
	cfg := config.AppConfig.Payment
	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("payment gateway not configured")
	}

	cents := int64(total*100 + 0.5)
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(cents, 10))
	form.Set("currency", "usd")
	form.Set("metadata[order_id]", orderID)

	req, err := http.NewRequest("POST", cfg.BaseURL+"/v1/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+cfg.SecretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return doPaymentRequest(req)
}

// RetrievePaymentIntent re-checks an intent server-side. The caller
// decides what to do with the returned status; only "succeeded" may
// flip an order to paid.
func RetrievePaymentIntent(intentID string) (*PaymentIntent, error) {
	cfg := config.AppConfig.Payment
	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("payment gateway not configured")
	}

	req, err := http.NewRequest("GET", cfg.BaseURL+"/v1/payment_intents/"+url.PathEscape(intentID), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+cfg.SecretKey)

	return doPaymentRequest(req)
}

func doPaymentRequest(req *http.Request) (*PaymentIntent, error) {
	resp, err := paymentClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 300 {
		var gwErr gatewayError
		if json.Unmarshal(body, &gwErr) == nil && gwErr.Error.Message != "" {
			return nil, fmt.Errorf("payment gateway: %s", gwErr.Error.Message)
		}
		return nil, fmt.Errorf("payment gateway returned status %d", resp.StatusCode)
	}

	intent := &PaymentIntent{}
	if err := json.Unmarshal(body, intent); err != nil {
		return nil, err
	}
	return intent, nil
}
