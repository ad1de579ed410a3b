package services

import (
	"strings"
	"testing"

	"pitstop/app/models"
)

func TestValidStatusTransition(t *testing.T) {
	tests := []struct {
		from, to models.OrderStatus
		want     bool
	}{
		{models.OrderInitiated, models.OrderPending, true},
		{models.OrderInitiated, models.OrderRejected, true},
		{models.OrderInitiated, models.OrderAccepted, false},
		{models.OrderPending, models.OrderAccepted, true},
		{models.OrderPending, models.OrderRejected, true},
		{models.OrderPending, models.OrderReady, false},
		{models.OrderPending, models.OrderCompleted, false},
		{models.OrderAccepted, models.OrderReady, true},
		{models.OrderAccepted, models.OrderRejected, true},
		{models.OrderAccepted, models.OrderCompleted, false},
		{models.OrderReady, models.OrderCompleted, true},
		{models.OrderReady, models.OrderAccepted, false},
		{models.OrderRejected, models.OrderPending, false},
		{models.OrderCompleted, models.OrderReady, false},
		{"", models.OrderPending, false},
		{models.OrderPending, "", false},
	}
	for _, tt := range tests {
		got := ValidStatusTransition(tt.from, tt.to)
		if got != tt.want {
			t.Errorf("ValidStatusTransition(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestCustomerMessageForStatus(t *testing.T) {
	o := &models.Order{ID: "abcd1234-5678-90ef-ghij-klmnopqrstuv"}

	m := CustomerMessageForStatus(o, models.OrderReady)
	if m == "" {
		t.Error("expected non-empty message for ready")
	}
	if !strings.Contains(m, "abcd1234") {
		t.Errorf("message should contain the short order id: %s", m)
	}
	if strings.Contains(m, "abcd1234-") {
		t.Errorf("message should not contain the full order id: %s", m)
	}

	o.RejectReason = "Out of buns"
	m = CustomerMessageForStatus(o, models.OrderRejected)
	if !strings.Contains(m, "Out of buns") {
		t.Errorf("rejected message should contain the reason: %s", m)
	}

	if m := CustomerMessageForStatus(o, models.OrderCompleted); m != "" {
		t.Errorf("no message expected for completed, got %q", m)
	}
}
