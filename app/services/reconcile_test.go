package services

import (
	"testing"
	"time"
)

func TestBusinessDayWindow(t *testing.T) {
	from, to := BusinessDayWindow(date(2024, 3, 10))

	if from.Hour() != 3 {
		t.Errorf("business day should start at 03:00, got %v", from)
	}
	if !to.Equal(from.AddDate(0, 0, 1)) {
		t.Errorf("business day should span exactly one day, got [%v, %v)", from, to)
	}

	// 01:30 the next calendar morning still belongs to this business day
	lateNight := ts(2024, 3, 11, 1, 30, 0)
	if lateNight.Before(from) || !lateNight.Before(to) {
		t.Errorf("late-night %v should fall inside [%v, %v)", lateNight, from, to)
	}

	// 02:00 the same calendar morning belongs to the previous day
	earlyMorning := ts(2024, 3, 10, 2, 0, 0)
	if !earlyMorning.Before(from) {
		t.Errorf("early-morning %v should fall before the window start %v", earlyMorning, from)
	}
}

func TestBusinessDayWindow_KeepsLocation(t *testing.T) {
	loc := time.FixedZone("TST", -5*3600)
	from, _ := BusinessDayWindow(time.Date(2024, 6, 1, 12, 0, 0, 0, loc))
	if from.Location() != loc {
		t.Errorf("window should stay in the input location, got %v", from.Location())
	}
}

func TestCashSalesTotal(t *testing.T) {
	tests := []struct {
		drops, expenses, want float64
	}{
		{500.00, 20.00, 520.00},
		{0, 0, 0},
		{100.10, 0.201, 100.30},
		{0, 35.5, 35.5},
	}
	for _, tt := range tests {
		if got := CashSalesTotal(tt.drops, tt.expenses); got != tt.want {
			t.Errorf("CashSalesTotal(%v, %v) = %v, want %v", tt.drops, tt.expenses, got, tt.want)
		}
	}
}

func TestBusinessDayWindow_ZoneAwareDateParsing(t *testing.T) {
	// A report date parsed in the configured zone must open the business
	// day at 03:00 in that zone, not 03:00 UTC.
	loc := time.FixedZone("CST", -6*3600)
	date, err := time.ParseInLocation("2006-01-02", "2024-03-10", loc)
	if err != nil {
		t.Fatal(err)
	}

	from, to := BusinessDayWindow(date)
	if from.Hour() != 3 || from.Location() != loc {
		t.Errorf("window start = %v, want 03:00 in %v", from, loc)
	}
	if to.Hour() != 3 || !to.Equal(from.AddDate(0, 0, 1)) {
		t.Errorf("window end = %v, want 03:00 the next day", to)
	}
}
