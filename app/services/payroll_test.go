package services

import (
	"testing"
	"time"

	"pitstop/app/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ts(y int, m time.Month, d, hh, mm, ss int) time.Time {
	return time.Date(y, m, d, hh, mm, ss, 0, time.UTC)
}

func TestDateWindow(t *testing.T) {
	from, to := DateWindow(date(2024, 1, 1), date(2024, 1, 7))

	if !from.Equal(ts(2024, 1, 1, 0, 0, 0)) {
		t.Errorf("window start = %v, want 2024-01-01 00:00", from)
	}
	if !to.Equal(ts(2024, 1, 8, 0, 0, 0)) {
		t.Errorf("window end = %v, want 2024-01-08 00:00", to)
	}

	// An entry late on the end day itself must fall inside the window
	endOfDay := ts(2024, 1, 7, 23, 59, 59)
	if endOfDay.Before(from) || !endOfDay.Before(to) {
		t.Errorf("entry at %v not inside [%v, %v)", endOfDay, from, to)
	}

	// Single-day range covers exactly that day
	from, to = DateWindow(date(2024, 3, 10), date(2024, 3, 10))
	if to.Sub(from) != 24*time.Hour {
		t.Errorf("single-day window length = %v, want 24h", to.Sub(from))
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{8.0, 8.0},
		{8.006, 8.01},
		{8.004, 8.0},
		{519.999, 520.0},
		{0, 0},
		{-2.456, -2.46},
	}
	for _, tt := range tests {
		if got := Round2(tt.in); got != tt.want {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestBuildPayrollBuckets_EightHourShift(t *testing.T) {
	clockOut := ts(2024, 1, 1, 17, 0, 0)
	employees := []*models.Employee{
		{ID: "e1", FirstName: "Sam", LastName: "Carter", HourlyRate: 15},
	}
	entries := []*models.TimeEntry{
		{ID: "t1", EmployeeID: "e1", ClockIn: ts(2024, 1, 1, 9, 0, 0), ClockOut: &clockOut},
	}

	buckets := BuildPayrollBuckets(employees, entries, nil)
	if len(buckets) != 1 {
		t.Fatalf("expected 1 bucket, got %d", len(buckets))
	}
	if buckets[0].TotalHours != 8.00 {
		t.Errorf("TotalHours = %v, want 8.00", buckets[0].TotalHours)
	}
}

func TestBuildPayrollBuckets_EmptyBucketsIncluded(t *testing.T) {
	employees := []*models.Employee{
		{ID: "e1", FirstName: "Ann", LastName: "Able"},
		{ID: "e2", FirstName: "Bob", LastName: "Best"},
	}

	buckets := BuildPayrollBuckets(employees, nil, nil)
	if len(buckets) != 2 {
		t.Fatalf("expected buckets for every active employee, got %d", len(buckets))
	}
	for _, b := range buckets {
		if b.TotalHours != 0 || b.ExpensesTotal != 0 {
			t.Errorf("empty bucket %s has totals %v/%v, want 0/0", b.EmployeeID, b.TotalHours, b.ExpensesTotal)
		}
		if b.TimeEntries == nil || b.Expenses == nil {
			t.Errorf("bucket %s slices should be non-nil for JSON output", b.EmployeeID)
		}
	}

	// Stable enumeration order follows the employee list
	if buckets[0].EmployeeID != "e1" || buckets[1].EmployeeID != "e2" {
		t.Errorf("bucket order changed: %s, %s", buckets[0].EmployeeID, buckets[1].EmployeeID)
	}
}

func TestBuildPayrollBuckets_OpenEntryListedNotSummed(t *testing.T) {
	closedOut := ts(2024, 1, 2, 12, 0, 0)
	employees := []*models.Employee{{ID: "e1"}}
	entries := []*models.TimeEntry{
		{ID: "open", EmployeeID: "e1", ClockIn: ts(2024, 1, 1, 9, 0, 0)},
		{ID: "closed", EmployeeID: "e1", ClockIn: ts(2024, 1, 2, 8, 0, 0), ClockOut: &closedOut},
	}

	buckets := BuildPayrollBuckets(employees, entries, nil)
	b := buckets[0]
	if len(b.TimeEntries) != 2 {
		t.Errorf("open entry should still be listed, got %d entries", len(b.TimeEntries))
	}
	if b.TotalHours != 4.00 {
		t.Errorf("TotalHours = %v, want 4.00 (open entry contributes zero)", b.TotalHours)
	}
}

func TestBuildPayrollBuckets_NegativeDurationFlooredAtZero(t *testing.T) {
	// Clock-out before clock-in (clock drift or bad edit) must not
	// subtract from the total
	badOut := ts(2024, 1, 1, 8, 0, 0)
	goodOut := ts(2024, 1, 2, 10, 0, 0)
	employees := []*models.Employee{{ID: "e1"}}
	entries := []*models.TimeEntry{
		{ID: "bad", EmployeeID: "e1", ClockIn: ts(2024, 1, 1, 9, 0, 0), ClockOut: &badOut},
		{ID: "good", EmployeeID: "e1", ClockIn: ts(2024, 1, 2, 8, 0, 0), ClockOut: &goodOut},
	}

	buckets := BuildPayrollBuckets(employees, entries, nil)
	if buckets[0].TotalHours != 2.00 {
		t.Errorf("TotalHours = %v, want 2.00", buckets[0].TotalHours)
	}
}

func TestBuildPayrollBuckets_Expenses(t *testing.T) {
	employees := []*models.Employee{{ID: "e1"}, {ID: "e2"}}
	expenses := []*models.EmployeeExpense{
		{ID: "x1", EmployeeID: "e1", Amount: 12.50},
		{ID: "x2", EmployeeID: "e1", Amount: 7.499},
		{ID: "x3", EmployeeID: "gone", Amount: 99}, // deactivated employee, dropped
	}

	buckets := BuildPayrollBuckets(employees, nil, expenses)
	if buckets[0].ExpensesTotal != 20.00 {
		t.Errorf("ExpensesTotal = %v, want 20.00", buckets[0].ExpensesTotal)
	}
	if buckets[1].ExpensesTotal != 0 {
		t.Errorf("ExpensesTotal for e2 = %v, want 0", buckets[1].ExpensesTotal)
	}
}

func TestDateWindow_ZoneAwareDateParsing(t *testing.T) {
	// Query dates arrive as YYYY-MM-DD and must be parsed in the zone
	// the entries were stamped in, or a late-evening shift on the end
	// day slips out of the window.
	loc := time.FixedZone("CST", -6*3600)
	start, err := time.ParseInLocation("2006-01-02", "2024-01-01", loc)
	if err != nil {
		t.Fatal(err)
	}
	end, err := time.ParseInLocation("2006-01-02", "2024-01-01", loc)
	if err != nil {
		t.Fatal(err)
	}

	from, to := DateWindow(start, end)
	if from.Location() != loc || to.Location() != loc {
		t.Fatalf("window left the parse zone: [%v, %v)", from, to)
	}

	lateEntry := time.Date(2024, 1, 1, 23, 59, 59, 0, loc)
	if lateEntry.Before(from) || !lateEntry.Before(to) {
		t.Errorf("entry at %v excluded from window [%v, %v)", lateEntry, from, to)
	}
}
