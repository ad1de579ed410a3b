package services

import (
	"database/sql"
	"math"
	"time"

	"pitstop/app/database"
	"pitstop/app/models"
)

// PayrollBucket is one employee's slice of a payroll report. Every
// active employee gets a bucket even with no activity in the range.
type PayrollBucket struct {
	EmployeeID    string                    `json:"employee_id"`
	FirstName     string                    `json:"first_name"`
	LastName      string                    `json:"last_name"`
	HourlyRate    float64                   `json:"hourly_rate"`
	TotalHours    float64                   `json:"total_hours"`
	ExpensesTotal float64                   `json:"expenses_total"`
	TimeEntries   []*models.TimeEntry       `json:"time_entries"`
	Expenses      []*models.EmployeeExpense `json:"expenses"`
}

// DateWindow converts an inclusive calendar-date range into a half-open
// timestamp window [start 00:00, end+1d 00:00), so the whole end day is
// covered regardless of stored timestamp granularity.
func DateWindow(start, end time.Time) (time.Time, time.Time) {
	from := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	to := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location()).AddDate(0, 0, 1)
	return from, to
}

// Round2 rounds to 2 decimal places for report output.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// BuildPayrollBuckets groups time entries and expenses by employee.
// Open entries (no clock-out) are listed but contribute zero hours.
func BuildPayrollBuckets(employees []*models.Employee, entries []*models.TimeEntry, expenses []*models.EmployeeExpense) []*PayrollBucket {
	buckets := make([]*PayrollBucket, 0, len(employees))
	byEmployee := make(map[string]*PayrollBucket, len(employees))

	for _, e := range employees {
		b := &PayrollBucket{
			EmployeeID:  e.ID,
			FirstName:   e.FirstName,
			LastName:    e.LastName,
			HourlyRate:  e.HourlyRate,
			TimeEntries: []*models.TimeEntry{},
			Expenses:    []*models.EmployeeExpense{},
		}
		buckets = append(buckets, b)
		byEmployee[e.ID] = b
	}

	for _, entry := range entries {
		b, ok := byEmployee[entry.EmployeeID]
		if !ok {
			// Entry belongs to a deactivated employee, not reported
			continue
		}
		b.TimeEntries = append(b.TimeEntries, entry)
		b.TotalHours += entry.Hours()
	}

	for _, x := range expenses {
		b, ok := byEmployee[x.EmployeeID]
		if !ok {
			continue
		}
		b.Expenses = append(b.Expenses, x)
		b.ExpensesTotal += x.Amount
	}

	for _, b := range buckets {
		b.TotalHours = Round2(b.TotalHours)
		b.ExpensesTotal = Round2(b.ExpensesTotal)
	}
	return buckets
}

// LoadPayrollReport loads and aggregates payroll data for an inclusive
// date range.
func LoadPayrollReport(db *sql.DB, start, end time.Time) ([]*PayrollBucket, error) {
	from, to := DateWindow(start, end)

	employees, err := database.GetActiveEmployees(db)
	if err != nil {
		return nil, err
	}
	entries, err := database.GetTimeEntriesInWindow(db, from, to)
	if err != nil {
		return nil, err
	}
	expenses, err := database.GetEmployeeExpensesInWindow(db, from, to)
	if err != nil {
		return nil, err
	}

	return BuildPayrollBuckets(employees, entries, expenses), nil
}
