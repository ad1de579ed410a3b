package models

import "time"

// Paycheck is a computed payout for one employee over one week.
// Multiple paychecks per employee per week are allowed (partial
// payments); rows already tagged with a paycheck are never re-tagged.
type Paycheck struct {
	ID            string    `json:"id"`
	EmployeeID    string    `json:"employee_id"`
	WeekStart     time.Time `json:"week_start"`
	WeekEnd       time.Time `json:"week_end"`
	Hours         float64   `json:"hours"`
	HourlyRate    float64   `json:"hourly_rate"`
	GrossPay      float64   `json:"gross_pay"`
	ExpensesTotal float64   `json:"expenses_total"`
	NetPay        float64   `json:"net_pay"`
	CreatedAt     time.Time `json:"created_at"`
	Employee      *Employee `json:"employee,omitempty"`
}
