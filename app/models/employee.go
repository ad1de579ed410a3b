package models

import "time"

// Employee is a station worker paid by the hour. Employees are
// deactivated rather than deleted so historic paychecks keep their
// reference.
type Employee struct {
	ID         string    `json:"id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Phone      string    `json:"phone,omitempty"`
	HourlyRate float64   `json:"hourly_rate"`
	Code       string    `json:"-"` // bcrypt hash, or a legacy plaintext 4-digit code
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TimeEntry is a single clock-in/clock-out pair. ClockOut is nil while
// the entry is open; PaycheckID is set once the entry has been paid.
type TimeEntry struct {
	ID         string     `json:"id"`
	EmployeeID string     `json:"employee_id"`
	ClockIn    time.Time  `json:"clock_in"`
	ClockOut   *time.Time `json:"clock_out,omitempty"`
	PaycheckID *string    `json:"paycheck_id,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	Employee   *Employee  `json:"employee,omitempty"`
}

// Hours returns the worked hours for a closed entry, floored at zero.
// Open entries contribute nothing.
func (e *TimeEntry) Hours() float64 {
	if e.ClockOut == nil {
		return 0
	}
	h := e.ClockOut.Sub(e.ClockIn).Hours()
	if h < 0 {
		return 0
	}
	return h
}
