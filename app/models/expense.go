package models

import "time"

// EmployeeExpense is money an employee spent out of pocket, reimbursed
// through their next paycheck. PaycheckID is set once reimbursed.
type EmployeeExpense struct {
	ID          string    `json:"id"`
	EmployeeID  string    `json:"employee_id"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	SpentAt     time.Time `json:"spent_at"`
	PaycheckID  *string   `json:"paycheck_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	Employee    *Employee `json:"employee,omitempty"`
}

// Vendor is a payee for business expenses. The "Payroll" vendor is
// created automatically the first time a paycheck is recorded.
type Vendor struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// BusinessExpense is an outgoing payment from the till or the bank
// account, used for cash and deposit reconciliation.
type BusinessExpense struct {
	ID          string        `json:"id"`
	VendorID    string        `json:"vendor_id"`
	Amount      float64       `json:"amount"`
	Description string        `json:"description"`
	Method      ExpenseMethod `json:"method"`
	Date        time.Time     `json:"date"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
	DeletedAt   *time.Time    `json:"deleted_at,omitempty"`
	Vendor      *Vendor       `json:"vendor,omitempty"`
}

// SafeDrop is cash moved from the register into the safe. Only
// confirmed drops count toward cash sales.
type SafeDrop struct {
	ID        string    `json:"id"`
	Amount    float64   `json:"amount"`
	DroppedAt time.Time `json:"dropped_at"`
	Confirmed bool      `json:"confirmed"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Deposit is an actual bank deposit entered by the admin for
// comparison against expected deposits over a range.
type Deposit struct {
	ID          string    `json:"id"`
	Amount      float64   `json:"amount"`
	DepositedAt time.Time `json:"deposited_at"`
	Note        string    `json:"note,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
