package database

import (
	"database/sql"
	"fmt"
	"pitstop/app/models"
	"time"
)

// CreatePaycheck records a paycheck, tags the contributing time entries
// and expenses, and books the matching payroll expense in a single
// transaction.
//
// Only rows with a null paycheck_id inside the week's window are
// tagged, so re-running for an overlapping week never double counts.
// Returns the number of time entries and expenses tagged.
func CreatePaycheck(db *sql.DB, paycheck *models.Paycheck, employeeName string, windowStart, windowEnd time.Time) (int64, int64, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, 0, err
	}
	defer tx.Rollback()

	// 1. Insert paycheck record
	queryPaycheck := `INSERT INTO paychecks (employee_id, week_start, week_end, hours, hourly_rate, gross_pay, expenses_total, net_pay, created_at)
	                  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
	                  RETURNING id, created_at`
	err = tx.QueryRow(queryPaycheck,
		paycheck.EmployeeID,
		paycheck.WeekStart,
		paycheck.WeekEnd,
		paycheck.Hours,
		paycheck.HourlyRate,
		paycheck.GrossPay,
		paycheck.ExpensesTotal,
		paycheck.NetPay,
	).Scan(&paycheck.ID, &paycheck.CreatedAt)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to insert paycheck: %v", err)
	}

	// 2. Tag unpaid time entries in the window
	resEntries, err := tx.Exec(`UPDATE time_entries
	                            SET paycheck_id = $1
	                            WHERE employee_id = $2 AND paycheck_id IS NULL
	                            AND clock_in >= $3 AND clock_in < $4`,
		paycheck.ID, paycheck.EmployeeID, windowStart, windowEnd)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to tag time entries: %v", err)
	}
	taggedEntries, _ := resEntries.RowsAffected()

	// 3. Tag unpaid expenses in the window
	resExpenses, err := tx.Exec(`UPDATE employee_expenses
	                             SET paycheck_id = $1
	                             WHERE employee_id = $2 AND paycheck_id IS NULL
	                             AND spent_at >= $3 AND spent_at < $4`,
		paycheck.ID, paycheck.EmployeeID, windowStart, windowEnd)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to tag expenses: %v", err)
	}
	taggedExpenses, _ := resExpenses.RowsAffected()

	// 4. Ensure the Payroll vendor exists
	var vendorID string
	err = tx.QueryRow(`SELECT id FROM vendors WHERE name = 'Payroll' AND deleted_at IS NULL`).Scan(&vendorID)
	if err == sql.ErrNoRows {
		err = tx.QueryRow(`INSERT INTO vendors (name, is_active) VALUES ('Payroll', true) RETURNING id`).Scan(&vendorID)
		if err != nil {
			return 0, 0, fmt.Errorf("failed to create payroll vendor: %v", err)
		}
	} else if err != nil {
		return 0, 0, fmt.Errorf("failed to find payroll vendor: %v", err)
	}

	// 5. Book the payout as a business expense dated at week end
	description := fmt.Sprintf("Paycheck: %s (%s to %s)",
		employeeName, paycheck.WeekStart.Format("2006-01-02"), paycheck.WeekEnd.Format("2006-01-02"))

	_, err = tx.Exec(`INSERT INTO business_expenses (vendor_id, amount, description, method, date)
	                  VALUES ($1, $2, $3, 'check', $4)`,
		vendorID, paycheck.NetPay, description, paycheck.WeekEnd)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to create payroll expense: %v", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, 0, err
	}
	return taggedEntries, taggedExpenses, nil
}

// GetPaychecksByEmployee retrieves all paychecks for one employee.
func GetPaychecksByEmployee(db *sql.DB, employeeID string) ([]*models.Paycheck, error) {
	query := `SELECT id, employee_id, week_start, week_end, hours, hourly_rate, gross_pay, expenses_total, net_pay, created_at
	          FROM paychecks
			  WHERE employee_id = $1
			  ORDER BY created_at DESC`

	rows, err := db.Query(query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPaychecks(rows)
}

func GetAllPaychecks(db *sql.DB) ([]*models.Paycheck, error) {
	query := `SELECT p.id, p.employee_id, p.week_start, p.week_end, p.hours, p.hourly_rate, p.gross_pay, p.expenses_total, p.net_pay, p.created_at,
			  e.first_name, e.last_name
			  FROM paychecks p
			  JOIN employees e ON p.employee_id = e.id
			  ORDER BY p.created_at DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	paychecks := []*models.Paycheck{}
	for rows.Next() {
		p := &models.Paycheck{}
		var firstName, lastName string
		err := rows.Scan(
			&p.ID, &p.EmployeeID, &p.WeekStart, &p.WeekEnd, &p.Hours, &p.HourlyRate,
			&p.GrossPay, &p.ExpensesTotal, &p.NetPay, &p.CreatedAt,
			&firstName, &lastName,
		)
		if err != nil {
			return nil, err
		}
		p.Employee = &models.Employee{ID: p.EmployeeID, FirstName: firstName, LastName: lastName}
		paychecks = append(paychecks, p)
	}
	return paychecks, nil
}

func scanPaychecks(rows *sql.Rows) ([]*models.Paycheck, error) {
	paychecks := []*models.Paycheck{}
	for rows.Next() {
		p := &models.Paycheck{}
		err := rows.Scan(
			&p.ID, &p.EmployeeID, &p.WeekStart, &p.WeekEnd, &p.Hours, &p.HourlyRate,
			&p.GrossPay, &p.ExpensesTotal, &p.NetPay, &p.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		paychecks = append(paychecks, p)
	}
	return paychecks, nil
}
