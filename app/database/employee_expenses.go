package database

import (
	"database/sql"
	"pitstop/app/models"
	"time"
)

func CreateEmployeeExpense(db *sql.DB, e *models.EmployeeExpense) error {
	query := `INSERT INTO employee_expenses (employee_id, amount, description, spent_at, created_at)
			  VALUES ($1, $2, $3, $4, NOW())
			  RETURNING id, created_at`

	return db.QueryRow(query, e.EmployeeID, e.Amount, e.Description, e.SpentAt).
		Scan(&e.ID, &e.CreatedAt)
}

// UntaggedEmployeeExpenseTotal sums the employee's expenses in
// [from, to) that no paycheck has claimed yet. These are exactly the
// rows CreatePaycheck will tag, so the sum belongs in that paycheck's
// expenses_total.
func UntaggedEmployeeExpenseTotal(db *sql.DB, employeeID string, from, to time.Time) (float64, error) {
	var total float64
	err := db.QueryRow(`SELECT COALESCE(SUM(amount), 0) FROM employee_expenses
	                    WHERE employee_id = $1 AND paycheck_id IS NULL
	                    AND spent_at >= $2 AND spent_at < $3`,
		employeeID, from, to).Scan(&total)
	return total, err
}

// GetEmployeeExpensesInWindow returns expenses whose spent_at falls in
// [from, to).
func GetEmployeeExpensesInWindow(db *sql.DB, from, to time.Time) ([]*models.EmployeeExpense, error) {
	query := `SELECT x.id, x.employee_id, x.amount, x.description, x.spent_at, x.paycheck_id, x.created_at,
			  e.first_name, e.last_name
			  FROM employee_expenses x
			  JOIN employees e ON x.employee_id = e.id
			  WHERE x.spent_at >= $1 AND x.spent_at < $2
			  ORDER BY x.spent_at`

	rows, err := db.Query(query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expenses := []*models.EmployeeExpense{}
	for rows.Next() {
		x := &models.EmployeeExpense{}
		var firstName, lastName string
		err := rows.Scan(
			&x.ID, &x.EmployeeID, &x.Amount, &x.Description, &x.SpentAt, &x.PaycheckID, &x.CreatedAt,
			&firstName, &lastName,
		)
		if err != nil {
			return nil, err
		}
		x.Employee = &models.Employee{ID: x.EmployeeID, FirstName: firstName, LastName: lastName}
		expenses = append(expenses, x)
	}
	return expenses, nil
}

func GetEmployeeExpensesByEmployee(db *sql.DB, employeeID string) ([]*models.EmployeeExpense, error) {
	query := `SELECT id, employee_id, amount, description, spent_at, paycheck_id, created_at
			  FROM employee_expenses
			  WHERE employee_id = $1
			  ORDER BY spent_at DESC`

	rows, err := db.Query(query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expenses := []*models.EmployeeExpense{}
	for rows.Next() {
		x := &models.EmployeeExpense{}
		err := rows.Scan(&x.ID, &x.EmployeeID, &x.Amount, &x.Description, &x.SpentAt, &x.PaycheckID, &x.CreatedAt)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, x)
	}
	return expenses, nil
}
