package database

import (
	"database/sql"
	"fmt"
	"pitstop/app/models"
)

// GetActiveEmployees returns all active employees in a stable order.
func GetActiveEmployees(db *sql.DB) ([]*models.Employee, error) {
	query := `SELECT id, first_name, last_name, COALESCE(phone, ''), hourly_rate, code, is_active, created_at, updated_at
			  FROM employees
			  WHERE is_active = true
			  ORDER BY first_name, last_name, id`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := []*models.Employee{}
	for rows.Next() {
		e := &models.Employee{}
		err := rows.Scan(&e.ID, &e.FirstName, &e.LastName, &e.Phone, &e.HourlyRate, &e.Code, &e.IsActive, &e.CreatedAt, &e.UpdatedAt)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, nil
}

func GetEmployeeByID(db *sql.DB, id string) (*models.Employee, error) {
	e := &models.Employee{}
	query := `SELECT id, first_name, last_name, COALESCE(phone, ''), hourly_rate, code, is_active, created_at, updated_at
			  FROM employees WHERE id = $1`

	err := db.QueryRow(query, id).Scan(
		&e.ID, &e.FirstName, &e.LastName, &e.Phone, &e.HourlyRate, &e.Code, &e.IsActive, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func CreateEmployee(db *sql.DB, e *models.Employee) error {
	query := `INSERT INTO employees (first_name, last_name, phone, hourly_rate, code, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, true, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	return db.QueryRow(query, e.FirstName, e.LastName, e.Phone, e.HourlyRate, e.Code).
		Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
}

func UpdateEmployee(db *sql.DB, e *models.Employee) error {
	query := `UPDATE employees
			  SET first_name = $1, last_name = $2, phone = $3, hourly_rate = $4, is_active = $5, updated_at = NOW()
			  WHERE id = $6`

	result, err := db.Exec(query, e.FirstName, e.LastName, e.Phone, e.HourlyRate, e.IsActive, e.ID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("employee not found")
	}
	return nil
}

func UpdateEmployeeCode(db *sql.DB, id, code string) error {
	query := `UPDATE employees SET code = $1, updated_at = NOW() WHERE id = $2`
	_, err := db.Exec(query, code, id)
	return err
}

// DeactivateEmployee flips the active flag. Employees are never deleted
// so paychecks and time entries keep a valid reference.
func DeactivateEmployee(db *sql.DB, id string) error {
	query := `UPDATE employees SET is_active = false, updated_at = NOW() WHERE id = $1`
	_, err := db.Exec(query, id)
	return err
}
