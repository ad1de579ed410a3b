package database

import (
	"database/sql"
	"pitstop/app/models"
	"time"
)

// GetOpenTimeEntry returns the employee's open entry (clock_out IS
// NULL), or nil if they are not clocked in.
func GetOpenTimeEntry(db *sql.DB, employeeID string) (*models.TimeEntry, error) {
	entry := &models.TimeEntry{}
	query := `SELECT id, employee_id, clock_in, clock_out, paycheck_id, created_at
			  FROM time_entries
			  WHERE employee_id = $1 AND clock_out IS NULL`

	err := db.QueryRow(query, employeeID).Scan(
		&entry.ID, &entry.EmployeeID, &entry.ClockIn, &entry.ClockOut, &entry.PaycheckID, &entry.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func CreateTimeEntry(db *sql.DB, employeeID string, clockIn time.Time) (*models.TimeEntry, error) {
	entry := &models.TimeEntry{EmployeeID: employeeID, ClockIn: clockIn}
	query := `INSERT INTO time_entries (employee_id, clock_in, created_at)
			  VALUES ($1, $2, NOW())
			  RETURNING id, created_at`

	err := db.QueryRow(query, employeeID, clockIn).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// CloseTimeEntry sets clock_out on an open entry. A clock_out, once
// set, is never cleared or moved.
func CloseTimeEntry(db *sql.DB, entryID string, clockOut time.Time) error {
	query := `UPDATE time_entries SET clock_out = $1 WHERE id = $2 AND clock_out IS NULL`
	result, err := db.Exec(query, clockOut, entryID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// GetTimeEntriesInWindow returns entries whose clock_in falls in
// [from, to). Entries are matched by their start only, so a shift that
// runs past the window still counts.
func GetTimeEntriesInWindow(db *sql.DB, from, to time.Time) ([]*models.TimeEntry, error) {
	query := `SELECT t.id, t.employee_id, t.clock_in, t.clock_out, t.paycheck_id, t.created_at,
			  e.first_name, e.last_name
			  FROM time_entries t
			  JOIN employees e ON t.employee_id = e.id
			  WHERE t.clock_in >= $1 AND t.clock_in < $2
			  ORDER BY t.clock_in`

	rows, err := db.Query(query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []*models.TimeEntry{}
	for rows.Next() {
		entry := &models.TimeEntry{}
		var firstName, lastName string
		err := rows.Scan(
			&entry.ID, &entry.EmployeeID, &entry.ClockIn, &entry.ClockOut, &entry.PaycheckID, &entry.CreatedAt,
			&firstName, &lastName,
		)
		if err != nil {
			return nil, err
		}
		entry.Employee = &models.Employee{ID: entry.EmployeeID, FirstName: firstName, LastName: lastName}
		entries = append(entries, entry)
	}
	return entries, nil
}
