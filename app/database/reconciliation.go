package database

import (
	"database/sql"
	"pitstop/app/models"
	"time"
)

// ConfirmedSafeDropTotal sums confirmed safe drops dropped in [from, to).
func ConfirmedSafeDropTotal(db *sql.DB, from, to time.Time) (float64, error) {
	var total float64
	err := db.QueryRow(`SELECT COALESCE(SUM(amount), 0) FROM safe_drops
	                    WHERE confirmed = true AND dropped_at >= $1 AND dropped_at < $2`, from, to).Scan(&total)
	return total, err
}

// BusinessExpenseTotalByMethod sums business expenses paid with the
// given method, dated in [from, to).
func BusinessExpenseTotalByMethod(db *sql.DB, method models.ExpenseMethod, from, to time.Time) (float64, error) {
	var total float64
	err := db.QueryRow(`SELECT COALESCE(SUM(amount), 0) FROM business_expenses
	                    WHERE method = $1 AND deleted_at IS NULL AND date >= $2 AND date < $3`,
		string(method), from, to).Scan(&total)
	return total, err
}

// CardSalesTotal sums paid card orders created in [from, to).
func CardSalesTotal(db *sql.DB, from, to time.Time) (float64, error) {
	var total float64
	err := db.QueryRow(`SELECT COALESCE(SUM(total), 0) FROM orders
	                    WHERE payment_method = 'card' AND payment_status = 'paid'
	                    AND created_at >= $1 AND created_at < $2`, from, to).Scan(&total)
	return total, err
}

// DepositTotal sums actual bank deposits made in [from, to).
func DepositTotal(db *sql.DB, from, to time.Time) (float64, error) {
	var total float64
	err := db.QueryRow(`SELECT COALESCE(SUM(amount), 0) FROM deposits
	                    WHERE deposited_at >= $1 AND deposited_at < $2`, from, to).Scan(&total)
	return total, err
}

func CreateSafeDrop(db *sql.DB, drop *models.SafeDrop) error {
	query := `INSERT INTO safe_drops (amount, dropped_at, confirmed, note, created_at)
			  VALUES ($1, $2, $3, $4, NOW())
			  RETURNING id, created_at`
	return db.QueryRow(query, drop.Amount, drop.DroppedAt, drop.Confirmed, drop.Note).
		Scan(&drop.ID, &drop.CreatedAt)
}

func ConfirmSafeDrop(db *sql.DB, id string) error {
	result, err := db.Exec(`UPDATE safe_drops SET confirmed = true WHERE id = $1`, id)
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

func GetSafeDropsInWindow(db *sql.DB, from, to time.Time) ([]*models.SafeDrop, error) {
	rows, err := db.Query(`SELECT id, amount, dropped_at, confirmed, note, created_at
	                       FROM safe_drops WHERE dropped_at >= $1 AND dropped_at < $2
	                       ORDER BY dropped_at`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	drops := []*models.SafeDrop{}
	for rows.Next() {
		d := &models.SafeDrop{}
		if err := rows.Scan(&d.ID, &d.Amount, &d.DroppedAt, &d.Confirmed, &d.Note, &d.CreatedAt); err != nil {
			return nil, err
		}
		drops = append(drops, d)
	}
	return drops, nil
}

func CreateDeposit(db *sql.DB, dep *models.Deposit) error {
	query := `INSERT INTO deposits (amount, deposited_at, note, created_at)
			  VALUES ($1, $2, $3, NOW())
			  RETURNING id, created_at`
	return db.QueryRow(query, dep.Amount, dep.DepositedAt, dep.Note).
		Scan(&dep.ID, &dep.CreatedAt)
}

func GetDepositsInWindow(db *sql.DB, from, to time.Time) ([]*models.Deposit, error) {
	rows, err := db.Query(`SELECT id, amount, deposited_at, note, created_at
	                       FROM deposits WHERE deposited_at >= $1 AND deposited_at < $2
	                       ORDER BY deposited_at`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	deposits := []*models.Deposit{}
	for rows.Next() {
		d := &models.Deposit{}
		if err := rows.Scan(&d.ID, &d.Amount, &d.DepositedAt, &d.Note, &d.CreatedAt); err != nil {
			return nil, err
		}
		deposits = append(deposits, d)
	}
	return deposits, nil
}
