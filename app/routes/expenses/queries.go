package expenses

import (
	"database/sql"
	"fmt"
	"pitstop/app/models"
)

// Business expense queries
func GetAllBusinessExpenses(db *sql.DB) ([]*models.BusinessExpense, error) {
	query := `SELECT e.id, e.vendor_id, e.amount, e.description, e.method, e.date,
			  e.created_at, e.updated_at, v.id, v.name
			  FROM business_expenses e
			  LEFT JOIN vendors v ON e.vendor_id = v.id
			  WHERE e.deleted_at IS NULL
			  ORDER BY e.date DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expenses := []*models.BusinessExpense{} // Initialize to empty slice for non-null JSON
	for rows.Next() {
		e := &models.BusinessExpense{}
		var method string
		var vendorID, vendorName sql.NullString
		err := rows.Scan(
			&e.ID, &e.VendorID, &e.Amount, &e.Description, &method, &e.Date,
			&e.CreatedAt, &e.UpdatedAt, &vendorID, &vendorName,
		)
		if err != nil {
			return nil, err
		}
		e.Method = models.ExpenseMethod(method)

		if vendorID.Valid {
			e.Vendor = &models.Vendor{
				ID:   vendorID.String,
				Name: vendorName.String,
			}
		}
		expenses = append(expenses, e)
	}
	return expenses, nil
}

func CreateBusinessExpense(db *sql.DB, e *models.BusinessExpense) error {
	query := `INSERT INTO business_expenses (vendor_id, amount, description, method, date, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	return db.QueryRow(query, e.VendorID, e.Amount, e.Description, string(e.Method), e.Date).
		Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
}

func UpdateBusinessExpense(db *sql.DB, e *models.BusinessExpense) error {
	query := `UPDATE business_expenses
			  SET vendor_id = $1, amount = $2, description = $3, method = $4, date = $5, updated_at = NOW()
			  WHERE id = $6 AND deleted_at IS NULL`

	result, err := db.Exec(query, e.VendorID, e.Amount, e.Description, string(e.Method), e.Date, e.ID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("expense not found")
	}
	return nil
}

func DeleteBusinessExpense(db *sql.DB, id string) error {
	query := `UPDATE business_expenses SET deleted_at = NOW() WHERE id = $1`
	_, err := db.Exec(query, id)
	return err
}

// Vendor queries
func GetAllVendors(db *sql.DB) ([]*models.Vendor, error) {
	query := `SELECT id, name, is_active, created_at, updated_at
			  FROM vendors
			  WHERE deleted_at IS NULL
			  ORDER BY name ASC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	vendors := []*models.Vendor{} // Initialize to empty slice for non-null JSON
	for rows.Next() {
		v := &models.Vendor{}
		err := rows.Scan(&v.ID, &v.Name, &v.IsActive, &v.CreatedAt, &v.UpdatedAt)
		if err != nil {
			return nil, err
		}
		vendors = append(vendors, v)
	}
	return vendors, nil
}

func CreateVendor(db *sql.DB, v *models.Vendor) error {
	query := `INSERT INTO vendors (name, is_active, created_at, updated_at)
			  VALUES ($1, $2, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	return db.QueryRow(query, v.Name, v.IsActive).
		Scan(&v.ID, &v.CreatedAt, &v.UpdatedAt)
}

func UpdateVendor(db *sql.DB, v *models.Vendor) error {
	query := `UPDATE vendors
			  SET name = $1, is_active = $2, updated_at = NOW()
			  WHERE id = $3 AND deleted_at IS NULL`

	result, err := db.Exec(query, v.Name, v.IsActive, v.ID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("vendor not found")
	}
	return nil
}

func DeleteVendor(db *sql.DB, id string) error {
	query := `UPDATE vendors SET deleted_at = NOW() WHERE id = $1`
	_, err := db.Exec(query, id)
	return err
}
