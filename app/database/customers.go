package database

import (
	"database/sql"
	"pitstop/app/models"
)

// FindOrCreateCustomer looks a customer up by phone and creates the
// record on first order.
func FindOrCreateCustomer(db *sql.DB, name, phone string) (*models.Customer, error) {
	c := &models.Customer{}
	err := db.QueryRow(`SELECT id, name, phone, created_at FROM customers WHERE phone = $1`, phone).
		Scan(&c.ID, &c.Name, &c.Phone, &c.CreatedAt)
	if err == nil {
		return c, nil
	}
	if err != sql.ErrNoRows {
		return nil, err
	}

	c.Name = name
	c.Phone = phone
	err = db.QueryRow(`INSERT INTO customers (name, phone, created_at) VALUES ($1, $2, NOW())
	                   RETURNING id, created_at`, name, phone).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}
