package database

import (
	"database/sql"
	"fmt"
	"pitstop/app/models"
)

func GetAllMenuItems(db *sql.DB, includeUnavailable bool) ([]*models.MenuItem, error) {
	query := `SELECT id, name, description, price, category, is_available, created_at, updated_at
			  FROM menu_items
			  WHERE deleted_at IS NULL`
	if !includeUnavailable {
		query += ` AND is_available = true`
	}
	query += ` ORDER BY category, name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []*models.MenuItem{}
	for rows.Next() {
		item := &models.MenuItem{}
		err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.Price, &item.Category, &item.IsAvailable, &item.CreatedAt, &item.UpdatedAt)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	for _, item := range items {
		mods, err := GetModifiersForItem(db, item.ID)
		if err != nil {
			return nil, err
		}
		item.Modifiers = mods
	}
	return items, nil
}

func GetMenuItemByID(db *sql.DB, id string) (*models.MenuItem, error) {
	item := &models.MenuItem{}
	query := `SELECT id, name, description, price, category, is_available, created_at, updated_at
			  FROM menu_items WHERE id = $1 AND deleted_at IS NULL`

	err := db.QueryRow(query, id).Scan(
		&item.ID, &item.Name, &item.Description, &item.Price, &item.Category, &item.IsAvailable, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	mods, err := GetModifiersForItem(db, item.ID)
	if err != nil {
		return nil, err
	}
	item.Modifiers = mods
	return item, nil
}

func GetModifiersForItem(db *sql.DB, menuItemID string) ([]*models.MenuModifier, error) {
	rows, err := db.Query(`SELECT id, menu_item_id, name, price, created_at
	                       FROM menu_modifiers WHERE menu_item_id = $1 ORDER BY name`, menuItemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	mods := []*models.MenuModifier{}
	for rows.Next() {
		m := &models.MenuModifier{}
		if err := rows.Scan(&m.ID, &m.MenuItemID, &m.Name, &m.Price, &m.CreatedAt); err != nil {
			return nil, err
		}
		mods = append(mods, m)
	}
	return mods, nil
}

func GetModifierByID(db *sql.DB, id string) (*models.MenuModifier, error) {
	m := &models.MenuModifier{}
	err := db.QueryRow(`SELECT id, menu_item_id, name, price, created_at
	                    FROM menu_modifiers WHERE id = $1`, id).
		Scan(&m.ID, &m.MenuItemID, &m.Name, &m.Price, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func CreateMenuItem(db *sql.DB, item *models.MenuItem) error {
	query := `INSERT INTO menu_items (name, description, price, category, is_available, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	return db.QueryRow(query, item.Name, item.Description, item.Price, item.Category, item.IsAvailable).
		Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
}

func UpdateMenuItem(db *sql.DB, item *models.MenuItem) error {
	query := `UPDATE menu_items
			  SET name = $1, description = $2, price = $3, category = $4, is_available = $5, updated_at = NOW()
			  WHERE id = $6 AND deleted_at IS NULL`

	result, err := db.Exec(query, item.Name, item.Description, item.Price, item.Category, item.IsAvailable, item.ID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("menu item not found")
	}
	return nil
}

func DeleteMenuItem(db *sql.DB, id string) error {
	query := `UPDATE menu_items SET deleted_at = NOW() WHERE id = $1`
	_, err := db.Exec(query, id)
	return err
}

func CreateMenuModifier(db *sql.DB, m *models.MenuModifier) error {
	query := `INSERT INTO menu_modifiers (menu_item_id, name, price, created_at)
			  VALUES ($1, $2, $3, NOW())
			  RETURNING id, created_at`

	return db.QueryRow(query, m.MenuItemID, m.Name, m.Price).Scan(&m.ID, &m.CreatedAt)
}

func DeleteMenuModifier(db *sql.DB, id string) error {
	_, err := db.Exec(`DELETE FROM menu_modifiers WHERE id = $1`, id)
	return err
}
