package models

import "time"

type MenuItem struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Price       float64        `json:"price"`
	Category    string         `json:"category,omitempty"`
	IsAvailable bool           `json:"is_available"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   *time.Time     `json:"deleted_at,omitempty"`
	Modifiers   []*MenuModifier `json:"modifiers,omitempty"`
}

type MenuModifier struct {
	ID         string    `json:"id"`
	MenuItemID string    `json:"menu_item_id"`
	Name       string    `json:"name"`
	Price      float64   `json:"price"`
	CreatedAt  time.Time `json:"created_at"`
}
