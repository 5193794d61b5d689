package models

import "time"

// MenuItem represents one sellable item on the counter's menu.
// Stock is a plain counter on the row; it is decremented by order
// confirmation and increased by restocks, and never goes negative.
type MenuItem struct {
	ID        int64     `json:"id" db:"id"`
	Category  string    `json:"category" db:"category" binding:"required"`
	Name      string    `json:"item_name" db:"item_name" binding:"required"`
	Price     float64   `json:"price" db:"price"`
	Stock     int       `json:"stock" db:"stock"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// MenuFilters defines the available filters for querying the catalog.
type MenuFilters struct {
	Category *string `form:"category"`
}
