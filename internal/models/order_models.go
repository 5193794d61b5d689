package models

import "time"

// Order is one placed order. ItemsText is the human-readable "name x qty"
// summary built at confirmation time; OrderDate is derived from CreatedAt
// when the row is written and immutable afterward.
type Order struct {
	ID         int64     `json:"id" db:"id"`
	CustomerID int64     `json:"customer_id" db:"customer_id"`
	ItemsText  string    `json:"items_text" db:"items_text"`
	Status     string    `json:"status" db:"status"`
	Total      float64   `json:"total" db:"total"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	OrderDate  string    `json:"order_date" db:"order_date"` // YYYY-MM-DD

	// Joined customer fields, populated by list/bill queries.
	CustomerName  *string `json:"customer_name,omitempty" db:"-"`
	CustomerPhone *string `json:"customer_phone,omitempty" db:"-"`
	CustomerEmail *string `json:"customer_email,omitempty" db:"-"`
}

// CartLine is a transient staged line during order composition. Name and
// UnitPrice are snapshots taken when the line was staged; stock is
// re-verified authoritatively at confirmation.
type CartLine struct {
	ItemID    int64   `json:"item_id"`
	Name      string  `json:"item_name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
	Available int     `json:"available"`
}

// OrderFilters defines the available filters for querying orders.
type OrderFilters struct {
	Status *string `form:"status"`
	Date   *string `form:"date"` // Expected format YYYY-MM-DD
}

// Bill is the printable bill view for a single order.
type Bill struct {
	OrderID       int64   `json:"order_id"`
	OrderDate     string  `json:"order_date"`
	CustomerName  string  `json:"customer_name"`
	CustomerPhone string  `json:"customer_phone"`
	CustomerEmail *string `json:"customer_email,omitempty"`
	ItemsText     string  `json:"items_text"`
	Status        string  `json:"status"`
	Total         float64 `json:"total"`
}
