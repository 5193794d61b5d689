package models

import "time"

// Customer holds the identity captured at the start of each order flow.
// Records are intentionally not deduplicated: a repeat visitor gets a
// fresh row per order.
type Customer struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name" binding:"required"`
	Phone     string    `json:"phone" db:"phone" binding:"required"`
	Email     *string   `json:"email,omitempty" db:"email"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
