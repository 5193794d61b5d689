package models

import "time"

// RevenueEntry is the ledger row created exactly once per confirmed order,
// in the same transaction as the order itself. Amount always equals the
// order's total; entries are never mutated or deleted.
type RevenueEntry struct {
	ID          int64     `json:"id" db:"id"`
	OrderID     int64     `json:"order_id" db:"order_id"`
	Amount      float64   `json:"amount" db:"amount"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	RevenueDate string    `json:"revenue_date" db:"revenue_date"` // YYYY-MM-DD
}

// DailyRevenue is one row of a report's per-day breakdown.
type DailyRevenue struct {
	Date       string  `json:"date"`
	OrderCount int     `json:"order_count"`
	Revenue    float64 `json:"revenue"`
}

// RevenueReport aggregates revenue entries over a named period bucket.
// AveragePerOrder is nil when the period has no orders.
type RevenueReport struct {
	Period          string         `json:"period"`
	PeriodName      string         `json:"period_name"`
	StartDate       *string        `json:"start_date,omitempty"`
	EndDate         *string        `json:"end_date,omitempty"`
	TotalRevenue    float64        `json:"total_revenue"`
	TotalOrders     int            `json:"total_orders"`
	AveragePerOrder *float64       `json:"average_per_order,omitempty"`
	DailyBreakdown  []DailyRevenue `json:"daily_breakdown"`
}

// DashboardSummary carries the sidebar numbers the presentation shell shows.
type DashboardSummary struct {
	PendingOrdersCount int     `json:"pending_orders_count"`
	TodayRevenue       float64 `json:"today_revenue"`
	TodayOrdersCount   int     `json:"today_orders_count"`
	OutOfStockCount    int     `json:"out_of_stock_count"`
}
