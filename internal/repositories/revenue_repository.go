package repositories

import (
	"database/sql"
	"fmt"

	"chai_pos_backend/internal/models"
)

// RevenueRepository defines the interface for the revenue ledger.
// Entries are insert-only; reporting reads them grouped by date.
type RevenueRepository interface {
	CreateEntry(executor SQLExecutor, entry *models.RevenueEntry) (int64, error)
	GetDailyTotals(startDate, endDate *string) ([]models.DailyRevenue, error)
}

type revenueRepository struct {
	db *sql.DB
}

// NewRevenueRepository creates a new instance of RevenueRepository.
func NewRevenueRepository(db *sql.DB) RevenueRepository {
	return &revenueRepository{db: db}
}

func (r *revenueRepository) CreateEntry(executor SQLExecutor, entry *models.RevenueEntry) (int64, error) {
	query := `INSERT INTO revenue (order_id, amount, created_at, revenue_date)
	          VALUES (?, ?, ?, ?)`

	result, err := executor.Exec(query, entry.OrderID, entry.Amount, entry.CreatedAt, entry.RevenueDate)
	if err != nil {
		return 0, fmt.Errorf("%w: creating revenue entry: %v", ErrDatabaseError, err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: getting new revenue entry id: %v", ErrDatabaseError, err)
	}
	entry.ID = id
	return id, nil
}

// GetDailyTotals aggregates revenue entries by date, newest date first.
// Both bounds are inclusive; nil bounds mean an unbounded ("all time") query.
func (r *revenueRepository) GetDailyTotals(startDate, endDate *string) ([]models.DailyRevenue, error) {
	totals := []models.DailyRevenue{}

	query := `SELECT revenue_date, COUNT(*), SUM(amount) FROM revenue`
	var args []interface{}
	if startDate != nil && endDate != nil {
		query += ` WHERE revenue_date BETWEEN ? AND ?`
		args = append(args, *startDate, *endDate)
	}
	query += ` GROUP BY revenue_date ORDER BY revenue_date DESC`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: querying daily revenue totals: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var day models.DailyRevenue
		if err := rows.Scan(&day.Date, &day.OrderCount, &day.Revenue); err != nil {
			return nil, fmt.Errorf("%w: scanning daily revenue total: %v", ErrDatabaseError, err)
		}
		totals = append(totals, day)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating daily revenue rows: %v", ErrDatabaseError, err)
	}
	return totals, nil
}
