package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"chai_pos_backend/internal/models"
)

// OrderRepository defines the interface for order database operations.
type OrderRepository interface {
	CreateOrder(executor SQLExecutor, order *models.Order) (int64, error)
	GetOrderByID(orderID int64) (*models.Order, error)
	GetOrders(filters models.OrderFilters) ([]models.Order, error)
	UpdateOrderStatus(executor SQLExecutor, orderID int64, newStatus string) error
	CountByStatus(status string) (int, error)
}

type orderRepository struct {
	db *sql.DB
}

// NewOrderRepository creates a new instance of OrderRepository.
func NewOrderRepository(db *sql.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) CreateOrder(executor SQLExecutor, order *models.Order) (int64, error) {
	query := `INSERT INTO orders (customer_id, items_text, status, total, created_at, order_date)
	          VALUES (?, ?, ?, ?, ?, ?)`

	result, err := executor.Exec(query,
		order.CustomerID, order.ItemsText, order.Status, order.Total,
		order.CreatedAt, order.OrderDate,
	)
	if err != nil {
		return 0, fmt.Errorf("%w: creating order: %v", ErrDatabaseError, err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: getting new order id: %v", ErrDatabaseError, err)
	}
	order.ID = id
	return id, nil
}

func (r *orderRepository) GetOrderByID(orderID int64) (*models.Order, error) {
	order := &models.Order{}
	var customerName, customerPhone, customerEmail sql.NullString

	query := `SELECT o.id, o.customer_id, o.items_text, o.status, o.total, o.created_at, o.order_date,
	                 c.name, c.phone, c.email
	          FROM orders o
	          LEFT JOIN customers c ON o.customer_id = c.id
	          WHERE o.id = ?`
	err := r.db.QueryRow(query, orderID).Scan(
		&order.ID, &order.CustomerID, &order.ItemsText, &order.Status, &order.Total,
		&order.CreatedAt, &order.OrderDate,
		&customerName, &customerPhone, &customerEmail,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting order by ID %d: %v", ErrDatabaseError, orderID, err)
	}

	if customerName.Valid {
		name := customerName.String
		order.CustomerName = &name
	}
	if customerPhone.Valid {
		phone := customerPhone.String
		order.CustomerPhone = &phone
	}
	if customerEmail.Valid {
		email := customerEmail.String
		order.CustomerEmail = &email
	}
	return order, nil
}

func (r *orderRepository) GetOrders(filters models.OrderFilters) ([]models.Order, error) {
	orders := []models.Order{}

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
        SELECT o.id, o.customer_id, o.items_text, o.status, o.total, o.created_at, o.order_date,
               c.name, c.phone, c.email
        FROM orders o
        LEFT JOIN customers c ON o.customer_id = c.id
    `)

	var conditions []string
	var args []interface{}

	if filters.Status != nil && *filters.Status != "" {
		conditions = append(conditions, "o.status = ?")
		args = append(args, *filters.Status)
	}
	if filters.Date != nil && *filters.Date != "" {
		conditions = append(conditions, "o.order_date = ?")
		args = append(args, *filters.Date)
	}

	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}
	queryBuilder.WriteString(" ORDER BY o.id DESC")

	rows, err := r.db.Query(queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("%w: querying orders: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var o models.Order
		var customerName, customerPhone, customerEmail sql.NullString

		if err := rows.Scan(
			&o.ID, &o.CustomerID, &o.ItemsText, &o.Status, &o.Total,
			&o.CreatedAt, &o.OrderDate,
			&customerName, &customerPhone, &customerEmail,
		); err != nil {
			return nil, fmt.Errorf("%w: scanning order: %v", ErrDatabaseError, err)
		}

		if customerName.Valid {
			name := customerName.String
			o.CustomerName = &name
		}
		if customerPhone.Valid {
			phone := customerPhone.String
			o.CustomerPhone = &phone
		}
		if customerEmail.Valid {
			email := customerEmail.String
			o.CustomerEmail = &email
		}
		orders = append(orders, o)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating order rows: %v", ErrDatabaseError, err)
	}
	return orders, nil
}

func (r *orderRepository) UpdateOrderStatus(executor SQLExecutor, orderID int64, newStatus string) error {
	query := `UPDATE orders SET status = ? WHERE id = ?`
	result, err := executor.Exec(query, newStatus, orderID)
	if err != nil {
		return fmt.Errorf("%w: updating order status for ID %d: %v", ErrDatabaseError, orderID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for order status update ID %d: %v", ErrDatabaseError, orderID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *orderRepository) CountByStatus(status string) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM orders WHERE status = ?`, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%w: counting orders with status %s: %v", ErrDatabaseError, status, err)
	}
	return count, nil
}
