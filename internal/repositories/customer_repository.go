package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"chai_pos_backend/internal/models"
)

// CustomerRepository defines the interface for customer database operations.
// There is no update or delete: a customer row is written once per order
// flow and only read afterwards.
type CustomerRepository interface {
	CreateCustomer(executor SQLExecutor, customer *models.Customer) (int64, error)
	GetCustomerByID(id int64) (*models.Customer, error)
}

type customerRepository struct {
	db *sql.DB
}

// NewCustomerRepository creates a new instance of CustomerRepository.
func NewCustomerRepository(db *sql.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) CreateCustomer(executor SQLExecutor, customer *models.Customer) (int64, error) {
	query := `INSERT INTO customers (name, phone, email, created_at)
	          VALUES (?, ?, ?, ?)`

	if customer.CreatedAt.IsZero() {
		customer.CreatedAt = time.Now()
	}

	result, err := executor.Exec(query, customer.Name, customer.Phone, customer.Email, customer.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("%w: creating customer: %v", ErrDatabaseError, err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: getting new customer id: %v", ErrDatabaseError, err)
	}
	customer.ID = id
	return id, nil
}

func (r *customerRepository) GetCustomerByID(id int64) (*models.Customer, error) {
	customer := &models.Customer{}
	query := `SELECT id, name, phone, email, created_at FROM customers WHERE id = ?`
	err := r.db.QueryRow(query, id).Scan(
		&customer.ID, &customer.Name, &customer.Phone, &customer.Email, &customer.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting customer by ID %d: %v", ErrDatabaseError, id, err)
	}
	return customer, nil
}
