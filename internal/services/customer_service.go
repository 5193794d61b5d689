package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"chai_pos_backend/internal/models"
	"chai_pos_backend/internal/repositories"
	"chai_pos_backend/pkg/utils"
)

var (
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrCustomerValidation = errors.New("customer data validation error")
)

// CreateCustomerRequest captures the fields collected before an order starts.
type CreateCustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
	Email string `json:"email"`
}

// --- CustomerService Interface ---
type CustomerService interface {
	CreateCustomer(req CreateCustomerRequest) (*models.Customer, error)
	GetCustomerByID(customerID int64) (*models.Customer, error)
}

type customerService struct {
	customerRepo repositories.CustomerRepository
	db           *sql.DB
}

// NewCustomerService creates a new instance of CustomerService.
func NewCustomerService(repo repositories.CustomerRepository, db *sql.DB) CustomerService {
	return &customerService{customerRepo: repo, db: db}
}

// CreateCustomer writes a fresh customer row. Repeat visitors are not
// deduplicated: each order flow captures its own record.
func (s *customerService) CreateCustomer(req CreateCustomerRequest) (*models.Customer, error) {
	if utils.IsEmpty(req.Name) {
		return nil, fmt.Errorf("%w: name cannot be empty", ErrCustomerValidation)
	}
	if utils.IsEmpty(req.Phone) {
		return nil, fmt.Errorf("%w: phone cannot be empty", ErrCustomerValidation)
	}

	email := strings.TrimSpace(req.Email)
	if email != "" && !utils.IsValidEmail(email) {
		return nil, fmt.Errorf("%w: email format is invalid", ErrCustomerValidation)
	}

	customer := &models.Customer{
		Name:  strings.TrimSpace(req.Name),
		Phone: strings.TrimSpace(req.Phone),
		Email: utils.NewNullString(email),
	}

	id, err := s.customerRepo.CreateCustomer(s.db, customer)
	if err != nil {
		return nil, fmt.Errorf("failed to create customer in repository: %w", err)
	}
	return s.customerRepo.GetCustomerByID(id)
}

func (s *customerService) GetCustomerByID(customerID int64) (*models.Customer, error) {
	customer, err := s.customerRepo.GetCustomerByID(customerID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer by ID: %w", err)
	}
	return customer, nil
}
