package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"chai_pos_backend/internal/models"
	"chai_pos_backend/internal/repositories"

	"github.com/shopspring/decimal"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrEmptyCart     = errors.New("cart is empty")
	ErrNoCustomer    = errors.New("no customer selected for order")
)

// Order status constants. The only transition is Pending -> Completed.
const (
	StatusPending   = "Pending"
	StatusCompleted = "Completed"
)

const dateLayout = "2006-01-02"

// --- Data Transfer Objects (DTOs) ---

// CartLineRequest is one requested line of a cart.
type CartLineRequest struct {
	ItemID   int64 `json:"item_id" binding:"required"`
	Quantity int   `json:"quantity" binding:"required,gt=0"`
}

// ConfirmOrderRequest turns a staged cart into a durable order.
type ConfirmOrderRequest struct {
	CustomerID int64             `json:"customer_id" binding:"required"`
	Lines      []CartLineRequest `json:"lines" binding:"required,dive"`
}

// BulkCompleteRequest marks several orders complete in one call.
type BulkCompleteRequest struct {
	OrderIDs []int64 `json:"order_ids" binding:"required"`
}

// BulkCompleteResult reports the outcome for one order of a bulk call.
type BulkCompleteResult struct {
	OrderID int64  `json:"order_id"`
	Status  string `json:"status,omitempty"`
	Error   string `json:"error,omitempty"`
}

// --- OrderService Interface ---
type OrderService interface {
	CheckCartLine(itemID int64, quantity int) (*models.CartLine, error)
	ConfirmOrder(req ConfirmOrderRequest) (*models.Order, error)
	GetOrders(filters models.OrderFilters) ([]models.Order, error)
	GetOrderByID(orderID int64) (*models.Order, error)
	GetBill(orderID int64) (*models.Bill, error)
	MarkComplete(orderID int64) (*models.Order, error)
	MarkCompleteBulk(orderIDs []int64) []BulkCompleteResult
}

type orderService struct {
	orderRepo    repositories.OrderRepository
	menuRepo     repositories.MenuRepository
	customerRepo repositories.CustomerRepository
	revenueRepo  repositories.RevenueRepository
	db           *sql.DB // For managing transactions
}

// NewOrderService creates a new instance of OrderService.
func NewOrderService(
	or repositories.OrderRepository,
	mr repositories.MenuRepository,
	cr repositories.CustomerRepository,
	rr repositories.RevenueRepository,
	db *sql.DB,
) OrderService {
	return &orderService{
		orderRepo:    or,
		menuRepo:     mr,
		customerRepo: cr,
		revenueRepo:  rr,
		db:           db,
	}
}

// lineTotal computes quantity * unit price in decimal, rounded to 2 places.
func lineTotal(price float64, quantity int) decimal.Decimal {
	return decimal.NewFromFloat(price).Mul(decimal.NewFromInt(int64(quantity))).Round(2)
}

// CheckCartLine is the advisory staging check behind "add to cart". It
// snapshots name and unit price for display and rejects quantities beyond
// current stock, but stock can change before confirmation, so ConfirmOrder
// re-validates every line authoritatively.
func (s *orderService) CheckCartLine(itemID int64, quantity int) (*models.CartLine, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", ErrValidation)
	}

	price, stock, name, err := s.menuRepo.GetPriceAndStock(s.db, itemID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: item ID %d", ErrMenuItemNotFound, itemID)
		}
		return nil, fmt.Errorf("failed to fetch item %d for cart check: %w", itemID, err)
	}
	if quantity > stock {
		return nil, fmt.Errorf("%w: %s (requested: %d, available: %d)", ErrInsufficientStock, name, quantity, stock)
	}

	total, _ := lineTotal(price, quantity).Float64()
	return &models.CartLine{
		ItemID:    itemID,
		Name:      name,
		Quantity:  quantity,
		UnitPrice: price,
		LineTotal: total,
		Available: stock,
	}, nil
}

// ConfirmOrder validates the whole cart against current stock inside one
// transaction, decrements stock, and writes the order together with its
// revenue entry. Any failure rolls the entire unit back: no partial
// decrement and no orphaned order or revenue row survives.
func (s *orderService) ConfirmOrder(req ConfirmOrderRequest) (*models.Order, error) {
	if len(req.Lines) == 0 {
		return nil, ErrEmptyCart
	}
	if req.CustomerID == 0 {
		return nil, ErrNoCustomer
	}
	if _, err := s.customerRepo.GetCustomerByID(req.CustomerID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: customer ID %d", ErrNoCustomer, req.CustomerID)
		}
		return nil, fmt.Errorf("failed to fetch customer %d: %w", req.CustomerID, err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to start database transaction: %w", err)
	}
	defer tx.Rollback()

	// First pass: re-read current stock for every line. The staged cart is
	// advisory only; this read inside the transaction is authoritative.
	type checkedLine struct {
		itemID   int64
		name     string
		quantity int
		price    float64
	}
	checked := make([]checkedLine, 0, len(req.Lines))
	for _, line := range req.Lines {
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity for item ID %d must be positive", ErrValidation, line.ItemID)
		}
		price, stock, name, repoErr := s.menuRepo.GetPriceAndStock(tx, line.ItemID)
		if repoErr != nil {
			if errors.Is(repoErr, repositories.ErrNotFound) {
				return nil, fmt.Errorf("%w: item ID %d", ErrMenuItemNotFound, line.ItemID)
			}
			return nil, fmt.Errorf("failed to fetch item %d details: %w", line.ItemID, repoErr)
		}
		if line.Quantity > stock {
			return nil, fmt.Errorf("%w: %s (requested: %d, available: %d)",
				ErrInsufficientStock, name, line.Quantity, stock)
		}
		checked = append(checked, checkedLine{itemID: line.ItemID, name: name, quantity: line.Quantity, price: price})
	}

	// Second pass: all lines passed, apply the decrements. The guarded
	// UPDATE still refuses to go below zero, which catches two cart lines
	// for the same item adding up past the available stock.
	total := decimal.Zero
	summaryParts := make([]string, 0, len(checked))
	for _, line := range checked {
		if _, repoErr := s.menuRepo.AdjustStock(tx, line.itemID, -line.quantity); repoErr != nil {
			if errors.Is(repoErr, repositories.ErrInsufficientStock) {
				return nil, fmt.Errorf("%w: %s", ErrInsufficientStock, line.name)
			}
			return nil, fmt.Errorf("failed to decrement stock for item %s (ID: %d): %w", line.name, line.itemID, repoErr)
		}
		total = total.Add(lineTotal(line.price, line.quantity))
		summaryParts = append(summaryParts, fmt.Sprintf("%s x%d", line.name, line.quantity))
	}

	totalAmount, _ := total.Round(2).Float64()
	now := time.Now()

	order := models.Order{
		CustomerID: req.CustomerID,
		ItemsText:  strings.Join(summaryParts, ", "),
		Status:     StatusPending,
		Total:      totalAmount,
		CreatedAt:  now,
		OrderDate:  now.Format(dateLayout),
	}
	orderID, repoErr := s.orderRepo.CreateOrder(tx, &order)
	if repoErr != nil {
		return nil, fmt.Errorf("failed to create order record: %w", repoErr)
	}

	entry := models.RevenueEntry{
		OrderID:     orderID,
		Amount:      totalAmount,
		CreatedAt:   now,
		RevenueDate: now.Format(dateLayout),
	}
	if _, repoErr := s.revenueRepo.CreateEntry(tx, &entry); repoErr != nil {
		return nil, fmt.Errorf("failed to create revenue entry for order %d: %w", orderID, repoErr)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit order transaction: %w", err)
	}

	return s.GetOrderByID(orderID)
}

func (s *orderService) GetOrders(filters models.OrderFilters) ([]models.Order, error) {
	orders, err := s.orderRepo.GetOrders(filters)
	if err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}
	return orders, nil
}

func (s *orderService) GetOrderByID(orderID int64) (*models.Order, error) {
	order, err := s.orderRepo.GetOrderByID(orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order by ID from repository: %w", err)
	}
	return order, nil
}

// GetBill assembles the printable bill view for one order.
func (s *orderService) GetBill(orderID int64) (*models.Bill, error) {
	order, err := s.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}

	bill := &models.Bill{
		OrderID:   order.ID,
		OrderDate: order.OrderDate,
		ItemsText: order.ItemsText,
		Status:    order.Status,
		Total:     order.Total,
	}
	if order.CustomerName != nil {
		bill.CustomerName = *order.CustomerName
	}
	if order.CustomerPhone != nil {
		bill.CustomerPhone = *order.CustomerPhone
	}
	bill.CustomerEmail = order.CustomerEmail
	return bill, nil
}

// MarkComplete transitions an order Pending -> Completed. Calling it on an
// already-completed order is a no-op, not an error.
func (s *orderService) MarkComplete(orderID int64) (*models.Order, error) {
	order, err := s.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}
	if order.Status == StatusCompleted {
		return order, nil
	}

	if err := s.orderRepo.UpdateOrderStatus(s.db, orderID, StatusCompleted); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to update order status in repository: %w", err)
	}
	return s.GetOrderByID(orderID)
}

// MarkCompleteBulk applies MarkComplete to each id independently. Partial
// success is allowed: one missing order does not roll back the others.
func (s *orderService) MarkCompleteBulk(orderIDs []int64) []BulkCompleteResult {
	results := make([]BulkCompleteResult, 0, len(orderIDs))
	for _, id := range orderIDs {
		order, err := s.MarkComplete(id)
		if err != nil {
			results = append(results, BulkCompleteResult{OrderID: id, Error: err.Error()})
			continue
		}
		results = append(results, BulkCompleteResult{OrderID: id, Status: order.Status})
	}
	return results
}
