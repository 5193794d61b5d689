package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"chai_pos_backend/internal/models"
	"chai_pos_backend/internal/repositories"

	"github.com/shopspring/decimal"
)

// Custom service errors shared across the package.
var (
	ErrValidation        = errors.New("validation error")
	ErrMenuItemNotFound  = errors.New("menu item not found")
	ErrInsufficientStock = errors.New("insufficient stock for item")
)

// --- Menu DTOs ---

// CreateMenuItemRequest is used for adding an item to the catalog.
type CreateMenuItemRequest struct {
	Category string  `json:"category" binding:"required"`
	Name     string  `json:"item_name" binding:"required"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
}

// UpdateMenuItemRequest replaces all editable fields of an item.
type UpdateMenuItemRequest struct {
	Category string  `json:"category" binding:"required"`
	Name     string  `json:"item_name" binding:"required"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
}

// AdjustStockRequest applies a stock delta: positive restock, negative sale.
type AdjustStockRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// --- MenuService Interface ---
type MenuService interface {
	CreateItem(req CreateMenuItemRequest) (*models.MenuItem, error)
	UpdateItem(itemID int64, req UpdateMenuItemRequest) (*models.MenuItem, error)
	GetItemByID(itemID int64) (*models.MenuItem, error)
	GetItems(filters models.MenuFilters) ([]models.MenuItem, error)
	GetAvailableItems() ([]models.MenuItem, error)
	GetStock(itemID int64) (int, error)
	AdjustStock(itemID int64, delta int) (*models.MenuItem, error)
}

type menuService struct {
	menuRepo repositories.MenuRepository
	db       *sql.DB
}

// NewMenuService creates a new instance of MenuService.
func NewMenuService(repo repositories.MenuRepository, db *sql.DB) MenuService {
	return &menuService{menuRepo: repo, db: db}
}

func validateMenuItemData(category, name string, price float64, stock int) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: item name cannot be empty", ErrValidation)
	}
	if strings.TrimSpace(category) == "" {
		return fmt.Errorf("%w: category cannot be empty", ErrValidation)
	}
	if price < 0 {
		return fmt.Errorf("%w: price cannot be negative", ErrValidation)
	}
	if stock < 0 {
		return fmt.Errorf("%w: stock cannot be negative", ErrValidation)
	}
	return nil
}

// roundPrice normalizes a price to 2 decimal places before it is persisted,
// so stored values are always exact to the paisa.
func roundPrice(price float64) float64 {
	rounded, _ := decimal.NewFromFloat(price).Round(2).Float64()
	return rounded
}

func (s *menuService) CreateItem(req CreateMenuItemRequest) (*models.MenuItem, error) {
	if err := validateMenuItemData(req.Category, req.Name, req.Price, req.Stock); err != nil {
		return nil, err
	}

	item := &models.MenuItem{
		Category: strings.TrimSpace(req.Category),
		Name:     strings.TrimSpace(req.Name),
		Price:    roundPrice(req.Price),
		Stock:    req.Stock,
	}

	id, err := s.menuRepo.CreateItem(s.db, item)
	if err != nil {
		return nil, fmt.Errorf("failed to create menu item in repository: %w", err)
	}
	return s.menuRepo.GetItemByID(id)
}

func (s *menuService) UpdateItem(itemID int64, req UpdateMenuItemRequest) (*models.MenuItem, error) {
	if err := validateMenuItemData(req.Category, req.Name, req.Price, req.Stock); err != nil {
		return nil, err
	}

	item, err := s.menuRepo.GetItemByID(itemID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, fmt.Errorf("failed to find menu item for update: %w", err)
	}

	item.Category = strings.TrimSpace(req.Category)
	item.Name = strings.TrimSpace(req.Name)
	item.Price = roundPrice(req.Price)
	item.Stock = req.Stock

	if err := s.menuRepo.UpdateItem(s.db, item); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, fmt.Errorf("failed to update menu item in repository: %w", err)
	}
	return s.menuRepo.GetItemByID(itemID)
}

func (s *menuService) GetItemByID(itemID int64) (*models.MenuItem, error) {
	item, err := s.menuRepo.GetItemByID(itemID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, fmt.Errorf("failed to get menu item: %w", err)
	}
	return item, nil
}

func (s *menuService) GetItems(filters models.MenuFilters) ([]models.MenuItem, error) {
	items, err := s.menuRepo.GetItems(filters)
	if err != nil {
		return nil, fmt.Errorf("failed to get menu items: %w", err)
	}
	return items, nil
}

func (s *menuService) GetAvailableItems() ([]models.MenuItem, error) {
	items, err := s.menuRepo.GetAvailableItems()
	if err != nil {
		return nil, fmt.Errorf("failed to get available menu items: %w", err)
	}
	return items, nil
}

func (s *menuService) GetStock(itemID int64) (int, error) {
	stock, err := s.menuRepo.GetStock(s.db, itemID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return 0, ErrMenuItemNotFound
		}
		return 0, fmt.Errorf("failed to get stock: %w", err)
	}
	return stock, nil
}

func (s *menuService) AdjustStock(itemID int64, delta int) (*models.MenuItem, error) {
	if delta == 0 {
		return nil, fmt.Errorf("%w: stock delta cannot be zero", ErrValidation)
	}

	_, err := s.menuRepo.AdjustStock(s.db, itemID, delta)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMenuItemNotFound
		}
		if errors.Is(err, repositories.ErrInsufficientStock) {
			return nil, fmt.Errorf("%w: adjustment of %d would drive stock below zero", ErrInsufficientStock, delta)
		}
		return nil, fmt.Errorf("failed to adjust stock: %w", err)
	}
	return s.menuRepo.GetItemByID(itemID)
}
