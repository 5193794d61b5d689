package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"chai_pos_backend/internal/models"
)

// MenuRepository defines the interface for catalog database operations.
type MenuRepository interface {
	CreateItem(executor SQLExecutor, item *models.MenuItem) (int64, error)
	GetItemByID(id int64) (*models.MenuItem, error)
	GetItems(filters models.MenuFilters) ([]models.MenuItem, error)
	GetAvailableItems() ([]models.MenuItem, error)
	UpdateItem(executor SQLExecutor, item *models.MenuItem) error
	GetStock(executor SQLExecutor, itemID int64) (int, error)
	GetPriceAndStock(executor SQLExecutor, itemID int64) (price float64, stock int, name string, err error)
	AdjustStock(executor SQLExecutor, itemID int64, delta int) (int, error) // Returns new stock level
	CountOutOfStock() (int, error)
}

type menuRepository struct {
	db *sql.DB
}

// NewMenuRepository creates a new instance of MenuRepository.
func NewMenuRepository(db *sql.DB) MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) CreateItem(executor SQLExecutor, item *models.MenuItem) (int64, error) {
	query := `INSERT INTO menu (category, item_name, price, stock, created_at, updated_at)
	          VALUES (?, ?, ?, ?, ?, ?)`

	currentTime := time.Now()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = currentTime
	}
	item.UpdatedAt = currentTime

	result, err := executor.Exec(query,
		item.Category, item.Name, item.Price, item.Stock, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("%w: creating menu item: %v", ErrDatabaseError, err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: getting new menu item id: %v", ErrDatabaseError, err)
	}
	item.ID = id
	return id, nil
}

func (r *menuRepository) GetItemByID(id int64) (*models.MenuItem, error) {
	item := &models.MenuItem{}
	query := `SELECT id, category, item_name, price, stock, created_at, updated_at
	          FROM menu WHERE id = ?`
	err := r.db.QueryRow(query, id).Scan(
		&item.ID, &item.Category, &item.Name, &item.Price, &item.Stock,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting menu item by ID %d: %v", ErrDatabaseError, id, err)
	}
	return item, nil
}

func (r *menuRepository) GetItems(filters models.MenuFilters) ([]models.MenuItem, error) {
	items := []models.MenuItem{}
	query := `SELECT id, category, item_name, price, stock, created_at, updated_at
	          FROM menu`
	var args []interface{}
	if filters.Category != nil && *filters.Category != "" {
		query += ` WHERE category = ?`
		args = append(args, *filters.Category)
	}
	query += ` ORDER BY category, item_name`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: querying menu items: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var item models.MenuItem
		if err := rows.Scan(
			&item.ID, &item.Category, &item.Name, &item.Price, &item.Stock,
			&item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: scanning menu item: %v", ErrDatabaseError, err)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating menu rows: %v", ErrDatabaseError, err)
	}
	return items, nil
}

// GetAvailableItems returns the items a customer can currently order,
// ordered by category then name.
func (r *menuRepository) GetAvailableItems() ([]models.MenuItem, error) {
	items := []models.MenuItem{}
	query := `SELECT id, category, item_name, price, stock, created_at, updated_at
	          FROM menu WHERE stock > 0 ORDER BY category, item_name`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying available menu items: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var item models.MenuItem
		if err := rows.Scan(
			&item.ID, &item.Category, &item.Name, &item.Price, &item.Stock,
			&item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: scanning available menu item: %v", ErrDatabaseError, err)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating available menu rows: %v", ErrDatabaseError, err)
	}
	return items, nil
}

func (r *menuRepository) UpdateItem(executor SQLExecutor, item *models.MenuItem) error {
	query := `UPDATE menu SET category = ?, item_name = ?, price = ?, stock = ?, updated_at = ?
	          WHERE id = ?`
	item.UpdatedAt = time.Now()
	result, err := executor.Exec(query,
		item.Category, item.Name, item.Price, item.Stock, item.UpdatedAt, item.ID,
	)
	if err != nil {
		return fmt.Errorf("%w: updating menu item ID %d: %v", ErrDatabaseError, item.ID, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *menuRepository) GetStock(executor SQLExecutor, itemID int64) (int, error) {
	var stock int
	err := executor.QueryRow(`SELECT stock FROM menu WHERE id = ?`, itemID).Scan(&stock)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("%w: getting stock for item ID %d: %v", ErrDatabaseError, itemID, err)
	}
	return stock, nil
}

// GetPriceAndStock reads the confirmation-relevant snapshot of one item.
// Passing a transaction as the executor makes the read part of the
// all-or-nothing confirm unit.
func (r *menuRepository) GetPriceAndStock(executor SQLExecutor, itemID int64) (float64, int, string, error) {
	var price float64
	var stock int
	var name string
	query := `SELECT item_name, price, stock FROM menu WHERE id = ?`
	err := executor.QueryRow(query, itemID).Scan(&name, &price, &stock)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, 0, "", ErrNotFound
		}
		return 0, 0, "", fmt.Errorf("%w: getting price and stock for item ID %d: %v", ErrDatabaseError, itemID, err)
	}
	return price, stock, name, nil
}

// AdjustStock applies delta (positive restock, negative sale) and returns
// the new stock level. The WHERE guard refuses any change that would leave
// stock negative, so concurrent confirmations cannot both take the last unit.
func (r *menuRepository) AdjustStock(executor SQLExecutor, itemID int64, delta int) (int, error) {
	query := `UPDATE menu SET stock = stock + ?, updated_at = ?
	          WHERE id = ? AND stock + ? >= 0`
	result, err := executor.Exec(query, delta, time.Now(), itemID, delta)
	if err != nil {
		return 0, fmt.Errorf("%w: adjusting stock for item ID %d: %v", ErrDatabaseError, itemID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: getting rows affected for stock adjustment of item ID %d: %v", ErrDatabaseError, itemID, err)
	}
	if rowsAffected == 0 {
		// Distinguish a missing item from a refused decrement.
		var exists int
		checkErr := executor.QueryRow(`SELECT COUNT(*) FROM menu WHERE id = ?`, itemID).Scan(&exists)
		if checkErr != nil {
			return 0, fmt.Errorf("%w: checking item ID %d after refused stock adjustment: %v", ErrDatabaseError, itemID, checkErr)
		}
		if exists == 0 {
			return 0, ErrNotFound
		}
		return 0, ErrInsufficientStock
	}

	newStock, err := r.stockAfterUpdate(executor, itemID)
	if err != nil {
		return 0, err
	}
	return newStock, nil
}

func (r *menuRepository) stockAfterUpdate(executor SQLExecutor, itemID int64) (int, error) {
	var stock int
	err := executor.QueryRow(`SELECT stock FROM menu WHERE id = ?`, itemID).Scan(&stock)
	if err != nil {
		return 0, fmt.Errorf("%w: reading stock after update for item ID %d: %v", ErrDatabaseError, itemID, err)
	}
	return stock, nil
}

func (r *menuRepository) CountOutOfStock() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM menu WHERE stock = 0`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%w: counting out-of-stock items: %v", ErrDatabaseError, err)
	}
	return count, nil
}
