package services

import (
	"database/sql"
	"path/filepath"
	"testing"

	"chai_pos_backend/internal/database"
	"chai_pos_backend/internal/models"
	"chai_pos_backend/internal/repositories"

	"github.com/stretchr/testify/require"
)

// Seeded catalog IDs, in insertion order of the starter menu.
const (
	masalaChaiID int64 = 1
	samosaID     int64 = 5
	kachoriID    int64 = 6
	lassiID      int64 = 8
	smoothieID   int64 = 9
)

type testEnv struct {
	db        *sql.DB
	menu      MenuService
	customers CustomerService
	orders    OrderService
	revenue   RevenueService
}

// newTestEnv builds the full service stack over a freshly seeded store in a
// temporary directory.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := database.Init(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	menuRepo := repositories.NewMenuRepository(db)
	customerRepo := repositories.NewCustomerRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	revenueRepo := repositories.NewRevenueRepository(db)

	return &testEnv{
		db:        db,
		menu:      NewMenuService(menuRepo, db),
		customers: NewCustomerService(customerRepo, db),
		orders:    NewOrderService(orderRepo, menuRepo, customerRepo, revenueRepo, db),
		revenue:   NewRevenueService(revenueRepo, orderRepo, menuRepo, db),
	}
}

func createTestCustomer(t *testing.T, env *testEnv) *models.Customer {
	t.Helper()
	customer, err := env.customers.CreateCustomer(CreateCustomerRequest{
		Name:  "Priya Sharma",
		Phone: "9876543210",
	})
	require.NoError(t, err)
	return customer
}

func countRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM `+table).Scan(&count))
	return count
}

func stockOf(t *testing.T, env *testEnv, itemID int64) int {
	t.Helper()
	stock, err := env.menu.GetStock(itemID)
	require.NoError(t, err)
	return stock
}
