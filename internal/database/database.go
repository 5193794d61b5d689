package database

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// schema creates the four persisted tables. Dates are stored alongside the
// full timestamps so reporting can group on plain YYYY-MM-DD strings.
const schema = `
CREATE TABLE IF NOT EXISTS menu (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    category TEXT NOT NULL,
    item_name TEXT NOT NULL,
    price REAL NOT NULL,
    stock INTEGER NOT NULL,
    created_at DATETIME NOT NULL,
    updated_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS customers (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    phone TEXT NOT NULL,
    email TEXT,
    created_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS orders (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    customer_id INTEGER NOT NULL,
    items_text TEXT NOT NULL,
    status TEXT NOT NULL,
    total REAL NOT NULL,
    created_at DATETIME NOT NULL,
    order_date TEXT NOT NULL,
    FOREIGN KEY(customer_id) REFERENCES customers(id)
);

CREATE TABLE IF NOT EXISTS revenue (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    order_id INTEGER NOT NULL,
    amount REAL NOT NULL,
    created_at DATETIME NOT NULL,
    revenue_date TEXT NOT NULL,
    FOREIGN KEY(order_id) REFERENCES orders(id)
);
`

// starterMenu is the fixed catalog seeded into an empty store.
var starterMenu = []struct {
	Category string
	Name     string
	Price    float64
	Stock    int
}{
	{"Chai", "Masala Chai", 30, 50},
	{"Chai", "Ginger Chai", 35, 45},
	{"Chai", "Tulsi Chai", 40, 40},
	{"Chai", "Cold Chai", 50, 35},
	{"Snacks", "Samosa", 20, 60},
	{"Snacks", "Kachori", 25, 50},
	{"Snacks", "Pakora", 30, 55},
	{"Drinks", "Lassi", 60, 30},
	{"Drinks", "Smoothie", 80, 25},
}

// Init opens the local store at dbPath and returns a ready connection.
// A pre-existing store file is renamed to a timestamped backup first, so
// every process start begins from a fresh schema. The empty catalog is then
// seeded with the starter menu.
func Init(dbPath string) (*sql.DB, error) {
	if _, err := os.Stat(dbPath); err == nil {
		backupPath := fmt.Sprintf("%s.backup_%d", dbPath, time.Now().Unix())
		if err := os.Rename(dbPath, backupPath); err != nil {
			return nil, fmt.Errorf("could not back up existing store %s: %w", dbPath, err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("could not open store %s: %w", dbPath, err)
	}
	// A single local operator; one connection also keeps SQLite writes serialized.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("could not connect to store %s: %w", dbPath, err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("could not apply schema: %w", err)
	}

	if err := seedMenu(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// seedMenu inserts the starter catalog once, only when the menu is empty.
func seedMenu(db *sql.DB) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM menu`).Scan(&count); err != nil {
		return fmt.Errorf("could not count menu rows: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("could not start seed transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO menu (category, item_name, price, stock, created_at, updated_at)
	                         VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("could not prepare seed statement: %w", err)
	}
	defer stmt.Close()

	now := time.Now()
	for _, item := range starterMenu {
		if _, err := stmt.Exec(item.Category, item.Name, item.Price, item.Stock, now, now); err != nil {
			return fmt.Errorf("could not seed menu item %q: %w", item.Name, err)
		}
	}
	return tx.Commit()
}
