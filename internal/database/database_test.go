package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitSeedsStarterMenu(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "pos.db")

	db, err := Init(dbPath)
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM menu`).Scan(&count))
	assert.Equal(t, len(starterMenu), count)

	var name string
	var price float64
	var stock int
	require.NoError(t, db.QueryRow(`SELECT item_name, price, stock FROM menu WHERE id = 1`).Scan(&name, &price, &stock))
	assert.Equal(t, "Masala Chai", name)
	assert.Equal(t, 30.0, price)
	assert.Equal(t, 50, stock)
}

func TestInitCreatesEmptyAuxiliaryTables(t *testing.T) {
	db, err := Init(filepath.Join(t.TempDir(), "pos.db"))
	require.NoError(t, err)
	defer db.Close()

	for _, table := range []string{"customers", "orders", "revenue"} {
		var count int
		require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM `+table).Scan(&count))
		assert.Zero(t, count, "table %s should start empty", table)
	}
}

func TestInitBacksUpExistingStore(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "pos.db")

	first, err := Init(dbPath)
	require.NoError(t, err)
	_, err = first.Exec(`UPDATE menu SET stock = 0 WHERE id = 1`)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := Init(dbPath)
	require.NoError(t, err)
	defer second.Close()

	// The mutation must live only in the backup file; the new store is
	// reseeded from scratch.
	var stock int
	require.NoError(t, second.QueryRow(`SELECT stock FROM menu WHERE id = 1`).Scan(&stock))
	assert.Equal(t, 50, stock)

	backups, err := filepath.Glob(dbPath + ".backup_*")
	require.NoError(t, err)
	assert.Len(t, backups, 1)
}
