package database

import (
	"path/filepath"
	"testing"

	"github.com/domakasa/domakasa/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAndMigrate(t *testing.T) {
	t.Run("should create the database file and apply all migrations", func(t *testing.T) {
		// given
		cfg := config.Database{Path: filepath.Join(t.TempDir(), "data", "domakasa.db")}

		// when
		db, err := Open(cfg)
		require.NoError(t, err)
		t.Cleanup(func() { db.Close() })
		err = Migrate(db)

		// then
		require.NoError(t, err)
		var id int
		err = db.QueryRow(
			`INSERT INTO users (uid, email, password_hash, display_name) VALUES (?, ?, ?, ?) RETURNING id`,
			"00000000-0000-0000-0000-000000000001", "maria@example.com", "x", "Мария",
		).Scan(&id)
		require.NoError(t, err)
		assert.Equal(t, 1, id)
	})

	t.Run("should be a no-op when the schema is already current", func(t *testing.T) {
		// given
		cfg := config.Database{Path: filepath.Join(t.TempDir(), "domakasa.db")}
		db, err := Open(cfg)
		require.NoError(t, err)
		t.Cleanup(func() { db.Close() })
		require.NoError(t, Migrate(db))

		// when
		err = Migrate(db)

		// then
		require.NoError(t, err)
	})

	t.Run("should enforce foreign keys on opened connections", func(t *testing.T) {
		// given
		cfg := config.Database{Path: filepath.Join(t.TempDir(), "domakasa.db")}
		db, err := Open(cfg)
		require.NoError(t, err)
		t.Cleanup(func() { db.Close() })
		require.NoError(t, Migrate(db))

		// when
		_, err = db.Exec(`INSERT INTO expense_categories (user_id, name) VALUES (?, ?)`, 999, "Ток")

		// then
		assert.Error(t, err)
	})
}
