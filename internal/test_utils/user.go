package test_utils

import (
	"database/sql"
	"testing"
)

// InsertTestUser inserts a user row for repository tests and returns its id.
func InsertTestUser(t *testing.T, db *sql.DB) int {
	t.Helper()

	var id int
	err := db.QueryRow(
		`INSERT INTO users (uid, email, password_hash, display_name) VALUES (?, ?, ?, ?) RETURNING id`,
		"00000000-0000-0000-0000-000000000123", "test@domakasa.local", "x", "Test User",
	).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to insert test user: %v", err)
	}
	return id
}
