package database

import (
	"context"
	"path/filepath"
	"testing"
)

// setupTestRepo creates a file-based database in a temp dir and runs migrations
func setupTestRepo(t *testing.T) (*Repository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "positions.db")
	db, err := InitDB(context.Background(), path)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	repo := NewRepository(db)
	t.Cleanup(func() {
		_ = repo.Close()
	})
	return repo, path
}
