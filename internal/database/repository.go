package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// PositionRepository stores the last selected page per deck
type PositionRepository interface {
	LoadPosition(ctx context.Context, deck string) (page int, found bool, err error)
	SavePosition(ctx context.Context, deck string, page, pageCount int) error
	ForgetPosition(ctx context.Context, deck string) error
}

// Repository is the SQLite implementation of PositionRepository
type Repository struct {
	db *sql.DB
}

// NewRepository wraps an initialized database
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Close closes the underlying database
func (r *Repository) Close() error {
	return r.db.Close()
}

// DeckKey identifies a deck by its ordered absolute file paths
func DeckKey(paths []string) string {
	abs := make([]string, len(paths))
	for i, p := range paths {
		if a, err := filepath.Abs(p); err == nil {
			abs[i] = a
		} else {
			abs[i] = p
		}
	}
	return strings.Join(abs, "\x00")
}

// LoadPosition returns the stored page for deck
func (r *Repository) LoadPosition(ctx context.Context, deck string) (int, bool, error) {
	var page int
	err := r.db.QueryRowContext(ctx,
		`SELECT page FROM deck_positions WHERE deck = ?`, deck,
	).Scan(&page)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to load position: %w", err)
	}
	return page, true, nil
}

// SavePosition upserts the page for deck
func (r *Repository) SavePosition(ctx context.Context, deck string, page, pageCount int) error {
	if page < 0 || page >= pageCount {
		return fmt.Errorf("page %d out of range for %d pages", page, pageCount)
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO deck_positions (deck, page, page_count, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(deck) DO UPDATE SET
			page = excluded.page,
			page_count = excluded.page_count,
			updated_at = CURRENT_TIMESTAMP
	`, deck, page, pageCount)
	if err != nil {
		return fmt.Errorf("failed to save position: %w", err)
	}
	return nil
}

// ForgetPosition removes the stored page for deck
func (r *Repository) ForgetPosition(ctx context.Context, deck string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM deck_positions WHERE deck = ?`, deck); err != nil {
		return fmt.Errorf("failed to forget position: %w", err)
	}
	return nil
}
