package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/pageview/internal/config"
	"github.com/thenoetrevino/pageview/internal/config/colors"
	"github.com/thenoetrevino/pageview/internal/database"
	"github.com/thenoetrevino/pageview/internal/pageview"
)

func parse(t *testing.T, args ...string) (*config.Config, error) {
	t.Helper()
	cmd := NewRootCmd()
	require.NoError(t, cmd.ParseFlags(args))
	cfg := config.Default()
	return cfg, applyFlags(cmd, cfg)
}

func TestApplyFlagsOverridesConfig(t *testing.T) {
	cfg, err := parse(t, "--vertical", "--threshold", "0.3", "--edge", "0.2",
		"--priority", "standard", "--no-drag", "--theme", "wave")
	require.NoError(t, err)

	s := cfg.Settings()
	assert.Equal(t, pageview.Vertical, s.Axis)
	assert.InDelta(t, 0.3, s.SwitchThreshold, 1e-9)
	assert.InDelta(t, 0.2, s.EdgeSwipeThreshold, 1e-9)
	assert.Equal(t, pageview.PriorityStandard, s.GesturePriority)
	assert.False(t, s.DragEnabled)
	assert.Equal(t, *colors.Wave(), cfg.ColorScheme)
}

func TestApplyFlagsLeavesUnsetValues(t *testing.T) {
	cfg, err := parse(t)
	require.NoError(t, err)

	s := cfg.Settings()
	assert.Equal(t, pageview.Horizontal, s.Axis)
	assert.True(t, s.DragEnabled)
	assert.Equal(t, pageview.PriorityHigh, s.GesturePriority)
}

func TestApplyFlagsRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"edge too large", []string{"--edge", "1.5"}},
		{"edge negative", []string{"--edge=-0.1"}},
		{"unknown priority", []string{"--priority", "urgent"}},
		{"unknown theme", []string{"--theme", "neon"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestLoadDeck(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.md")
	b := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(a, []byte("# A"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("B"), 0o644))

	deckPanes, deck, err := loadDeck([]string{a, b}, "notty")
	require.NoError(t, err)
	assert.Len(t, deckPanes, 2)
	assert.Equal(t, database.DeckKey([]string{a, b}), deck)

	demo, deck, err := loadDeck(nil, "notty")
	require.NoError(t, err)
	assert.Len(t, demo, 3)
	assert.Equal(t, demoDeck, deck)

	_, _, err = loadDeck([]string{filepath.Join(dir, "missing.md")}, "notty")
	assert.Error(t, err)
}

func TestRestorePage(t *testing.T) {
	ctx := context.Background()
	db, err := database.InitDB(ctx, filepath.Join(t.TempDir(), "positions.db"))
	require.NoError(t, err)
	repo := database.NewRepository(db)
	t.Cleanup(func() { _ = repo.Close() })

	assert.Equal(t, 0, restorePage(ctx, repo, "deck", 3))

	require.NoError(t, repo.SavePosition(ctx, "deck", 2, 3))
	assert.Equal(t, 2, restorePage(ctx, repo, "deck", 3))
}
