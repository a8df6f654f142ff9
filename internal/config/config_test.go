package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/pageview/internal/pageview"
)

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	if defaults.Quit != "q" {
		t.Errorf("Default Quit key = %s, want q", defaults.Quit)
	}
	if defaults.NextPage != "l" {
		t.Errorf("Default NextPage key = %s, want l", defaults.NextPage)
	}
	if defaults.PrevPage != "h" {
		t.Errorf("Default PrevPage key = %s, want h", defaults.PrevPage)
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("PAGEVIEW_THEME_FILE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() without config file failed: %v", err)
	}

	if cfg.KeyMappings.Quit != "q" {
		t.Errorf("Loaded config Quit key = %s, want q (default)", cfg.KeyMappings.Quit)
	}
	if cfg.Pager.Axis != "horizontal" {
		t.Errorf("Loaded config axis = %s, want horizontal (default)", cfg.Pager.Axis)
	}
}

func TestLoadConfigWithFile(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv("PAGEVIEW_THEME_FILE", "")

	configDir := filepath.Join(tempDir, "pageview")
	require.NoError(t, os.MkdirAll(configDir, 0o755))

	configContent := `key_mappings:
  quit: "x"
  next_page: "n"
pager:
  axis: vertical
  switch_threshold: 1.3
  drag_enabled: false
  indicator_align: top-right
`
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(configContent), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "x", cfg.KeyMappings.Quit)
	assert.Equal(t, "n", cfg.KeyMappings.NextPage)
	// Unspecified values should use defaults
	assert.Equal(t, "h", cfg.KeyMappings.PrevPage)
	assert.Equal(t, "high", cfg.Pager.GesturePriority)

	s := cfg.Settings()
	assert.Equal(t, pageview.Vertical, s.Axis)
	assert.InDelta(t, 0.3, s.SwitchThreshold, 1e-9)
	assert.False(t, s.DragEnabled)
	assert.Equal(t, pageview.DefaultEdgeSwipeThreshold, s.EdgeSwipeThreshold)
	assert.Equal(t, 1.0, float64(s.IndicatorAlignment.Horizontal))
	assert.Equal(t, 0.0, float64(s.IndicatorAlignment.Vertical))
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pager: [unclosed"), 0o644))

	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestSaveConfig(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv("PAGEVIEW_THEME_FILE", "")

	cfg := &Config{
		KeyMappings: KeyMappings{
			Quit:     "x",
			NextPage: "n",
		},
	}
	cfg.applyDefaults()

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	configPath := filepath.Join(tempDir, "pageview", "config.yaml")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatalf("Config file not created at %s", configPath)
	}

	cfg2, err := Load()
	if err != nil {
		t.Fatalf("Load() after Save() failed: %v", err)
	}
	if cfg2.KeyMappings.Quit != "x" {
		t.Errorf("Reloaded Quit key = %s, want x", cfg2.KeyMappings.Quit)
	}
	if cfg2.KeyMappings.NextPage != "n" {
		t.Errorf("Reloaded NextPage key = %s, want n", cfg2.KeyMappings.NextPage)
	}
}

func TestSettingsDefaults(t *testing.T) {
	s := Default().Settings()

	assert.Equal(t, pageview.Horizontal, s.Axis)
	assert.Equal(t, pageview.PriorityHigh, s.GesturePriority)
	assert.True(t, s.DragEnabled)
	assert.Equal(t, pageview.DefaultSettleDuration, s.SettleDuration)
	assert.Equal(t, DefaultColorScheme().DotActive, s.Theme.DotActive)
}

func TestParseAlign(t *testing.T) {
	tests := []struct {
		in     string
		wantOK bool
		h, v   float64
	}{
		{"bottom-center", true, 0.5, 1},
		{"center-left", true, 0, 0.5},
		{"center", true, 0.5, 0.5},
		{"middle", false, 0, 0},
		{"top-middle", false, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parseAlign(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.h, float64(got.Horizontal))
				assert.Equal(t, tt.v, float64(got.Vertical))
			}
		})
	}
}
