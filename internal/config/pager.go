package config

import (
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/pageview/internal/pageview"
)

// PagerConfig is the pager section of the config file.
// Pointer fields distinguish "unset" from an explicit zero.
type PagerConfig struct {
	Axis               string   `yaml:"axis"`
	SwitchThreshold    *float64 `yaml:"switch_threshold"`
	EdgeSwipeThreshold *float64 `yaml:"edge_swipe_threshold"`
	GesturePriority    string   `yaml:"gesture_priority"`
	DragEnabled        *bool    `yaml:"drag_enabled"`
	MinimumDistance    *int     `yaml:"minimum_distance"`
	SettleDuration     string   `yaml:"settle_duration"`

	// Indicator placement and look
	IndicatorAlign  string `yaml:"indicator_align"`
	IndicatorOffset *int   `yaml:"indicator_offset"`
	IndicatorStyle  string `yaml:"indicator_style"`

	// Glamour style for markdown panes
	MarkdownStyle string `yaml:"markdown_style"`
}

// DefaultPagerConfig returns the pager defaults
func DefaultPagerConfig() PagerConfig {
	return PagerConfig{
		Axis:            "horizontal",
		GesturePriority: "high",
		SettleDuration:  pageview.DefaultSettleDuration.String(),
		IndicatorStyle:  "default",
		MarkdownStyle:   "dark",
	}
}

// applyDefaults fills in missing pager values with defaults
func (p *PagerConfig) applyDefaults() {
	defaults := DefaultPagerConfig()

	if p.Axis == "" {
		p.Axis = defaults.Axis
	}
	if p.GesturePriority == "" {
		p.GesturePriority = defaults.GesturePriority
	}
	if p.SettleDuration == "" {
		p.SettleDuration = defaults.SettleDuration
	}
	if p.IndicatorStyle == "" {
		p.IndicatorStyle = defaults.IndicatorStyle
	}
	if p.MarkdownStyle == "" {
		p.MarkdownStyle = defaults.MarkdownStyle
	}
}

// Settings builds the view settings from the config, styling the indicator
// with the color scheme.
func (c *Config) Settings() pageview.Settings {
	p := c.Pager
	axis := pageview.ParseAxis(p.Axis)
	s := pageview.DefaultSettings(axis)

	if p.SwitchThreshold != nil {
		s.SwitchThreshold = *p.SwitchThreshold
	}
	if p.EdgeSwipeThreshold != nil {
		s.EdgeSwipeThreshold = *p.EdgeSwipeThreshold
	}
	if priority, ok := pageview.ParsePriority(p.GesturePriority); ok {
		s.GesturePriority = priority
	}
	if p.DragEnabled != nil {
		s.DragEnabled = *p.DragEnabled
	}
	if p.MinimumDistance != nil {
		s.MinimumDistance = *p.MinimumDistance
	}
	if d, err := time.ParseDuration(p.SettleDuration); err == nil {
		s.SettleDuration = d
	}
	if align, ok := parseAlign(p.IndicatorAlign); ok {
		s.IndicatorAlignment = align
	}
	if p.IndicatorOffset != nil {
		s.IndicatorOffset = *p.IndicatorOffset
	}

	theme := pageview.ThemeByName(p.IndicatorStyle)
	theme.Background = c.ColorScheme.IndicatorBg
	theme.DotActive = c.ColorScheme.DotActive
	theme.DotInactive = c.ColorScheme.DotInactive
	s.Theme = theme

	return pageview.NewSettings(s)
}

// parseAlign reads "<vertical>-<horizontal>" such as "bottom-center", or a
// single "center".
func parseAlign(s string) (pageview.Alignment, bool) {
	if s == "center" {
		return pageview.Alignment{Horizontal: lipgloss.Center, Vertical: lipgloss.Center}, true
	}
	vName, hName, found := strings.Cut(s, "-")
	if !found {
		return pageview.Alignment{}, false
	}
	v, okV := map[string]lipgloss.Position{"top": lipgloss.Top, "center": lipgloss.Center, "bottom": lipgloss.Bottom}[vName]
	h, okH := map[string]lipgloss.Position{"left": lipgloss.Left, "center": lipgloss.Center, "right": lipgloss.Right}[hName]
	if !okV || !okH {
		return pageview.Alignment{}, false
	}
	return pageview.Alignment{Horizontal: h, Vertical: v}, true
}
