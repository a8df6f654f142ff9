package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/pageview/internal/config"
	"github.com/thenoetrevino/pageview/internal/config/colors"
	"github.com/thenoetrevino/pageview/internal/pageview"
)

// applyFlags overrides config values with the flags that were set
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()

	if flags.Changed("vertical") {
		vertical, _ := flags.GetBool("vertical")
		if vertical {
			cfg.Pager.Axis = pageview.Vertical.String()
		} else {
			cfg.Pager.Axis = pageview.Horizontal.String()
		}
	}

	if flags.Changed("threshold") {
		v, _ := flags.GetFloat64("threshold")
		cfg.Pager.SwitchThreshold = &v
	}

	if flags.Changed("edge") {
		v, _ := flags.GetFloat64("edge")
		if v < 0 || v > 1 {
			return fmt.Errorf("--edge must be between 0 and 1, got %v", v)
		}
		cfg.Pager.EdgeSwipeThreshold = &v
	}

	if flags.Changed("priority") {
		v, _ := flags.GetString("priority")
		if _, ok := pageview.ParsePriority(v); !ok {
			return fmt.Errorf("unknown gesture priority %q", v)
		}
		cfg.Pager.GesturePriority = v
	}

	if flags.Changed("no-drag") {
		noDrag, _ := flags.GetBool("no-drag")
		enabled := !noDrag
		cfg.Pager.DragEnabled = &enabled
	}

	if flags.Changed("theme") {
		v, _ := flags.GetString("theme")
		if !colors.IsPreset(v) {
			return fmt.Errorf("unknown theme %q", v)
		}
		cfg.ColorScheme.MergeFrom(colors.ColorScheme{Preset: v})
	}

	return nil
}
