package cmd

import (
	"context"
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/pageview/internal/config"
	"github.com/thenoetrevino/pageview/internal/database"
	"github.com/thenoetrevino/pageview/internal/logging"
	"github.com/thenoetrevino/pageview/internal/pageview"
	"github.com/thenoetrevino/pageview/internal/panes"
	"github.com/thenoetrevino/pageview/internal/tui"
)

// demoDeck is the position key used for the built-in deck
const demoDeck = "demo"

var rootCmd = NewRootCmd()

// NewRootCmd builds the pageview command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pageview [files...]",
		Short: "Page through files with the mouse or keyboard",
		Long: `pageview shows each file as a full screen page. Drag with the left
mouse button to move between pages, or use the keyboard.

Markdown files (.md, .markdown) are rendered, anything else is shown as text.
Without files a short demo deck is shown.

Examples:
  # Page through a few notes
  pageview intro.md details.md outro.txt

  # Stack pages vertically and commit after a third of a page
  pageview --vertical --threshold 0.3 *.md

  # Only start drags in the middle 20% of the page
  pageview --edge 0.2 notes.md
`,
		SilenceUsage: true,
		RunE:         runRoot,
	}

	cmd.Flags().Bool("vertical", false, "Page up and down instead of left and right")
	cmd.Flags().Float64("threshold", 0, "Fraction of a page a drag must travel to switch pages")
	cmd.Flags().Float64("edge", 0, "Central fraction of the page where drags may start")
	cmd.Flags().String("priority", "", "Gesture priority: standard, simultaneous, high or disabled")
	cmd.Flags().Bool("no-drag", false, "Disable mouse dragging")
	cmd.Flags().String("theme", "", "Color preset: default, monochrome, wave, dragon or lotus")
	cmd.Flags().String("config", "", "Config file (default $XDG_CONFIG_HOME/pageview/config.yaml)")
	cmd.Flags().String("db", "", "Position database (default ~/.pageview/positions.db)")
	cmd.Flags().Bool("no-restore", false, "Start on the first page and don't remember the position")
	cmd.Flags().Bool("forget", false, "Forget the remembered page of this deck before starting")
	cmd.Flags().Bool("debug", false, "Log gesture transitions")

	return cmd
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func runRoot(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	debug, _ := cmd.Flags().GetBool("debug")
	closer, err := logging.Init(debug)
	if err != nil {
		return err
	}
	defer func() {
		if err := closer.Close(); err != nil {
			slog.Error("Error closing log file", "error", err)
		}
	}()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, cfg); err != nil {
		return err
	}

	deckPanes, deck, err := loadDeck(args, cfg.Pager.MarkdownStyle)
	if err != nil {
		return err
	}

	params := tui.Params{
		Panes:  deckPanes,
		Config: cfg,
		Logger: logging.Logger,
	}

	noRestore, _ := cmd.Flags().GetBool("no-restore")
	if !noRestore {
		repo, err := openRepo(ctx, cmd)
		if err != nil {
			// The viewer works without a position store
			slog.Error("Position store unavailable", "error", err)
		} else {
			defer func() {
				if err := repo.Close(); err != nil {
					slog.Error("Error closing position store", "error", err)
				}
			}()
			forget, _ := cmd.Flags().GetBool("forget")
			if forget {
				if err := repo.ForgetPosition(ctx, deck); err != nil {
					slog.Error("Failed to forget position", "deck", deck, "error", err)
				}
			}
			params.Repo = repo
			params.Deck = deck
			params.StartPage = restorePage(ctx, repo, deck, len(deckPanes))
		}
	}

	p := tea.NewProgram(tui.New(params), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}

// loadDeck loads the files named on the command line, or the demo deck
func loadDeck(paths []string, markdownStyle string) ([]pageview.Pane, string, error) {
	if len(paths) == 0 {
		return panes.Demo(markdownStyle), demoDeck, nil
	}
	deckPanes, err := panes.LoadAll(paths, markdownStyle)
	if err != nil {
		return nil, "", err
	}
	return deckPanes, database.DeckKey(paths), nil
}

func openRepo(ctx context.Context, cmd *cobra.Command) (*database.Repository, error) {
	path, _ := cmd.Flags().GetString("db")
	if path == "" {
		var err error
		if path, err = database.DefaultPath(); err != nil {
			return nil, err
		}
	}
	db, err := database.InitDB(ctx, path)
	if err != nil {
		return nil, err
	}
	return database.NewRepository(db), nil
}

// restorePage returns the remembered page of deck, or 0. A position past the
// end of a deck that shrank is clamped by the view.
func restorePage(ctx context.Context, repo database.PositionRepository, deck string, pageCount int) int {
	page, found, err := repo.LoadPosition(ctx, deck)
	if err != nil {
		slog.Error("Failed to load position", "deck", deck, "error", err)
		return 0
	}
	if !found {
		return 0
	}
	slog.Debug("Restored position", "deck", deck, "page", page, "pages", pageCount)
	return page
}
