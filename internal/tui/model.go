package tui

import (
	"context"
	"log/slog"
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/pageview/internal/config"
	"github.com/thenoetrevino/pageview/internal/database"
	"github.com/thenoetrevino/pageview/internal/pageview"
)

// saveTimeout bounds a single position write
const saveTimeout = 2 * time.Second

// positionSavedMsg reports the result of a position write
type positionSavedMsg struct {
	page int
	err  error
}

// Params configures a Model
type Params struct {
	Panes  []pageview.Pane
	Config *config.Config

	// Repo persists the selected page under Deck. May be nil.
	Repo database.PositionRepository
	Deck string

	// StartPage is the page restored from Repo
	StartPage int

	Logger *slog.Logger
}

// Model is the top-level program: one page view plus a help footer.
type Model struct {
	pager  pageview.Model
	keys   keyMap
	help   help.Model
	styles Styles
	colors config.ColorScheme

	repo   database.PositionRepository
	deck   string
	logger *slog.Logger

	width    int
	height   int
	showHelp bool
	lastErr  error
}

// New builds the program model
func New(p Params) Model {
	cfg := p.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}

	settings := cfg.Settings()
	keys := newKeyMap(cfg.KeyMappings, settings.Axis)
	pager := pageview.New(p.Panes, settings,
		pageview.WithBinding(pageview.NewPageCell(p.StartPage)),
		pageview.WithKeyMap(keys.pager),
		pageview.WithLogger(logger),
	)

	styles := NewStyles(cfg.ColorScheme)
	h := help.New()
	h.Styles = styles.Help

	return Model{
		pager:  pager,
		keys:   keys,
		help:   h,
		styles: styles,
		colors: cfg.ColorScheme,
		repo:   p.Repo,
		deck:   p.Deck,
		logger: logger,
	}
}

// Pager exposes the hosted page view
func (m Model) Pager() pageview.Model { return m.pager }

// ShowingHelp reports whether the full help is open
func (m Model) ShowingHelp() bool { return m.showHelp }

// LastError is the most recent persistence failure, if any
func (m Model) LastError() error { return m.lastErr }

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.pager.Init()
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, m.resizePager()

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, m.keys.app.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.app.Help):
			m.showHelp = !m.showHelp
			m.help.ShowAll = m.showHelp
			return m, m.resizePager()
		}

	case pageview.PageChangedMsg:
		if msg.ID != m.pager.ID() {
			return m, nil
		}
		return m, m.savePosition(msg.Page)

	case positionSavedMsg:
		m.lastErr = msg.err
		if msg.err != nil {
			m.logger.Error("failed to save position", "deck", m.deck, "page", msg.page, "error", msg.err)
		} else {
			m.logger.Debug("position saved", "deck", m.deck, "page", msg.page)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.pager, cmd = m.pager.Update(msg)
	return m, cmd
}

func (m *Model) footerHeight() int {
	return lipgloss.Height(m.footer())
}

func (m *Model) resizePager() tea.Cmd {
	if m.width <= 0 || m.height <= 0 {
		return nil
	}
	return m.pager.SetSize(m.width, max(m.height-m.footerHeight(), 0))
}

func (m Model) savePosition(page int) tea.Cmd {
	if m.repo == nil || m.deck == "" {
		return nil
	}
	repo, deck, count := m.repo, m.deck, m.pager.PageCount()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()
		return positionSavedMsg{page: page, err: repo.SavePosition(ctx, deck, page, count)}
	}
}
