package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/pageview/internal/config"
	"github.com/thenoetrevino/pageview/internal/pageview"
)

// appKeys are the bindings handled by the app itself
type appKeys struct {
	Help key.Binding
	Quit key.Binding
}

// keyMap joins the pager and app bindings for the help footer
type keyMap struct {
	pager pageview.KeyMap
	app   appKeys
}

func (k keyMap) ShortHelp() []key.Binding {
	return append(k.pager.ShortHelp(), k.app.Help, k.app.Quit)
}

func (k keyMap) FullHelp() [][]key.Binding {
	return append(k.pager.FullHelp(), []key.Binding{k.app.Help, k.app.Quit})
}

// newKeyMap builds bindings from the configured key mappings. Arrow keys
// along the paging axis always work alongside the configured keys.
func newKeyMap(km config.KeyMappings, axis pageview.Axis) keyMap {
	nextArrow, prevArrow := "right", "left"
	nextHelp, prevHelp := "→/", "←/"
	if axis == pageview.Vertical {
		nextArrow, prevArrow = "down", "up"
		nextHelp, prevHelp = "↓/", "↑/"
	}

	return keyMap{
		pager: pageview.KeyMap{
			Next:   key.NewBinding(key.WithKeys(nextArrow, km.NextPage, "pgdown"), key.WithHelp(nextHelp+km.NextPage, "next")),
			Prev:   key.NewBinding(key.WithKeys(prevArrow, km.PrevPage, "pgup"), key.WithHelp(prevHelp+km.PrevPage, "prev")),
			First:  key.NewBinding(key.WithKeys("home", km.FirstPage), key.WithHelp(km.FirstPage, "first")),
			Last:   key.NewBinding(key.WithKeys("end", km.LastPage), key.WithHelp(km.LastPage, "last")),
			Cancel: key.NewBinding(key.WithKeys(km.CancelDrag), key.WithHelp(km.CancelDrag, "cancel drag")),
		},
		app: appKeys{
			Help: key.NewBinding(key.WithKeys(km.ShowHelp), key.WithHelp(km.ShowHelp, "help")),
			Quit: key.NewBinding(key.WithKeys(km.Quit, "ctrl+c"), key.WithHelp(km.Quit, "quit")),
		},
	}
}
