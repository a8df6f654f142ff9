package pageview

import "charm.land/bubbles/v2/key"

// KeyMap defines the keyboard bindings of a page view.
type KeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	First  key.Binding
	Last   key.Binding
	Cancel key.Binding
}

// DefaultKeyMap returns bindings matching the paging axis.
func DefaultKeyMap(axis Axis) KeyMap {
	if axis == Vertical {
		return KeyMap{
			Next:   key.NewBinding(key.WithKeys("down", "j", "pgdown"), key.WithHelp("↓/j", "next page")),
			Prev:   key.NewBinding(key.WithKeys("up", "k", "pgup"), key.WithHelp("↑/k", "prev page")),
			First:  key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first")),
			Last:   key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last")),
			Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel drag")),
		}
	}
	return KeyMap{
		Next:   key.NewBinding(key.WithKeys("right", "l", "pgdown"), key.WithHelp("→/l", "next page")),
		Prev:   key.NewBinding(key.WithKeys("left", "h", "pgup"), key.WithHelp("←/h", "prev page")),
		First:  key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first")),
		Last:   key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel drag")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Prev, k.Next}, {k.First, k.Last, k.Cancel}}
}
