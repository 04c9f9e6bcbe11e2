package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"tinyd/internal/types"
)

// ListKeyMap holds the bindings shared by every resource list
type ListKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// DetailKeyMap holds the detail screen bindings
type DetailKeyMap struct {
	PrevPane key.Binding
	NextPane key.Binding
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Start    key.Binding
	End      key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Back     key.Binding
	Quit     key.Binding
	Restart  key.Binding
	Stop     key.Binding
	Kill     key.Binding
	Remove   key.Binding
}

// TabKeyMap holds the tab switching bindings of the list screen
type TabKeyMap struct {
	Jump    []key.Binding // one per resource kind, in tab order
	NextTab key.Binding
	PrevTab key.Binding
}

// DefaultListKeyMap returns the navigation keys shared by every list
func DefaultListKeyMap() ListKeyMap {
	return ListKeyMap{
		Up:   key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "up")),
		Down: key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "down")),
		Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// DefaultDetailKeyMap returns the detail screen bindings
func DefaultDetailKeyMap() DetailKeyMap {
	return DetailKeyMap{
		PrevPane: key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "prev pane")),
		NextPane: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next pane")),
		Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "down")),
		Left:     key.NewBinding(key.WithKeys("h"), key.WithHelp("h/l", "scroll")),
		Right:    key.NewBinding(key.WithKeys("l")),
		Start:    key.NewBinding(key.WithKeys("home")),
		End:      key.NewBinding(key.WithKeys("end")),
		Top:      key.NewBinding(key.WithKeys("pgup")),
		Bottom:   key.NewBinding(key.WithKeys("pgdown")),
		Back:     key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc", "back")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c")),
		Restart:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Stop:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "stop")),
		Kill:     key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "kill")),
		Remove:   key.NewBinding(key.WithKeys("delete", "d"), key.WithHelp("d", "remove")),
	}
}

// DefaultTabKeyMap returns 1-4 plus tab and shift+tab
func DefaultTabKeyMap() TabKeyMap {
	jump := make([]key.Binding, len(types.ResourceKinds))
	for i := range types.ResourceKinds {
		k := string(rune('1' + i))
		jump[i] = key.NewBinding(key.WithKeys(k))
	}
	return TabKeyMap{
		Jump:    jump,
		NextTab: key.NewBinding(key.WithKeys("tab")),
		PrevTab: key.NewBinding(key.WithKeys("shift+tab")),
	}
}

// ShortHelp lists the detail bindings shown in the footer
func (k DetailKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevPane, k.NextPane, k.Up, k.Down, k.Left, k.Restart, k.Stop, k.Kill, k.Remove, k.Back}
}
