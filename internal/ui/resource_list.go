package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"tinyd/internal/components"
	"tinyd/internal/types"
)

// DefaultRefreshTicks is the list and detail polling cadence, in ticks
const DefaultRefreshTicks = 10

const genericErrorBanner = "[ERR] Something went wrong..."

// Row is a display row that can be identified across refreshes
type Row interface {
	RowID() string
}

// listAction binds a key to a command about the selected row
type listAction[R Row] struct {
	binding key.Binding
	command func(R) types.AppCommand
}

// listFilter hides rows when show_all is off
type listFilter[R Row] struct {
	binding key.Binding
	keep    func(R) bool
	label   string // shown in the status line while filtering
}

// ResourceList is the list screen of one resource kind: a virtualized table
// of rows, an optional show_all filter, and a one-shot error banner.
type ResourceList[R Row] struct {
	kind    types.ResourceKind
	columns []components.Column
	cells   func(R) []string
	height  func(R) int
	actions []listAction[R]
	filter  *listFilter[R]
	keys    ListKeyMap
	help    help.Model

	items   []R // last refresh, unfiltered
	list    *components.ListState[R]
	showAll bool

	refreshEvery int
	skipped      int
	banner       string
}

func newResourceList[R Row](kind types.ResourceKind, columns []components.Column, cells func(R) []string, height func(R) int) *ResourceList[R] {
	return &ResourceList[R]{
		kind:         kind,
		columns:      columns,
		cells:        cells,
		height:       height,
		keys:         DefaultListKeyMap(),
		help:         help.New(),
		list:         components.NewListState[R](),
		showAll:      true,
		refreshEvery: DefaultRefreshTicks,
	}
}

func (l *ResourceList[R]) withAction(binding key.Binding, command func(R) types.AppCommand) *ResourceList[R] {
	l.actions = append(l.actions, listAction[R]{binding: binding, command: command})
	return l
}

func (l *ResourceList[R]) withFilter(binding key.Binding, label string, keep func(R) bool) *ResourceList[R] {
	l.filter = &listFilter[R]{binding: binding, keep: keep, label: label}
	return l
}

// Kind returns the resource kind this list shows
func (l *ResourceList[R]) Kind() types.ResourceKind { return l.kind }

// State exposes the selection over the displayed rows
func (l *ResourceList[R]) State() *components.ListState[R] { return l.list }

// ShowAll reports whether the filter is off
func (l *ResourceList[R]) ShowAll() bool { return l.showAll }

// SetShowAll sets the filter state before the first refresh
func (l *ResourceList[R]) SetShowAll(showAll bool) {
	l.showAll = showAll
	l.list.ReplaceItems(l.displayed(), l.height)
}

// SetRefreshEvery changes the polling cadence
func (l *ResourceList[R]) SetRefreshEvery(ticks int) {
	l.refreshEvery = max(ticks, 1)
}

// Banner returns the error banner, empty when none is shown
func (l *ResourceList[R]) Banner() string { return l.banner }

// ShowError puts the list into the error banner state. The next key press
// only dismisses it.
func (l *ResourceList[R]) ShowError(msg string) {
	if msg == "" {
		l.banner = genericErrorBanner
		return
	}
	l.banner = "[ERR] " + msg
}

// ApplyRefresh replaces the rows with a fresh listing
func (l *ResourceList[R]) ApplyRefresh(items []R) {
	l.items = items
	l.list.ReplaceItems(l.displayed(), l.height)
}

// Tick counts one clock tick and asks for a refresh every refreshEvery ticks
func (l *ResourceList[R]) Tick() (types.AppCommand, bool) {
	l.skipped++
	if l.skipped < l.refreshEvery {
		return types.AppCommand{}, false
	}
	l.skipped = 0
	return types.RefreshList(l.kind), true
}

// HandleInput handles navigation locally and turns command keys into an
// AppCommand about the selected row.
func (l *ResourceList[R]) HandleInput(k types.Key) (types.AppCommand, bool) {
	if l.banner != "" {
		l.banner = ""
		return types.AppCommand{}, false
	}

	switch {
	case key.Matches(k, l.keys.Down):
		l.list.Next()
		return types.AppCommand{}, false
	case key.Matches(k, l.keys.Up):
		l.list.Previous()
		return types.AppCommand{}, false
	case key.Matches(k, l.keys.Quit):
		return types.Quit(), true
	case l.filter != nil && key.Matches(k, l.filter.binding):
		l.toggle()
		return types.AppCommand{}, false
	}

	for _, a := range l.actions {
		if !key.Matches(k, a.binding) {
			continue
		}
		sel, ok := l.list.SelectedItem()
		if !ok {
			return types.AppCommand{}, false
		}
		return a.command(sel), true
	}
	return types.AppCommand{}, false
}

// toggle flips show_all and keeps the selected row selected if it is still
// displayed.
func (l *ResourceList[R]) toggle() {
	prev, hadSelection := l.list.SelectedItem()
	l.showAll = !l.showAll
	rows := l.displayed()
	l.list.ReplaceItems(rows, l.height)
	if !hadSelection {
		return
	}
	for i, r := range rows {
		if r.RowID() == prev.RowID() {
			l.list.Select(i)
			return
		}
	}
}

func (l *ResourceList[R]) displayed() []R {
	if l.showAll || l.filter == nil {
		return l.items
	}
	rows := make([]R, 0, len(l.items))
	for _, r := range l.items {
		if l.filter.keep(r) {
			rows = append(rows, r)
		}
	}
	return rows
}

func (l *ResourceList[R]) bindings() []key.Binding {
	b := []key.Binding{l.keys.Up, l.keys.Down}
	for _, a := range l.actions {
		b = append(b, a.binding)
	}
	if l.filter != nil {
		b = append(b, l.filter.binding)
	}
	return append(b, l.keys.Quit)
}

func (l *ResourceList[R]) statusText() string {
	text := fmt.Sprintf("%s: %d total", l.kind.Title(), len(l.items))
	if l.filter != nil && !l.showAll {
		text += fmt.Sprintf(", %d shown (%s)", l.list.Len(), l.filter.label)
	}
	return text
}

// Draw renders the list into exactly height lines of width columns: status
// line, table and footer.
func (l *ResourceList[R]) Draw(width, height int) string {
	bodyHeight := max(height-7, 1)

	table := components.NewTableComponent(l.columns...).WithWidth(width)

	start, end := l.list.Window(bodyHeight)
	items := l.list.Items()
	sel, _ := l.list.Selected()
	rows := make([]components.TableRow, 0, end-start)
	for i := start; i < end; i++ {
		rows = append(rows, components.TableRow{
			Cells:      l.cells(items[i]),
			Height:     l.height(items[i]),
			IsSelected: i == sel,
		})
	}
	span, position := l.list.ScrollbarGeometry()
	bar := components.Scrollbar(span, position, bodyHeight)

	l.help.Width = max(width-4, 0)
	footer := components.NewActionBarComponent().
		WithWidth(width).
		SetActions(l.help.ShortHelpView(l.bindings())).
		SetBanner(l.banner)

	var b strings.Builder
	b.WriteString(components.NewStatusLineComponent(l.statusText()).WithWidth(width).View())
	b.WriteString(table.HeaderView())
	b.WriteString(table.BodyView(rows, bodyHeight, bar, "No "+l.kind.String()+" found"))
	b.WriteString(table.FooterView())
	b.WriteString(footer.View())
	return b.String()
}
