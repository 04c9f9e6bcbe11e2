package ui

import (
	"strings"

	"tinyd/internal/components"
	"tinyd/internal/types"
)

// headerHeight covers the title bar and the tab strip
const headerHeight = 5

// View composes the full frame: title bar, tab strip and the active screen
func (a *App) View() string {
	title := "tinyd"
	if a.opts.Version != "" {
		title += " " + a.opts.Version
	}
	if a.opts.Host != "" {
		title += " @ " + a.opts.Host
	}

	status := a.screen.String()
	if !a.pending.IsNone() {
		status = a.pending.String() + " | " + status
	}

	tabs := make([]components.TabItem, len(types.ResourceKinds))
	for i, k := range types.ResourceKinds {
		tabs[i] = components.TabItem{Name: k.Title(), Shortcut: string(rune('1' + i))}
	}

	var b strings.Builder
	b.WriteString(components.NewHeaderComponent(title, status).WithWidth(a.width).View())
	b.WriteString(components.NewTabsComponent(tabs, int(a.screen.Tab)).WithWidth(a.width).View())
	b.WriteString(a.active().Draw(a.width, max(a.height-headerHeight, 1)))
	return b.String()
}
