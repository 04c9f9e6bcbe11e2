package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// TabItem is one labelled tab
type TabItem struct {
	Name     string
	Shortcut string
}

// TabsComponent renders the tab navigation strip
type TabsComponent struct {
	tabs      []TabItem
	activeTab int
	width     int
}

func NewTabsComponent(tabs []TabItem, activeTab int) TabsComponent {
	return TabsComponent{
		tabs:      tabs,
		activeTab: activeTab,
		width:     80,
	}
}

func (t TabsComponent) WithWidth(width int) TabsComponent {
	t.width = width
	return t
}

func (t TabsComponent) SetActiveTab(index int) TabsComponent {
	t.activeTab = index
	return t
}

// View renders three lines: the rounded tab tops, the labels and the base
// line that opens under the active tab.
func (t TabsComponent) View() string {
	var b strings.Builder

	labels := make([]string, len(t.tabs))
	for i, tab := range t.tabs {
		if tab.Shortcut != "" {
			labels[i] = fmt.Sprintf(" %s %s ", tab.Name, tab.Shortcut)
		} else {
			labels[i] = fmt.Sprintf(" %s ", tab.Name)
		}
	}

	b.WriteString(" ")
	for _, label := range labels {
		b.WriteString(greenStyle.Render("╭" + strings.Repeat("─", ansi.StringWidth(label)) + "╮"))
	}
	b.WriteString("\n")

	b.WriteString(" ")
	for i, label := range labels {
		b.WriteString(greenStyle.Render("│"))
		if i == t.activeTab {
			b.WriteString(yellowStyle.Render(label))
		} else {
			b.WriteString(greenStyle.Render(label))
		}
		b.WriteString(greenStyle.Render("│"))
	}
	b.WriteString("\n")

	used := 1
	b.WriteString(greenStyle.Render("─"))
	for i, label := range labels {
		w := ansi.StringWidth(label)
		if i == t.activeTab {
			b.WriteString(greenStyle.Render("╯") + strings.Repeat(" ", w) + greenStyle.Render("╰"))
		} else {
			b.WriteString(greenStyle.Render("┴" + strings.Repeat("─", w) + "┴"))
		}
		used += w + 2
	}
	if remaining := t.width - used; remaining > 0 {
		b.WriteString(greenStyle.Render(strings.Repeat("─", remaining)))
	}
	b.WriteString("\n")

	return b.String()
}
