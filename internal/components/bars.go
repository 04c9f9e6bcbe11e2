package components

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// HeaderComponent renders the top header bar
type HeaderComponent struct {
	title string
	help  string
	width int
}

func NewHeaderComponent(title, help string) HeaderComponent {
	return HeaderComponent{
		title: title,
		help:  help,
		width: 80,
	}
}

func (h HeaderComponent) WithWidth(width int) HeaderComponent {
	h.width = width
	return h
}

// View renders two lines: the top border and the title row
func (h HeaderComponent) View() string {
	inner := max(h.width-2, 0)

	var b strings.Builder
	b.WriteString(greenStyle.Render("┌" + strings.Repeat("─", inner) + "┐"))
	b.WriteString("\n")

	left := " " + h.title
	right := h.help + " "
	gap := inner - ansi.StringWidth(left) - ansi.StringWidth(right)
	if gap < 1 {
		right = ansi.Truncate(right, max(inner-ansi.StringWidth(left)-1, 0), "…")
		gap = max(inner-ansi.StringWidth(left)-ansi.StringWidth(right), 0)
	}
	b.WriteString(greenStyle.Render("│"))
	b.WriteString(yellowStyle.Render(left))
	b.WriteString(strings.Repeat(" ", gap))
	b.WriteString(cyanStyle.Render(right))
	b.WriteString(greenStyle.Render("│"))
	b.WriteString("\n")

	return b.String()
}

// StatusLineComponent renders a status line with item counts
type StatusLineComponent struct {
	text  string
	width int
}

func NewStatusLineComponent(text string) StatusLineComponent {
	return StatusLineComponent{text: text, width: 80}
}

func (s StatusLineComponent) WithWidth(width int) StatusLineComponent {
	s.width = width
	return s
}

func (s StatusLineComponent) View() string {
	return greenStyle.Render("│") +
		cyanStyle.Render(padRight(" "+s.text, max(s.width-2, 0))) +
		greenStyle.Render("│") + "\n"
}

// ActionBarComponent renders the footer: key help, or an error banner that
// takes its place.
type ActionBarComponent struct {
	actions string
	banner  string
	width   int
}

func NewActionBarComponent() ActionBarComponent {
	return ActionBarComponent{width: 80}
}

func (a ActionBarComponent) WithWidth(width int) ActionBarComponent {
	a.width = width
	return a
}

func (a ActionBarComponent) SetActions(actions string) ActionBarComponent {
	a.actions = actions
	return a
}

func (a ActionBarComponent) SetBanner(banner string) ActionBarComponent {
	a.banner = banner
	return a
}

// View renders two lines: the footer row and the bottom border
func (a ActionBarComponent) View() string {
	inner := max(a.width-2, 0)

	var b strings.Builder
	b.WriteString(greenStyle.Render("│"))
	if a.banner != "" {
		b.WriteString(redStyle.Render(padRight(" "+a.banner, inner)))
	} else {
		b.WriteString(padRight(" "+a.actions, inner))
	}
	b.WriteString(greenStyle.Render("│"))
	b.WriteString("\n")
	b.WriteString(greenStyle.Render("└" + strings.Repeat("─", inner) + "┘"))
	return b.String()
}
