// Package components holds list and viewport state plus the character-cell
// widgets tinyd draws with.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Theme holds the colors every widget draws with
type Theme struct {
	Border   lipgloss.Color
	Accent   lipgloss.Color
	Selected lipgloss.Color
	Error    lipgloss.Color
	Muted    lipgloss.Color
}

// DefaultTheme is the green terminal look
func DefaultTheme() Theme {
	return Theme{
		Border:   lipgloss.Color("#00FF00"),
		Accent:   lipgloss.Color("#00FFFF"),
		Selected: lipgloss.Color("#FFFF00"),
		Error:    lipgloss.Color("#FF0000"),
		Muted:    lipgloss.Color("#999999"),
	}
}

// Color styles shared by all widgets. ApplyTheme replaces them.
var (
	greenStyle  lipgloss.Style
	cyanStyle   lipgloss.Style
	yellowStyle lipgloss.Style
	redStyle    lipgloss.Style
	grayStyle   lipgloss.Style
	normalStyle = lipgloss.NewStyle()
)

func init() {
	ApplyTheme(DefaultTheme())
}

// ApplyTheme sets the colors used by every widget. Call it before drawing.
func ApplyTheme(t Theme) {
	greenStyle = lipgloss.NewStyle().Foreground(t.Border)
	cyanStyle = lipgloss.NewStyle().Foreground(t.Accent)
	yellowStyle = lipgloss.NewStyle().Foreground(t.Selected).Bold(true)
	redStyle = lipgloss.NewStyle().Foreground(t.Error)
	grayStyle = lipgloss.NewStyle().Foreground(t.Muted)
}

// StatusStyle colors a container status label
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case "RUNNING":
		return greenStyle
	case "PAUSED", "RESTARTING":
		return yellowStyle
	case "ERROR":
		return redStyle
	default:
		return grayStyle
	}
}

// padRight truncates or pads s to exactly width columns
func padRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "…")
	if w := ansi.StringWidth(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}

// padLeft truncates or right-aligns s in width columns
func padLeft(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "…")
	if w := ansi.StringWidth(s); w < width {
		s = strings.Repeat(" ", width-w) + s
	}
	return s
}

func padCenter(s string, width int) string {
	s = ansi.Truncate(s, width, "…")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}

// fitLines pads or trims lines to exactly height entries of width columns
func fitLines(lines []string, width, height int) []string {
	out := make([]string, height)
	for i := range out {
		if i < len(lines) {
			out[i] = padRight(lines[i], width)
		} else {
			out[i] = strings.Repeat(" ", max(width, 0))
		}
	}
	return out
}
