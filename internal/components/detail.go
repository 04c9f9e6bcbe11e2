package components

import (
	"fmt"
	"strings"
)

// DetailViewComponent renders a scrolled block of text inside a border with a
// vertical scrollbar on the right edge.
type DetailViewComponent struct {
	title string
	lines []string // already cut to the visible window
	width int
	rows  int

	span      int
	position  int
	column    int
	maxColumn int
}

func NewDetailViewComponent(title string, rows int) DetailViewComponent {
	return DetailViewComponent{
		title: title,
		rows:  rows,
		width: 80,
	}
}

func (d DetailViewComponent) WithWidth(width int) DetailViewComponent {
	d.width = width
	return d
}

// InnerWidth is the number of text columns between the borders
func (d DetailViewComponent) InnerWidth() int {
	return max(d.width-2, 0)
}

func (d DetailViewComponent) SetContent(lines []string) DetailViewComponent {
	d.lines = lines
	return d
}

// SetScroll feeds the scrollbar and the column indicator. span is the largest
// vertical offset.
func (d DetailViewComponent) SetScroll(span, position, column, maxColumn int) DetailViewComponent {
	d.span = span
	d.position = position
	d.column = column
	d.maxColumn = maxColumn
	return d
}

func (d DetailViewComponent) View() string {
	inner := d.InnerWidth()

	var b strings.Builder
	b.WriteString(greenStyle.Render("├" + strings.Repeat("─", inner) + "┤"))
	b.WriteString("\n")

	right := ""
	if d.maxColumn > 0 {
		right = fmt.Sprintf("col %d/%d ", d.column, d.maxColumn)
	}
	left := padRight(" "+d.title, max(inner-len(right), 0))
	b.WriteString(greenStyle.Render("│"))
	b.WriteString(yellowStyle.Render(left))
	b.WriteString(grayStyle.Render(right))
	b.WriteString(greenStyle.Render("│"))
	b.WriteString("\n")

	b.WriteString(greenStyle.Render("├" + strings.Repeat("─", inner) + "┤"))
	b.WriteString("\n")

	bar := Scrollbar(d.span, d.position, d.rows)
	body := d.lines
	if len(body) == 0 {
		body = []string{cyanStyle.Render("Loading...")}
	}
	for i, line := range fitLines(body, inner, d.rows) {
		b.WriteString(greenStyle.Render("│"))
		b.WriteString(line)
		b.WriteString(greenStyle.Render(bar[i]))
		b.WriteString("\n")
	}
	return b.String()
}
