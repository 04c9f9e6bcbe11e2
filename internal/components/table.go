package components

import "strings"

// Column describes one table column. Width is fixed; columns with Flex share
// whatever width is left in proportion to their weight.
type Column struct {
	Title      string
	Width      int
	Flex       int
	AlignRight bool
}

// TableRow is one virtualized row. Cells may span several lines; the row is
// drawn Height lines tall with one padding line above the content.
type TableRow struct {
	Cells      []string
	Height     int
	IsSelected bool
}

// TableComponent renders a bordered table whose right edge is a scrollbar
type TableComponent struct {
	columns []Column
	widths  []int
	width   int
}

func NewTableComponent(columns ...Column) TableComponent {
	t := TableComponent{columns: columns}
	return t.WithWidth(80)
}

// WithWidth lays the columns out across width terminal columns
func (t TableComponent) WithWidth(width int) TableComponent {
	t.width = width
	t.widths = make([]int, len(t.columns))

	// Left border, separators and the scrollbar column.
	avail := width - 1 - len(t.columns)
	flexTotal := 0
	for i, c := range t.columns {
		if c.Flex > 0 {
			flexTotal += c.Flex
			continue
		}
		t.widths[i] = c.Width
		avail -= c.Width
	}
	avail = max(avail, 0)

	lastFlex := -1
	given := 0
	for i, c := range t.columns {
		if c.Flex == 0 {
			continue
		}
		t.widths[i] = avail * c.Flex / flexTotal
		given += t.widths[i]
		lastFlex = i
	}
	if lastFlex >= 0 {
		t.widths[lastFlex] += avail - given
	}
	return t
}

// HeaderView renders the header block: divider, titles, divider
func (t TableComponent) HeaderView() string {
	var b strings.Builder
	b.WriteString(greenStyle.Render(t.divider("├", "┬", "┤")))
	b.WriteString("\n")
	b.WriteString(greenStyle.Render("│"))
	for i, c := range t.columns {
		b.WriteString(normalStyle.Bold(true).Render(padCenter(c.Title, t.widths[i])))
		b.WriteString(greenStyle.Render("│"))
	}
	b.WriteString("\n")
	b.WriteString(greenStyle.Render(t.divider("├", "┼", "┤")))
	b.WriteString("\n")
	return b.String()
}

// BodyView renders exactly height lines of rows with the scrollbar column on
// the right. scrollbar must hold height entries.
func (t TableComponent) BodyView(rows []TableRow, height int, scrollbar []string, empty string) string {
	lines := make([]string, 0, height)
	if len(rows) == 0 && empty != "" {
		lines = append(lines, greenStyle.Render("│")+cyanStyle.Render(padRight(" "+empty, t.innerWidth())))
	}

	for _, row := range rows {
		cellLines := make([][]string, len(row.Cells))
		for j, cell := range row.Cells {
			cellLines[j] = strings.Split(cell, "\n")
		}
		for k := 0; k < row.Height && len(lines) < height; k++ {
			lines = append(lines, t.rowLine(row, cellLines, k-1))
		}
		if len(lines) >= height {
			break
		}
	}

	var b strings.Builder
	for i := 0; i < height; i++ {
		line := ""
		if i < len(lines) {
			line = lines[i]
		} else {
			line = t.blankLine()
		}
		b.WriteString(line)
		if i < len(scrollbar) {
			b.WriteString(greenStyle.Render(scrollbar[i]))
		} else {
			b.WriteString(greenStyle.Render("│"))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// FooterView renders the closing divider under the body
func (t TableComponent) FooterView() string {
	return greenStyle.Render(t.divider("├", "┴", "┤")) + "\n"
}

func (t TableComponent) rowLine(row TableRow, cellLines [][]string, line int) string {
	style := normalStyle
	if row.IsSelected {
		style = yellowStyle
	}

	var b strings.Builder
	b.WriteString(greenStyle.Render("│"))
	for j, w := range t.widths {
		text := ""
		if line >= 0 && j < len(cellLines) && line < len(cellLines[j]) {
			text = cellLines[j][line]
		}
		if j < len(t.columns) && t.columns[j].AlignRight {
			text = padLeft(text, w-1) + " "
		} else {
			text = padRight(" "+text, w)
		}
		b.WriteString(style.Render(text))
		if j < len(t.widths)-1 {
			b.WriteString(greenStyle.Render("│"))
		}
	}
	return b.String()
}

func (t TableComponent) blankLine() string {
	var b strings.Builder
	b.WriteString(greenStyle.Render("│"))
	for j, w := range t.widths {
		b.WriteString(strings.Repeat(" ", w))
		if j < len(t.widths)-1 {
			b.WriteString(greenStyle.Render("│"))
		}
	}
	return b.String()
}

func (t TableComponent) innerWidth() int {
	return max(t.width-2, 0)
}

func (t TableComponent) divider(left, mid, right string) string {
	var b strings.Builder
	b.WriteString(left)
	for i, w := range t.widths {
		b.WriteString(strings.Repeat("─", w))
		if i < len(t.widths)-1 {
			b.WriteString(mid)
		}
	}
	b.WriteString(right)
	return b.String()
}
