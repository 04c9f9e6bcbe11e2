package components

// RowHeight is the rendered height of a row whose tallest cell has lines
// lines: one padding line above and below, never less than three.
func RowHeight(lines int) int {
	return max(3, lines+2)
}

// ListState tracks selection and scroll offset over rows of varying height.
// Items are replaced wholesale on every refresh and never patched in place.
//
// The selection is -1 exactly when the list is empty, and the scroll offset is
// always the sum of the heights of the rows above the selection.
type ListState[R any] struct {
	items    []R
	heights  []int // one per item, including the last
	selected int
	offset   int
	top      int // first row drawn by Window
}

// NewListState returns an empty list
func NewListState[R any]() *ListState[R] {
	return &ListState[R]{selected: -1}
}

// Items returns the current rows
func (l *ListState[R]) Items() []R { return l.items }

// Len returns the number of rows
func (l *ListState[R]) Len() int { return len(l.items) }

// Selected returns the selected index, or false for an empty list
func (l *ListState[R]) Selected() (int, bool) {
	if l.selected < 0 {
		return 0, false
	}
	return l.selected, true
}

// SelectedItem returns the selected row
func (l *ListState[R]) SelectedItem() (R, bool) {
	var zero R
	if l.selected < 0 || l.selected >= len(l.items) {
		return zero, false
	}
	return l.items[l.selected], true
}

// Offset returns the scroll offset in lines
func (l *ListState[R]) Offset() int { return l.offset }

// RowHeights returns the heights that take part in offset math: every row
// except the last.
func (l *ListState[R]) RowHeights() []int {
	if len(l.heights) == 0 {
		return nil
	}
	out := make([]int, len(l.heights)-1)
	copy(out, l.heights)
	return out
}

// Next moves the selection down one row, wrapping to the first.
func (l *ListState[R]) Next() {
	if len(l.items) == 0 {
		return
	}
	l.Select((l.selected + 1) % len(l.items))
}

// Previous moves the selection up one row, wrapping to the last.
func (l *ListState[R]) Previous() {
	if len(l.items) == 0 {
		return
	}
	i := l.selected - 1
	if i < 0 {
		i = len(l.items) - 1
	}
	l.Select(i)
}

// Select selects row i and recomputes the scroll offset. The caller must
// ensure i < Len().
func (l *ListState[R]) Select(i int) {
	l.selected = i
	l.offset = 0
	for _, h := range l.heights[:i] {
		l.offset += h
	}
}

// ReplaceItems swaps in a new collection. A list that goes from empty to
// non-empty selects row 0; otherwise the selection is kept and clamped to the
// new last row.
func (l *ListState[R]) ReplaceItems(items []R, height func(R) int) {
	wasEmpty := len(l.items) == 0

	l.items = items
	l.heights = make([]int, len(items))
	for i, item := range items {
		l.heights[i] = height(item)
	}

	switch {
	case len(items) == 0:
		l.selected = -1
		l.offset = 0
		l.top = 0
	case wasEmpty || l.selected < 0:
		l.Select(0)
	case l.selected >= len(items):
		l.Select(len(items) - 1)
	default:
		l.Select(l.selected)
	}
}

// ScrollbarGeometry returns the scroll span and position to feed a scrollbar.
// The span is the offset of the last row.
func (l *ListState[R]) ScrollbarGeometry() (span, position int) {
	for _, h := range l.RowHeights() {
		span += h
	}
	return span, l.offset
}

// Window returns the half-open range of rows to draw in height lines. The
// selected row is always inside the range; the first drawn row only moves
// when the selection leaves the window.
func (l *ListState[R]) Window(height int) (start, end int) {
	n := len(l.items)
	if n == 0 {
		return 0, 0
	}
	sel := max(l.selected, 0)
	if l.top > sel {
		l.top = sel
	}
	if l.top >= n {
		l.top = n - 1
	}
	for l.top < sel && sumHeights(l.heights[l.top:sel+1]) > height {
		l.top++
	}

	end = l.top
	used := 0
	for end < n && used+l.heights[end] <= height {
		used += l.heights[end]
		end++
	}
	if end == l.top {
		end = l.top + 1
	}
	return l.top, end
}

func sumHeights(hs []int) int {
	total := 0
	for _, h := range hs {
		total += h
	}
	return total
}
