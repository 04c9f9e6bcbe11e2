package components

import "github.com/charmbracelet/x/ansi"

// Viewport holds two-axis scroll offsets for one block of text. Bounds are
// recomputed from the content on every draw and the offsets clamped to them.
type Viewport struct {
	vertical      int
	horizontal    int
	maxVertical   int
	maxHorizontal int
}

// Offsets returns the vertical line and horizontal column offsets
func (v *Viewport) Offsets() (vertical, horizontal int) {
	return v.vertical, v.horizontal
}

// Bounds returns the largest valid offsets for the last drawn content
func (v *Viewport) Bounds() (maxVertical, maxHorizontal int) {
	return v.maxVertical, v.maxHorizontal
}

// Reset scrolls back to the origin
func (v *Viewport) Reset() {
	v.vertical, v.horizontal = 0, 0
}

// ScrollUp moves one line up, stopping at the first line
func (v *Viewport) ScrollUp() {
	v.vertical = max(v.vertical-1, 0)
}

// ScrollDown moves one line down, stopping at the vertical bound
func (v *Viewport) ScrollDown() {
	v.vertical = min(v.vertical+1, v.maxVertical)
}

// ScrollLeft moves one column left, stopping at the first column
func (v *Viewport) ScrollLeft() {
	v.horizontal = max(v.horizontal-1, 0)
}

// ScrollRight moves one column right, stopping at the horizontal bound
func (v *Viewport) ScrollRight() {
	v.horizontal = min(v.horizontal+1, v.maxHorizontal)
}

// ScrollToTop jumps to the first line
func (v *Viewport) ScrollToTop() { v.vertical = 0 }

// ScrollToBottom jumps to the vertical bound
func (v *Viewport) ScrollToBottom() { v.vertical = v.maxVertical }

// ScrollToStart jumps to the first column
func (v *Viewport) ScrollToStart() { v.horizontal = 0 }

// ScrollToEnd jumps to the horizontal bound
func (v *Viewport) ScrollToEnd() { v.horizontal = v.maxHorizontal }

// RecomputeBounds derives the bounds from lines shown in a width x height area
// and clamps both offsets into them.
func (v *Viewport) RecomputeBounds(lines []string, width, height int) {
	longest := 0
	for _, line := range lines {
		longest = max(longest, ansi.StringWidth(line))
	}
	v.maxVertical = max(0, len(lines)-height)
	v.maxHorizontal = max(0, longest-width)
	v.vertical = min(max(v.vertical, 0), v.maxVertical)
	v.horizontal = min(max(v.horizontal, 0), v.maxHorizontal)
}

// Visible returns the lines of content that fall inside the viewport, cut to
// width columns starting at the horizontal offset.
func (v *Viewport) Visible(lines []string, width, height int) []string {
	start := min(v.vertical, len(lines))
	end := min(start+height, len(lines))
	out := make([]string, 0, end-start)
	for _, line := range lines[start:end] {
		out = append(out, ansi.Cut(line, v.horizontal, v.horizontal+width))
	}
	return out
}
