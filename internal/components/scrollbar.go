package components

// Scrollbar returns one cell per line of a vertical scrollbar height lines
// tall. span is the largest position the content can scroll to; the thumb
// sits on the last track cell when position reaches it. Content that does
// not scroll gets a plain border.
func Scrollbar(span, position, height int) []string {
	cells := make([]string, max(height, 0))
	for i := range cells {
		cells[i] = "│"
	}
	if span <= 0 || height < 3 {
		return cells
	}

	cells[0] = "▲"
	cells[height-1] = "▼"
	track := height - 2
	for i := 1; i <= track; i++ {
		cells[i] = "║"
	}
	position = min(max(position, 0), span)
	thumb := position * (track - 1) / span
	cells[1+thumb] = "█"
	return cells
}
