package components

import (
	"strings"
	"testing"
)

func lines(n, width int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = strings.Repeat("x", width)
	}
	return out
}

func TestViewportRecomputeBounds(t *testing.T) {
	tests := []struct {
		name          string
		content       []string
		width, height int
		wantV, wantH  int
	}{
		{"fits", lines(3, 10), 20, 5, 0, 0},
		{"taller", lines(12, 10), 20, 5, 7, 0},
		{"wider", lines(3, 30), 20, 5, 0, 10},
		{"empty", nil, 20, 5, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v Viewport
			v.RecomputeBounds(tt.content, tt.width, tt.height)
			maxV, maxH := v.Bounds()
			if maxV != tt.wantV || maxH != tt.wantH {
				t.Errorf("Bounds() = (%d, %d), want (%d, %d)", maxV, maxH, tt.wantV, tt.wantH)
			}
		})
	}
}

func TestViewportClampsOnShrink(t *testing.T) {
	var v Viewport
	v.RecomputeBounds(lines(20, 40), 10, 5)
	v.ScrollToBottom()
	v.ScrollToEnd()
	if vert, horiz := v.Offsets(); vert != 15 || horiz != 30 {
		t.Fatalf("Offsets() = (%d, %d), want (15, 30)", vert, horiz)
	}

	v.RecomputeBounds(lines(8, 12), 10, 5)
	vert, horiz := v.Offsets()
	maxV, maxH := v.Bounds()
	if vert != 3 || horiz != 2 {
		t.Errorf("Offsets() after shrink = (%d, %d), want (3, 2)", vert, horiz)
	}
	if vert > maxV || horiz > maxH || vert < 0 || horiz < 0 {
		t.Errorf("Offsets() = (%d, %d) outside bounds (%d, %d)", vert, horiz, maxV, maxH)
	}
}

func TestViewportScrollIsClamped(t *testing.T) {
	var v Viewport
	v.RecomputeBounds(lines(7, 12), 10, 5)

	v.ScrollUp()
	v.ScrollLeft()
	if vert, horiz := v.Offsets(); vert != 0 || horiz != 0 {
		t.Errorf("Offsets() after scrolling past origin = (%d, %d)", vert, horiz)
	}

	for i := 0; i < 10; i++ {
		v.ScrollDown()
		v.ScrollRight()
	}
	if vert, horiz := v.Offsets(); vert != 2 || horiz != 2 {
		t.Errorf("Offsets() after scrolling past end = (%d, %d), want (2, 2)", vert, horiz)
	}

	v.ScrollToTop()
	v.ScrollToStart()
	if vert, horiz := v.Offsets(); vert != 0 || horiz != 0 {
		t.Errorf("Offsets() after jump to origin = (%d, %d)", vert, horiz)
	}
}

func TestViewportScrollBeforeFirstDraw(t *testing.T) {
	var v Viewport
	v.ScrollDown()
	v.ScrollRight()
	if vert, horiz := v.Offsets(); vert != 0 || horiz != 0 {
		t.Errorf("Offsets() = (%d, %d), want origin before bounds are known", vert, horiz)
	}
}

func TestViewportVisible(t *testing.T) {
	var v Viewport
	content := []string{"0123456789", "abcdefghij", "ABCDEFGHIJ"}
	v.RecomputeBounds(content, 4, 2)
	v.ScrollDown()
	v.ScrollRight()
	v.ScrollRight()

	got := v.Visible(content, 4, 2)
	want := []string{"cdef", "CDEF"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Visible() = %q, want %q", got, want)
	}
}
