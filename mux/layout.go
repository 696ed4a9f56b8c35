package mux

import "github.com/kelvinarch/vterm/render"

// LayoutKind selects how panel rects are derived from the host terminal
// size, generalizing the teacher's buffer_splits.go idea of splitting one
// buffer's display area into sub-regions to splitting the *host*
// terminal across N panels instead.
type LayoutKind int

const (
	LayoutTiled LayoutKind = iota
	LayoutOverlay
)

// Layout computes each panel's on-screen rectangle for a given host
// terminal size and panel count.
type Layout struct {
	Kind LayoutKind
}

// Rects returns one render.Rect per panel, reserving the bottom row for
// a status line when statusLine is true.
func (l Layout) Rects(cols, rows, panelCount int, statusLine bool) []render.Rect {
	if panelCount <= 0 {
		return nil
	}
	usableRows := rows
	if statusLine {
		usableRows--
	}
	if usableRows < 1 {
		usableRows = 1
	}

	if l.Kind == LayoutOverlay {
		rects := make([]render.Rect, panelCount)
		for i := range rects {
			rects[i] = render.Rect{X: 0, Y: 0, Width: cols - 2, Height: usableRows - 2}
		}
		return rects
	}

	// Tiled: split into roughly even columns across a single row of
	// panels, leaving a one-cell gutter for borders between them.
	rects := make([]render.Rect, panelCount)
	colWidth := (cols - (panelCount - 1)) / panelCount
	x := 0
	for i := 0; i < panelCount; i++ {
		w := colWidth
		if i == panelCount-1 {
			w = cols - x
		}
		rects[i] = render.Rect{X: x, Y: 0, Width: w - 2, Height: usableRows - 2}
		x += w + 1
	}
	return rects
}
