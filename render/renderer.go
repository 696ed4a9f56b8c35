package render

import (
	"io"
	"strings"
	"sync"

	"github.com/kelvinarch/vterm"
)

// BorderStyle selects the box-drawing glyphs used around a panel,
// grounded on the teacher's cli/renderer.go borderStyles table.
type BorderStyle int

const (
	BorderNone BorderStyle = iota
	BorderSingle
	BorderDouble
	BorderHeavy
)

type borderCharSet struct {
	topLeft, topRight, bottomLeft, bottomRight rune
	horizontal, vertical                       rune
}

var borderStyles = map[BorderStyle]borderCharSet{
	BorderSingle: {'┌', '┐', '└', '┘', '─', '│'},
	BorderDouble: {'╔', '╗', '╚', '╝', '═', '║'},
	BorderHeavy:  {'┏', '┓', '┗', '┛', '━', '┃'},
}

// Rect is a panel's position and size within the host terminal, in cells.
type Rect struct {
	X, Y, Width, Height int
}

// PanelView is everything the renderer needs to paint one panel: its
// screen-space rectangle and the vterm.Screen whose grid fills it.
type PanelView struct {
	Rect    Rect
	Screen  *vterm.Screen
	Title   string
	Focused bool
}

type renderedCell struct {
	codepoint rune
	fg, bg    int
	attrs     vterm.Attrs
}

// Renderer performs differential rendering of a set of panels to an
// io.Writer, adapted from the teacher's cli/renderer.go: only cells that
// changed since the previous frame emit escape codes.
type Renderer struct {
	out         io.Writer
	mu          sync.Mutex
	last        map[int]map[[2]int]renderedCell // panel index -> (row,col) -> cell
	borderStyle BorderStyle
}

// NewRenderer constructs a Renderer writing to out.
func NewRenderer(out io.Writer, style BorderStyle) *Renderer {
	return &Renderer{out: out, last: make(map[int]map[[2]int]renderedCell), borderStyle: style}
}

// Render paints every panel, drawing a border in the renderer's border
// style around each one when more than one panel is visible. The focused
// panel's border is drawn the same as the others.
func (r *Renderer) Render(panels []PanelView) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var b strings.Builder
	multiplePanels := len(panels) > 1

	for i, pv := range panels {
		if multiplePanels && r.borderStyle != BorderNone {
			r.drawBorder(&b, pv)
		}
		r.renderPanel(&b, i, pv)
	}

	io.WriteString(r.out, b.String())
}

func (r *Renderer) drawBorder(b *strings.Builder, pv PanelView) {
	chars := borderStyles[r.borderStyle]
	x, y, w, h := pv.Rect.X, pv.Rect.Y, pv.Rect.Width, pv.Rect.Height

	moveTo(b, x, y)
	b.WriteRune(chars.topLeft)
	for i := 0; i < w; i++ {
		b.WriteRune(chars.horizontal)
	}
	b.WriteRune(chars.topRight)

	for row := 1; row <= h; row++ {
		moveTo(b, x, y+row)
		b.WriteRune(chars.vertical)
		moveTo(b, x+w+1, y+row)
		b.WriteRune(chars.vertical)
	}

	moveTo(b, x, y+h+1)
	b.WriteRune(chars.bottomLeft)
	for i := 0; i < w; i++ {
		b.WriteRune(chars.horizontal)
	}
	b.WriteRune(chars.bottomRight)
}

func (r *Renderer) renderPanel(b *strings.Builder, index int, pv PanelView) {
	frame, ok := r.last[index]
	if !ok {
		frame = make(map[[2]int]renderedCell)
		r.last[index] = frame
	}

	s := pv.Screen
	var current vterm.Pen
	havePen := false

	for row := 0; row < s.Height(); row++ {
		for col := 0; col < s.Width(); col++ {
			cell := s.Cell(row, col)
			rc := renderedCell{codepoint: cell.Codepoint, fg: cell.Fg, bg: cell.Bg, attrs: cell.Attrs}
			key := [2]int{row, col}
			if frame[key] == rc {
				continue
			}
			frame[key] = rc

			if !havePen || current.Fg != cell.Fg || current.Bg != cell.Bg || current.Attrs != cell.Attrs {
				b.WriteString(sgrSequence(cell.Fg, cell.Bg, cell.Attrs))
				current = vterm.Pen{Fg: cell.Fg, Bg: cell.Bg, Attrs: cell.Attrs}
				havePen = true
			}
			moveTo(b, pv.Rect.X+1+col, pv.Rect.Y+1+row)
			b.WriteRune(cell.Codepoint)
		}
	}

	if x, y, visible := s.CursorPos(); visible && pv.Focused {
		moveTo(b, pv.Rect.X+1+x, pv.Rect.Y+1+y)
	}
}

func moveTo(b *strings.Builder, col, row int) {
	b.WriteString("\x1b[")
	writeInt(b, row+1)
	b.WriteByte(';')
	writeInt(b, col+1)
	b.WriteByte('H')
}

func writeInt(b *strings.Builder, n int) {
	if n == 0 {
		b.WriteByte('0')
		return
	}
	var digits [10]byte
	i := len(digits)
	for n > 0 {
		i--
		digits[i] = byte('0' + n%10)
		n /= 10
	}
	b.Write(digits[i:])
}
