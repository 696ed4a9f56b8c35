package mux

import (
	"context"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/kelvinarch/vterm/render"
)

// Host owns a set of panels, their errgroup-supervised PTY-reader
// goroutines, a focus index, and the ~60Hz redraw tick, per §5's
// single readiness-wait scheduling model generalized to N panels.
type Host struct {
	mu         sync.Mutex
	panels     []*Panel
	focus      int
	layout     Layout
	cols       int
	rows       int
	renderer   *render.Renderer
	statusLine bool
}

// NewHost constructs a Host bound to the given renderer and initial host
// terminal size.
func NewHost(r *render.Renderer, cols, rows int, layout Layout, statusLine bool) *Host {
	return &Host{renderer: r, cols: cols, rows: rows, layout: layout, statusLine: statusLine}
}

// AddPanel starts a new panel sized to its slot in the current layout and
// adds it to the host, making it the focused panel.
func (h *Host) AddPanel(shell string) (*Panel, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := len(h.panels)
	rects := h.layout.Rects(h.cols, h.rows, id+1, h.statusLine)
	rect := rects[len(rects)-1]

	p, err := NewPanel(id, rect.Width, rect.Height, shell)
	if err != nil {
		return nil, err
	}
	h.panels = append(h.panels, p)
	h.focus = id
	return p, nil
}

// FocusNext switches focus to the next panel, wrapping around.
func (h *Host) FocusNext() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.panels) == 0 {
		return
	}
	h.focus = (h.focus + 1) % len(h.panels)
}

// Focused returns the currently focused panel, or nil if there are none.
func (h *Host) Focused() *Panel {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.panels) == 0 {
		return nil
	}
	return h.panels[h.focus]
}

// Resize recomputes the layout for a new host terminal size and resizes
// every panel to match.
func (h *Host) Resize(cols, rows int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cols, h.rows = cols, rows
	rects := h.layout.Rects(cols, rows, len(h.panels), h.statusLine)
	for i, p := range h.panels {
		if err := p.Resize(rects[i].Width, rects[i].Height); err != nil {
			log.Printf("mux: resize panel %d: %v", p.ID, err)
		}
	}
}

// Run starts one reader goroutine per panel and a redraw ticker, blocking
// until ctx is canceled or a panel's reader returns a fatal error.
func (h *Host) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	h.mu.Lock()
	panels := append([]*Panel(nil), h.panels...)
	h.mu.Unlock()

	for _, p := range panels {
		p := p
		g.Go(func() error { return h.readLoop(ctx, p) })
	}

	g.Go(func() error { return h.redrawLoop(ctx) })

	return g.Wait()
}

func (h *Host) readLoop(ctx context.Context, p *Panel) error {
	buf := make([]byte, 4096)
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}
		n, err := p.Session.Read(buf)
		if n > 0 {
			h.mu.Lock()
			p.Feed(buf[:n])
			h.mu.Unlock()
		}
		if err != nil {
			if p.Session.Exited() {
				return nil
			}
			return err
		}
	}
}

func (h *Host) redrawLoop(ctx context.Context) error {
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			h.redraw()
		}
	}
}

func (h *Host) redraw() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.panels) == 0 {
		return
	}
	rects := h.layout.Rects(h.cols, h.rows, len(h.panels), h.statusLine)
	views := make([]render.PanelView, len(h.panels))
	for i, p := range h.panels {
		views[i] = render.PanelView{
			Rect:    rects[i],
			Screen:  p.Screen,
			Title:   p.Title,
			Focused: i == h.focus,
		}
	}
	h.renderer.Render(views)
}

// Close tears down every panel.
func (h *Host) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	var firstErr error
	for _, p := range h.panels {
		if err := p.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
