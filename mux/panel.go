// Package mux hosts several pseudo-terminal sessions in tiled regions of
// the user's screen, per spec.md §1's system overview: the one piece of
// the original system that sits directly on top of the vterm engine.
package mux

import (
	"github.com/kelvinarch/vterm"
	"github.com/kelvinarch/vterm/pty"
)

// Panel owns one PTY session and the Parser/Screen pair that interprets
// its output, per SPEC_FULL.md §12.
type Panel struct {
	ID      int
	Session *pty.Session
	Screen  *vterm.Screen
	Parser  *vterm.Parser
	Title   string
}

// NewPanel starts a shell and wires its output into a freshly
// constructed Screen of the given size.
func NewPanel(id, cols, rows int, shell string) (*Panel, error) {
	sess, err := pty.Start(cols, rows, shell)
	if err != nil {
		return nil, err
	}
	screen := vterm.NewScreen(cols, rows)
	parser := vterm.NewParser(screen)
	return &Panel{ID: id, Session: sess, Screen: screen, Parser: parser}, nil
}

// Feed decodes bytes read from the PTY into the panel's screen.
func (p *Panel) Feed(b []byte) {
	p.Parser.Feed(b)
	p.Title = p.Screen.Title()
}

// Resize propagates a new size to both the PTY and the screen model.
func (p *Panel) Resize(cols, rows int) error {
	p.Screen.Resize(cols, rows)
	return p.Session.Resize(cols, rows)
}

// Close tears down the panel's PTY session.
func (p *Panel) Close() error {
	return p.Session.Close()
}
