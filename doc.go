// Package vterm implements a terminal emulator engine: a byte-level parser
// for the ANSI/ECMA-48/DEC control sequences a shell emits, and a screen
// model that applies the resulting events to a cell grid.
//
// The engine performs no I/O. A host feeds it bytes read from a PTY and
// reads the grid back out for rendering; see the sibling pty, mux and
// render packages for that side of the system.
package vterm
