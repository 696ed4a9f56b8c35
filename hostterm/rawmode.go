// Package hostterm puts the controlling terminal into raw mode for the
// life of a multiplexer session, grounded on the teacher's cli/terminal.go
// (which imports golang.org/x/term for the same purpose) rather than
// hand-rolled termios syscalls.
package hostterm

import (
	"os"

	"golang.org/x/term"
)

// RawSession holds the saved terminal state needed to restore cooked
// mode on exit.
type RawSession struct {
	fd    int
	saved *term.State
}

// Enter puts stdin into raw mode (no line buffering, no local echo, no
// signal-generating control characters), returning a session that must
// be restored with Restore.
func Enter() (*RawSession, error) {
	fd := int(os.Stdin.Fd())
	saved, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return &RawSession{fd: fd, saved: saved}, nil
}

// Restore puts the terminal back into the mode it was in before Enter.
func (r *RawSession) Restore() error {
	return term.Restore(r.fd, r.saved)
}

// Size reports the controlling terminal's current column/row count, used
// as the default panel-grid dimensions at startup.
func Size() (cols, rows int, err error) {
	return term.GetSize(int(os.Stdin.Fd()))
}
