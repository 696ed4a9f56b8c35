//go:build !windows

package pty

import (
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
)

// HostWinsize reads the controlling terminal's current size via
// TIOCGWINSZ, used to size the panel grid at startup.
func HostWinsize(f *os.File) (cols, rows int, err error) {
	ws, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Col), int(ws.Row), nil
}

// WatchResize calls onResize once immediately and again every time the
// host terminal receives SIGWINCH, until stop is closed. It is the
// companion to golang.org/x/term's raw-mode handling: raw mode changes
// how input is read, this notifies when the window changes shape.
func WatchResize(f *os.File, stop <-chan struct{}, onResize func(cols, rows int)) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGWINCH)
	defer signal.Stop(ch)

	report := func() {
		if cols, rows, err := HostWinsize(f); err == nil {
			onResize(cols, rows)
		}
	}
	report()
	for {
		select {
		case <-stop:
			return
		case <-ch:
			report()
		}
	}
}
