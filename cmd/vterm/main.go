// Command vterm is the host entry point: it puts the controlling
// terminal into raw mode, starts one panel running the user's shell, and
// drives the PTY <-> engine <-> renderer loop. Matches the teacher's
// cli/example/main.go role (a thin main wiring the library types
// together) rather than the original project's decorative "play"
// program, which spec.md §1 excludes.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/kelvinarch/vterm/config"
	"github.com/kelvinarch/vterm/hostterm"
	"github.com/kelvinarch/vterm/mux"
	"github.com/kelvinarch/vterm/pty"
	"github.com/kelvinarch/vterm/render"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("vterm: config load failed, using defaults: %v", err)
	}

	raw, err := hostterm.Enter()
	if err != nil {
		log.Fatalf("vterm: failed to enter raw mode: %v", err)
	}
	defer raw.Restore()

	cols, rows, err := hostterm.Size()
	if err != nil {
		cols, rows = 80, 24
	}

	layout := mux.Layout{Kind: mux.LayoutTiled}
	renderer := render.NewRenderer(os.Stdout, render.BorderSingle)
	host := mux.NewHost(renderer, cols, rows, layout, cfg.StatusLine)

	if _, err := host.AddPanel(cfg.Shell); err != nil {
		log.Fatalf("vterm: failed to start shell: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		cancel()
	}()

	stopResize := make(chan struct{})
	defer close(stopResize)
	go pty.WatchResize(os.Stdin, stopResize, host.Resize)

	go copyInput(ctx, host)

	if err := host.Run(ctx); err != nil {
		log.Printf("vterm: host loop exited: %v", err)
	}
	host.Close()
}

// copyInput reads keystrokes from stdin and routes them through the key
// router to either a multiplexer command or the focused panel's PTY.
func copyInput(ctx context.Context, host *mux.Host) {
	router := &mux.KeyRouter{}
	buf := make([]byte, 1)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		n, err := os.Stdin.Read(buf)
		if err != nil {
			return
		}
		if n == 0 {
			continue
		}
		cmd, consumed := router.Feed(buf[0])
		if !consumed {
			if p := host.Focused(); p != nil {
				p.Session.Write(buf[:1])
			}
			continue
		}
		switch cmd {
		case mux.CommandNewPanel:
			host.AddPanel("")
		case mux.CommandNextPanel:
			host.FocusNext()
		}
	}
}
