// Package pty hosts a child shell behind a pseudo-terminal, adapted from
// the teacher's own pty.go/pty_unix.go (the Session-shaped interface)
// and RavenTerminal's shell/pty.go (shell discovery, environment
// construction), but built on github.com/creack/pty directly instead of
// the teacher's hand-rolled cgo syscalls, since creack/pty is the pack's
// own demonstrated, directly-imported way of doing this.
package pty

import (
	"os"
	"os/exec"
	"os/user"
	"strings"
	"sync"
	"syscall"

	"github.com/creack/pty"
)

// Session manages a pseudo-terminal connection to a shell, guarded by a
// mutex since it is written from the host's input goroutine and resize
// handler while being read from the PTY-reader goroutine, matching the
// teacher's PtySession/Buffer locking split.
type Session struct {
	cmd *exec.Cmd
	f   *os.File

	mu       sync.Mutex
	exitedMu sync.Mutex
	exited   bool
}

// Start spawns the login shell (the user's $SHELL, falling back to
// /etc/passwd and then a hardcoded list) behind a PTY of the given size.
func Start(cols, rows int, shellOverride string) (*Session, error) {
	shell := findShell(shellOverride)

	u, err := user.Current()
	if err != nil {
		return nil, err
	}

	cmd := exec.Command(shell, "-i")
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	cmd.Dir = u.HomeDir
	cmd.Env = append(os.Environ(),
		"TERM=xterm-256color",
		"COLORTERM=truecolor",
	)

	f, err := pty.StartWithSize(cmd, &pty.Winsize{Cols: uint16(cols), Rows: uint16(rows)})
	if err != nil {
		return nil, err
	}

	s := &Session{cmd: cmd, f: f}
	go func() {
		cmd.Wait()
		s.exitedMu.Lock()
		s.exited = true
		s.exitedMu.Unlock()
	}()
	return s, nil
}

func findShell(override string) string {
	if override != "" {
		if _, err := os.Stat(override); err == nil {
			return override
		}
	}
	if shell := os.Getenv("SHELL"); shell != "" {
		if _, err := os.Stat(shell); err == nil {
			return shell
		}
	}
	if u, err := user.Current(); err == nil {
		if shell := shellFromPasswd(u.Username); shell != "" {
			if _, err := os.Stat(shell); err == nil {
				return shell
			}
		}
	}
	for _, candidate := range []string{"/bin/bash", "/usr/bin/bash", "/bin/zsh", "/bin/sh"} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return "/bin/sh"
}

func shellFromPasswd(username string) string {
	data, err := os.ReadFile("/etc/passwd")
	if err != nil {
		return ""
	}
	for _, line := range strings.Split(string(data), "\n") {
		fields := strings.Split(line, ":")
		if len(fields) >= 7 && fields[0] == username {
			return fields[6]
		}
	}
	return ""
}

// Read reads bytes the shell produced.
func (s *Session) Read(p []byte) (int, error) { return s.f.Read(p) }

// Write sends bytes (typically keystrokes) to the shell.
func (s *Session) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.f.Write(p)
}

// Resize propagates a new window size to the PTY, which delivers
// SIGWINCH to the child.
func (s *Session) Resize(cols, rows int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pty.Setsize(s.f, &pty.Winsize{Cols: uint16(cols), Rows: uint16(rows)})
}

// Exited reports whether the child process has terminated.
func (s *Session) Exited() bool {
	s.exitedMu.Lock()
	defer s.exitedMu.Unlock()
	return s.exited
}

// Close kills the child (if still running) and releases the PTY.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cmd.Process != nil {
		s.cmd.Process.Kill()
	}
	return s.f.Close()
}
