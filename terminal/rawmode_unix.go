//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"errors"
	"fmt"
	"log"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// ErrNotTerminal is returned by Enable when the fd is not a tty
var ErrNotTerminal = errors.New("input is not a terminal")

// RawMode owns the raw configuration of one terminal fd
// Enable captures the current termios; Disable restores exactly that capture
type RawMode struct {
	fd    int
	saved *unix.Termios
}

// NewRawMode creates a controller for fd; nothing is changed until Enable
func NewRawMode(fd int) *RawMode {
	return &RawMode{fd: fd}
}

// Enable switches the terminal to raw mode with a 100ms read timeout
// Callers must register Disable (defer) immediately after a nil return
func (r *RawMode) Enable() error {
	if r.saved != nil {
		return nil
	}
	if !term.IsTerminal(r.fd) {
		return fmt.Errorf("tcgetattr: %w", ErrNotTerminal)
	}

	orig, err := unix.IoctlGetTermios(r.fd, ioctlReadTermios)
	if err != nil {
		return fmt.Errorf("tcgetattr: %w", err)
	}

	raw := makeRaw(*orig)
	if err := unix.IoctlSetTermios(r.fd, ioctlWriteTermios, &raw); err != nil {
		return fmt.Errorf("tcsetattr: enable raw mode: %w", err)
	}

	r.saved = orig
	log.Printf("terminal: raw mode enabled on fd %d", r.fd)
	return nil
}

// Disable restores the captured configuration. Safe to call multiple times
func (r *RawMode) Disable() error {
	if r.saved == nil {
		return nil
	}
	if err := unix.IoctlSetTermios(r.fd, ioctlWriteTermios, r.saved); err != nil {
		return fmt.Errorf("tcsetattr: restore terminal: %w", err)
	}
	r.saved = nil
	log.Printf("terminal: raw mode disabled on fd %d", r.fd)
	return nil
}

// Enabled reports whether a captured configuration is pending restoration
func (r *RawMode) Enabled() bool {
	return r.saved != nil
}

// makeRaw derives the raw configuration from a captured one
// No line buffering, echo, signal keys or CR/NL translation; reads return after 1/10s
func makeRaw(t unix.Termios) unix.Termios {
	t.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	t.Oflag &^= unix.OPOST
	t.Cflag |= unix.CS8
	t.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	t.Cc[unix.VMIN] = 0
	t.Cc[unix.VTIME] = 1
	return t
}
