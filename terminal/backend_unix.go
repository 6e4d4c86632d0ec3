//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Device is the controlling terminal: raw input on in, frames on out
type Device struct {
	in    *os.File
	out   *os.File
	inFd  int
	outFd int

	raw *RawMode
	buf [1]byte
}

// NewDevice wraps the given files; the terminal is untouched until Enable
func NewDevice(in, out *os.File) *Device {
	inFd := int(in.Fd())
	return &Device{
		in:    in,
		out:   out,
		inFd:  inFd,
		outFd: int(out.Fd()),
		raw:   NewRawMode(inFd),
	}
}

// Enable enters raw mode
func (d *Device) Enable() error {
	return d.raw.Enable()
}

// Disable restores the terminal configuration captured by Enable
func (d *Device) Disable() error {
	return d.raw.Disable()
}

// ReadByte performs one bounded read
// A zero-byte read (VTIME expiry), EAGAIN and EINTR all report ok=false
func (d *Device) ReadByte() (byte, bool, error) {
	n, err := unix.Read(d.inFd, d.buf[:])
	if err != nil {
		if err == unix.EAGAIN || err == unix.EINTR {
			return 0, false, nil
		}
		return 0, false, err
	}
	if n == 0 {
		return 0, false, nil
	}
	return d.buf[0], true, nil
}

// Write writes p to the terminal in a single call
func (d *Device) Write(p []byte) error {
	n, err := d.out.Write(p)
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if n != len(p) {
		return fmt.Errorf("write output: short write %d/%d", n, len(p))
	}
	return nil
}

// Size returns terminal dimensions in columns and rows
// Falls back to the cursor-position probe when the window size ioctl is unusable
func (d *Device) Size() (int, int, error) {
	cols, rows, err := term.GetSize(d.outFd)
	if err == nil && cols > 0 {
		log.Printf("terminal: size %dx%d from window size", cols, rows)
		return cols, rows, nil
	}
	cols, rows, err = ProbeSize(d, d)
	if err != nil {
		return 0, 0, fmt.Errorf("cursor probe: %w", err)
	}
	log.Printf("terminal: size %dx%d from cursor probe", cols, rows)
	return cols, rows, nil
}
