package terminal

import (
	"errors"
	"fmt"
)

// ErrBadCursorReport is returned when the terminal answers the probe with garbage
var ErrBadCursorReport = errors.New("malformed cursor position report")

// maxCursorReport bounds the probe response read
const maxCursorReport = 31

// Writer is the output half of a terminal
type Writer interface {
	Write(p []byte) error
}

// ProbeSize moves the cursor to the bottom-right corner and asks the terminal where it is
// The reported position is the screen size
func ProbeSize(w Writer, src Source) (cols, rows int, err error) {
	if err := w.Write(csiCursorFar); err != nil {
		return 0, 0, err
	}
	if err := w.Write(csiCursorRequest); err != nil {
		return 0, 0, err
	}

	var buf [maxCursorReport]byte
	n := 0
	for n < len(buf) {
		b, ok, err := src.ReadByte()
		if err != nil {
			return 0, 0, err
		}
		if !ok || b == 'R' {
			break
		}
		buf[n] = b
		n++
	}

	rows, cols, err = parseCursorReport(buf[:n])
	if err != nil {
		return 0, 0, err
	}
	return cols, rows, nil
}

// parseCursorReport parses "ESC [ rows ; cols" (terminating 'R' already stripped)
func parseCursorReport(p []byte) (rows, cols int, err error) {
	if len(p) < 2 || p[0] != escapeByte || p[1] != '[' {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadCursorReport, p)
	}

	var vals [2]int
	field := 0
	digits := 0
	for _, b := range p[2:] {
		switch {
		case b >= '0' && b <= '9':
			vals[field] = vals[field]*10 + int(b-'0')
			digits++
			if vals[field] > 9999 { // Sanity limit
				return 0, 0, fmt.Errorf("%w: %q", ErrBadCursorReport, p)
			}
		case b == ';' && field == 0 && digits > 0:
			field++
			digits = 0
		default:
			return 0, 0, fmt.Errorf("%w: %q", ErrBadCursorReport, p)
		}
	}
	if field != 1 || digits == 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadCursorReport, p)
	}
	return vals[0], vals[1], nil
}
