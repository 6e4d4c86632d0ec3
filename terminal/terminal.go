package terminal

import (
	"io"
	"os"
)

// Terminal is the raw-mode device a session drives
type Terminal interface {
	Source
	Writer

	// Size returns current terminal dimensions
	Size() (cols, rows int, err error)
}

// ClearScreen writes the clear and home sequences so the shell resumes at a sane position
func ClearScreen(w Writer) error {
	buf := make([]byte, 0, len(CSIClear)+len(CSIHome))
	buf = append(buf, CSIClear...)
	buf = append(buf, CSIHome...)
	return w.Write(buf)
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if the deferred Disable cannot be trusted
func EmergencyReset(w io.Writer) {
	w.Write(CSISGR0)
	w.Write(CSIClear)
	w.Write(CSIHome)
	w.Write(CSICursorShow)
	w.Write(csiRIS)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}
