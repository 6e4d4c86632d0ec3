package terminal

// Pre-allocated ANSI sequence fragments (avoid allocations during render)
var (
	CSIClear      = []byte("\x1b[2J")
	CSIHome       = []byte("\x1b[H")
	CSIEraseLine  = []byte("\x1b[K")
	CSICursorHide = []byte("\x1b[?25l")
	CSICursorShow = []byte("\x1b[?25h")
	CSIReverse    = []byte("\x1b[7m")
	CSISGR0       = []byte("\x1b[m")
	CRLF          = []byte("\r\n")

	csiCursorPos = []byte("\x1b[") // followed by row;colH
	csiRIS       = []byte("\x1bc") // Reset to Initial State (emergency)

	// Cursor-position probe: push to bottom-right, then request a report
	csiCursorFar     = []byte("\x1b[999C\x1b[999B")
	csiCursorRequest = []byte("\x1b[6n")
)

// ByteWriter is satisfied by *bytes.Buffer and *bufio.Writer
type ByteWriter interface {
	Write(p []byte) (int, error)
	WriteByte(c byte) error
}

// WriteInt writes a non-negative integer without allocation
// Optimized for terminal values (0-255 common, 0-999 typical max)
func WriteInt(w ByteWriter, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	if n < 100 {
		w.WriteByte(byte(n/10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	if n < 1000 {
		w.WriteByte(byte(n/100) + '0')
		w.WriteByte(byte(n/10%10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	// Fallback for >999 (rare)
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte(n%10) + '0'
		n /= 10
	}
	w.Write(buf[i:])
}

// WriteCursorPos writes a cursor positioning sequence (0-indexed input)
func WriteCursorPos(w ByteWriter, x, y int) {
	w.Write(csiCursorPos)
	WriteInt(w, y+1)
	w.WriteByte(';')
	WriteInt(w, x+1)
	w.WriteByte('H')
}
