package terminal

// Key represents a decoded logical key
type Key uint16

const (
	KeyNone Key = iota
	KeyRune     // Printable byte (check Event.Rune)

	// Control keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete

	// Navigation
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Ctrl+letter (Ctrl+A = 0x01, Ctrl+Z = 0x1A)
	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlG
	KeyCtrlK
	KeyCtrlL
	KeyCtrlN
	KeyCtrlO
	KeyCtrlP
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlS
	KeyCtrlT
	KeyCtrlU
	KeyCtrlV
	KeyCtrlW
	KeyCtrlX
	KeyCtrlY
	KeyCtrlZ

	// Ctrl+special
	KeyCtrlSpace
	KeyCtrlBackslash
	KeyCtrlBracketRight
	KeyCtrlCaret
	KeyCtrlUnderscore
)

// Event is one decoded key press
type Event struct {
	Key  Key
	Rune rune // Set for KeyRune
}

// controlKeys maps C0 control bytes to keys; 0x1b is handled by the decoder
var controlKeys = [0x20]Key{
	0x00: KeyCtrlSpace,
	0x01: KeyCtrlA,
	0x02: KeyCtrlB,
	0x03: KeyCtrlC,
	0x04: KeyCtrlD,
	0x05: KeyCtrlE,
	0x06: KeyCtrlF,
	0x07: KeyCtrlG,
	0x08: KeyBackspace, // Ctrl+H
	0x09: KeyTab,       // Ctrl+I
	0x0a: KeyEnter,     // Ctrl+J
	0x0b: KeyCtrlK,
	0x0c: KeyCtrlL,
	0x0d: KeyEnter, // Ctrl+M
	0x0e: KeyCtrlN,
	0x0f: KeyCtrlO,
	0x10: KeyCtrlP,
	0x11: KeyCtrlQ,
	0x12: KeyCtrlR,
	0x13: KeyCtrlS,
	0x14: KeyCtrlT,
	0x15: KeyCtrlU,
	0x16: KeyCtrlV,
	0x17: KeyCtrlW,
	0x18: KeyCtrlX,
	0x19: KeyCtrlY,
	0x1a: KeyCtrlZ,
	0x1b: KeyEscape,
	0x1c: KeyCtrlBackslash,
	0x1d: KeyCtrlBracketRight,
	0x1e: KeyCtrlCaret,
	0x1f: KeyCtrlUnderscore,
}

// byteEvent maps a single non-escape byte to its event
func byteEvent(b byte) Event {
	switch {
	case b < 0x20:
		return Event{Key: controlKeys[b]}
	case b == 0x7f:
		return Event{Key: KeyBackspace}
	default:
		return Event{Key: KeyRune, Rune: rune(b)}
	}
}

// csiLetters maps the final byte of ESC [ X sequences
var csiLetters = map[byte]Key{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
}

// csiDigits maps the parameter digit of ESC [ N ~ sequences
var csiDigits = map[byte]Key{
	'1': KeyHome,
	'7': KeyHome,
	'4': KeyEnd,
	'8': KeyEnd,
	'5': KeyPageUp,
	'6': KeyPageDown,
	'3': KeyDelete,
}

// ss3Letters maps the final byte of ESC O X sequences
var ss3Letters = map[byte]Key{
	'H': KeyHome,
	'F': KeyEnd,
}
