package terminal

import "fmt"

// Source yields terminal input one byte at a time
// ok is false when the bounded read timeout elapsed with no byte available
type Source interface {
	ReadByte() (b byte, ok bool, err error)
}

// decodeState enumerates the escape-sequence decoder states
type decodeState uint8

const (
	stateStart decodeState = iota
	stateEscape1
	stateCSI
	stateCSIParam
	stateSS3
)

func (s decodeState) String() string {
	switch s {
	case stateStart:
		return "start"
	case stateEscape1:
		return "escape"
	case stateCSI:
		return "csi"
	case stateCSIParam:
		return "csi-param"
	case stateSS3:
		return "ss3"
	}
	return "unknown"
}

const escapeByte = 0x1b

// Decoder turns a raw byte stream into logical key events
// Sequences are decoded with bounded lookahead; a timeout or an unexpected byte
// anywhere past the leading ESC degrades to a bare KeyEscape
type Decoder struct {
	src Source
}

// NewDecoder creates a decoder reading from src
func NewDecoder(src Source) *Decoder {
	return &Decoder{src: src}
}

var bareEscape = Event{Key: KeyEscape}

// Next blocks until one key is decoded
// Timeouts in the start state are retried; read errors are returned as-is
func (d *Decoder) Next() (Event, error) {
	state := stateStart
	var param byte

	for {
		switch state {
		case stateStart:
			b, ok, err := d.src.ReadByte()
			if err != nil {
				return Event{}, fmt.Errorf("read input: %w", err)
			}
			if !ok {
				continue
			}
			if b != escapeByte {
				return byteEvent(b), nil
			}
			state = stateEscape1

		case stateEscape1:
			b, ok, err := d.read(state)
			if err != nil || !ok {
				return bareEscape, err
			}
			switch b {
			case '[':
				state = stateCSI
			case 'O':
				state = stateSS3
			default:
				return bareEscape, nil
			}

		case stateCSI:
			b, ok, err := d.read(state)
			if err != nil || !ok {
				return bareEscape, err
			}
			if key, found := csiLetters[b]; found {
				return Event{Key: key}, nil
			}
			if b >= '0' && b <= '9' {
				param = b
				state = stateCSIParam
				continue
			}
			return bareEscape, nil

		case stateCSIParam:
			b, ok, err := d.read(state)
			if err != nil || !ok {
				return bareEscape, err
			}
			if b != '~' {
				return bareEscape, nil
			}
			if key, found := csiDigits[param]; found {
				return Event{Key: key}, nil
			}
			return bareEscape, nil

		case stateSS3:
			b, ok, err := d.read(state)
			if err != nil || !ok {
				return bareEscape, err
			}
			if key, found := ss3Letters[b]; found {
				return Event{Key: key}, nil
			}
			return bareEscape, nil
		}
	}
}

// read performs a single bounded read inside an escape sequence
func (d *Decoder) read(state decodeState) (byte, bool, error) {
	b, ok, err := d.src.ReadByte()
	if err != nil {
		return 0, false, fmt.Errorf("read input (%s): %w", state, err)
	}
	return b, ok, nil
}
