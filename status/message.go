// Package status holds the message shown in the bottom bar of the viewer.
package status

import (
	"fmt"
	"time"
	"unicode/utf8"
)

const (
	// MaxLen bounds the stored text in bytes
	MaxLen = 79

	// DefaultTimeout is how long a message stays on screen
	DefaultTimeout = 5 * time.Second
)

// Message is a status text with the time it was written
// Expiry is checked when reading; the text itself is kept
type Message struct {
	text      string
	writtenAt time.Time
	timeout   time.Duration
}

// NewMessage creates an empty message with the given display lifetime
// A non-positive timeout selects DefaultTimeout
func NewMessage(timeout time.Duration) *Message {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Message{timeout: timeout}
}

// Set formats and stores a message written at now
func (m *Message) Set(now time.Time, format string, args ...any) {
	m.text = truncate(fmt.Sprintf(format, args...), MaxLen)
	m.writtenAt = now
}

// Text returns the stored text regardless of expiry
func (m *Message) Text() string {
	return m.text
}

// Visible returns the text if it is non-empty and younger than the timeout
func (m *Message) Visible(now time.Time) (string, bool) {
	if m.text == "" || now.Sub(m.writtenAt) >= m.timeout {
		return "", false
	}
	return m.text, true
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
