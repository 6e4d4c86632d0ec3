// Package terminal provides direct ANSI terminal control for the viewer.
//
// Features:
//   - Raw mode with a bounded read timeout (VMIN=0, VTIME=1)
//   - Guaranteed restoration of the captured termios state
//   - Byte-at-a-time key decoding with an explicit escape-sequence state machine
//   - Window size query with a cursor-position probe fallback
//   - Emergency reset for panic paths
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI sequences.
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
