// Package render composes full-screen frames for the viewer.
//
// A frame is built in one growable buffer and handed to the terminal in a
// single write; nothing is emitted while the frame is being assembled.
package render

import (
	"bytes"
	"time"

	"github.com/lixenwraith/vi-reader/document"
	"github.com/lixenwraith/vi-reader/status"
	"github.com/lixenwraith/vi-reader/terminal"
	"github.com/lixenwraith/vi-reader/viewport"
)

// Frame is the state one frame is composed from
// View must have been reconciled against Doc
type Frame struct {
	Doc     *document.Document
	View    *viewport.Viewport
	Message *status.Message
	Now     time.Time
}

// Compositor owns the frame buffer, reused across frames
type Compositor struct {
	banner string
	buf    bytes.Buffer
}

// NewCompositor creates a compositor showing banner on an empty document
func NewCompositor(banner string) *Compositor {
	return &Compositor{banner: banner}
}

// Render composes f and writes it with one call
func (c *Compositor) Render(w terminal.Writer, f Frame) error {
	return w.Write(c.Compose(f))
}

// Compose builds the frame bytes
// The returned slice is valid until the next Compose
func (c *Compositor) Compose(f Frame) []byte {
	b := &c.buf
	b.Reset()

	b.Write(terminal.CSICursorHide)
	b.Write(terminal.CSIHome)

	c.drawRows(b, f)
	drawStatusBar(b, f)
	drawMessageBar(b, f)

	v := f.View
	terminal.WriteCursorPos(b, v.RX-v.ColOffset, v.CY-v.RowOffset)
	b.Write(terminal.CSICursorShow)

	return b.Bytes()
}

// drawRows emits every text row: document slice, banner or "~" filler
func (c *Compositor) drawRows(b *bytes.Buffer, f Frame) {
	v := f.View
	numRows := f.Doc.NumRows()

	for y := 0; y < v.ScreenRows; y++ {
		fileRow := y + v.RowOffset
		switch {
		case fileRow < numRows:
			b.Write(visibleSlice(f.Doc.Row(fileRow).Render, v.ColOffset, v.ScreenCols))
		case numRows == 0 && y == v.ScreenRows/3:
			c.drawBanner(b, v.ScreenCols)
		default:
			b.WriteByte('~')
		}

		b.Write(terminal.CSIEraseLine)
		b.Write(terminal.CRLF)
	}
}

// visibleSlice clips render to [colOffset, colOffset+cols)
func visibleSlice(render []byte, colOffset, cols int) []byte {
	if colOffset >= len(render) {
		return nil
	}
	end := colOffset + cols
	if end > len(render) {
		end = len(render)
	}
	return render[colOffset:end]
}
