package render

import (
	"bytes"
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/vi-reader/terminal"
)

// nameWidth bounds the file name shown in the status bar, in columns
const nameWidth = 20

// drawBanner centers the welcome banner; the left padding starts with the "~" filler
func (c *Compositor) drawBanner(b *bytes.Buffer, cols int) {
	welcome := runewidth.Truncate(c.banner, cols, "")
	padding := (cols - runewidth.StringWidth(welcome)) / 2
	if padding > 0 {
		b.WriteByte('~')
		padding--
	}
	for ; padding > 0; padding-- {
		b.WriteByte(' ')
	}
	b.WriteString(welcome)
}

// drawStatusBar emits the inverse band: name and line count left, cursor line right
func drawStatusBar(b *bytes.Buffer, f Frame) {
	cols := f.View.ScreenCols
	numRows := f.Doc.NumRows()

	left := fmt.Sprintf("%s - %d lines", runewidth.Truncate(f.Doc.Name(), nameWidth, ""), numRows)
	right := fmt.Sprintf("%d/%d", f.View.CY+1, numRows)

	b.Write(terminal.CSIReverse)

	width := runewidth.StringWidth(left)
	if width > cols {
		left = runewidth.Truncate(left, cols, "")
		width = runewidth.StringWidth(left)
	}
	b.WriteString(left)

	rightWidth := runewidth.StringWidth(right)
	for width < cols {
		if cols-width == rightWidth {
			b.WriteString(right)
			break
		}
		b.WriteByte(' ')
		width++
	}

	b.Write(terminal.CSISGR0)
	b.Write(terminal.CRLF)
}

// drawMessageBar emits the status message while it has not expired
func drawMessageBar(b *bytes.Buffer, f Frame) {
	b.Write(terminal.CSIEraseLine)
	if f.Message == nil {
		return
	}
	if text, ok := f.Message.Visible(f.Now); ok {
		b.WriteString(runewidth.Truncate(text, f.View.ScreenCols, ""))
	}
}
