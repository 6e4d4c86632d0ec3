// Package viewport tracks the cursor and the visible window into a document.
//
// Cursor coordinates are logical: CX is a byte offset into the raw row and CY a
// row index. CY may equal the row count, meaning "after the last line", in which
// case CX is 0. RX is the tab-expanded column of CX and is derived by Reconcile.
package viewport

import "github.com/lixenwraith/vi-reader/document"

// Rows is the read-only view of the row store the engine needs
type Rows interface {
	NumRows() int
	Row(at int) *document.Row
}

// Direction of a single-cell cursor move
type Direction uint8

const (
	Left Direction = iota
	Right
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return "unknown"
}

// Viewport is the cursor and scroll state of one session
type Viewport struct {
	CX, CY int
	RX     int

	RowOffset int // First visible document row
	ColOffset int // First visible rendered column

	ScreenRows int // Text rows, status and message bars excluded
	ScreenCols int
}

// New creates a viewport at the document origin
func New(screenRows, screenCols int) *Viewport {
	return &Viewport{
		ScreenRows: screenRows,
		ScreenCols: screenCols,
	}
}

// CxToRx returns the rendered column of byte offset cx in raw
// Tabs advance to the next multiple of document.TabStop, every other byte by one
func CxToRx(raw []byte, cx int) int {
	if cx > len(raw) {
		cx = len(raw)
	}
	rx := 0
	for _, b := range raw[:cx] {
		if b == '\t' {
			rx += (document.TabStop - 1) - (rx % document.TabStop)
		}
		rx++
	}
	return rx
}

// --- Cursor motion ---

// Move applies one single-cell cursor motion
// Horizontal moves wrap across line ends; vertical moves clamp CX to the landing row
func (v *Viewport) Move(doc Rows, dir Direction) {
	row := doc.Row(v.CY)

	switch dir {
	case Left:
		if v.CX != 0 {
			v.CX--
		} else if v.CY > 0 {
			v.CY--
			v.CX = doc.Row(v.CY).Len()
		}
	case Right:
		if row != nil && v.CX < row.Len() {
			v.CX++
		} else if row != nil && v.CX == row.Len() {
			v.CY++
			v.CX = 0
		}
	case Up:
		if v.CY != 0 {
			v.CY--
		}
	case Down:
		if v.CY < doc.NumRows() {
			v.CY++
		}
	}

	v.clampCX(doc)
}

// Page moves one screen: snap to the window edge, then ScreenRows line moves
// Only Up and Down are meaningful; other directions are ignored
func (v *Viewport) Page(doc Rows, dir Direction) {
	switch dir {
	case Up:
		v.CY = v.RowOffset
	case Down:
		v.CY = v.RowOffset + v.ScreenRows - 1
		if v.CY > doc.NumRows() {
			v.CY = doc.NumRows()
		}
		if v.CY < 0 {
			v.CY = 0
		}
	default:
		return
	}

	for i := 0; i < v.ScreenRows; i++ {
		v.Move(doc, dir)
	}
	v.clampCX(doc)
}

// LineStart moves the cursor to column 0
func (v *Viewport) LineStart() {
	v.CX = 0
}

// LineEnd moves the cursor past the last byte of the current row
// No-op on the after-last-line position
func (v *Viewport) LineEnd(doc Rows) {
	if row := doc.Row(v.CY); row != nil {
		v.CX = row.Len()
	}
}

// clampCX keeps CX within the current row, 0 after the last line
func (v *Viewport) clampCX(doc Rows) {
	rowLen := 0
	if row := doc.Row(v.CY); row != nil {
		rowLen = row.Len()
	}
	if v.CX > rowLen {
		v.CX = rowLen
	}
}

// --- Scroll ---

// Reconcile derives RX from CX and shifts the offsets so the cursor is visible
// Must run after every cursor mutation and before compositing a frame
func (v *Viewport) Reconcile(doc Rows) {
	v.RX = 0
	if row := doc.Row(v.CY); row != nil {
		v.RX = CxToRx(row.Raw, v.CX)
	}

	if v.CY < v.RowOffset {
		v.RowOffset = v.CY
	}
	if v.CY >= v.RowOffset+v.ScreenRows {
		v.RowOffset = v.CY - v.ScreenRows + 1
	}

	if v.RX < v.ColOffset {
		v.ColOffset = v.RX
	}
	if v.RX >= v.ColOffset+v.ScreenCols {
		v.ColOffset = v.RX - v.ScreenCols + 1
	}
}
