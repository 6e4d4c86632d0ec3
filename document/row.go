// Package document holds the loaded text as an ordered store of rows.
package document

// TabStop is the rendered column multiple a tab advances to
const TabStop = 8

// Row is one line of the document
// Render is derived from Raw and is never mutated on its own
type Row struct {
	Raw    []byte
	Render []byte
}

// NewRow creates a row from raw line content (no line terminator)
func NewRow(raw []byte) Row {
	r := Row{Raw: raw}
	r.update()
	return r
}

// Len returns the raw length in bytes
func (r *Row) Len() int {
	return len(r.Raw)
}

// update recomputes Render from Raw, expanding each tab to the next TabStop multiple
func (r *Row) update() {
	tabs := 0
	for _, b := range r.Raw {
		if b == '\t' {
			tabs++
		}
	}

	render := make([]byte, 0, len(r.Raw)+tabs*(TabStop-1))
	for _, b := range r.Raw {
		if b != '\t' {
			render = append(render, b)
			continue
		}
		render = append(render, ' ')
		for len(render)%TabStop != 0 {
			render = append(render, ' ')
		}
	}
	r.Render = render
}
