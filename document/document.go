package document

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
)

// NoName is displayed for a document not backed by a file
const NoName = "[No Name]"

// Document is the row store, in file order
type Document struct {
	name string
	rows []Row
}

// New creates an empty document with the given display name ("" for none)
func New(name string) *Document {
	return &Document{name: name}
}

// Name returns the display name, NoName when the document has no file
func (d *Document) Name() string {
	if d.name == "" {
		return NoName
	}
	return d.name
}

// NumRows returns the row count
func (d *Document) NumRows() int {
	return len(d.rows)
}

// Row returns the row at index at, nil when out of range
func (d *Document) Row(at int) *Row {
	if at < 0 || at >= len(d.rows) {
		return nil
	}
	return &d.rows[at]
}

// RowLen returns the raw length of row at, 0 past the last row
func (d *Document) RowLen(at int) int {
	if r := d.Row(at); r != nil {
		return r.Len()
	}
	return 0
}

// Append adds a line; the slice is copied
func (d *Document) Append(line []byte) {
	raw := make([]byte, len(line))
	copy(raw, line)
	d.rows = append(d.rows, NewRow(raw))
}

// Open loads the file at path
func Open(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := Read(path, f)
	if err != nil {
		return nil, err
	}
	log.Printf("document: loaded %s, %d rows", path, doc.NumRows())
	return doc, nil
}

// Read builds a document from r, one row per line
// Trailing '\n' and '\r' bytes are stripped from each line
func Read(name string, r io.Reader) (*Document, error) {
	doc := New(name)
	br := bufio.NewReader(r)

	for {
		line, err := br.ReadBytes('\n')
		if len(line) > 0 {
			doc.Append(bytes.TrimRight(line, "\r\n"))
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return doc, nil
			}
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
	}
}
