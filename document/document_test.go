package document

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewRow_TabExpansion(t *testing.T) {
	tests := []struct {
		raw    string
		render string
	}{
		{"", ""},
		{"abc", "abc"},
		{"\t", "        "},
		{"a\tb", "a       b"},
		{"1234567\tx", "1234567 x"},
		{"12345678\tx", "12345678        x"},
		{"\t\t", strings.Repeat(" ", 16)},
		{"ab\tcd\te", "ab      cd      e"},
	}

	for _, tt := range tests {
		row := NewRow([]byte(tt.raw))
		if string(row.Render) != tt.render {
			t.Errorf("NewRow(%q).Render = %q, want %q", tt.raw, row.Render, tt.render)
		}
		if string(row.Raw) != tt.raw {
			t.Errorf("NewRow(%q).Raw = %q", tt.raw, row.Raw)
		}
	}
}

func TestRead_RoundTrip(t *testing.T) {
	lines := []string{"first", "", "\tindented", "trailing cr", "last without newline"}
	input := "first\n\n\tindented\ntrailing cr\r\nlast without newline"

	doc, err := Read("mem", strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if doc.NumRows() != len(lines) {
		t.Fatalf("NumRows = %d, want %d", doc.NumRows(), len(lines))
	}
	for i, want := range lines {
		if got := string(doc.Row(i).Raw); got != want {
			t.Errorf("row %d = %q, want %q", i, got, want)
		}
	}
}

func TestRead_Empty(t *testing.T) {
	doc, err := Read("empty", strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if doc.NumRows() != 0 {
		t.Errorf("NumRows = %d, want 0", doc.NumRows())
	}
}

func TestRead_LongLine(t *testing.T) {
	long := bytes.Repeat([]byte("x"), 200000)
	doc, err := Read("long", bytes.NewReader(append(long, '\n')))
	if err != nil {
		t.Fatal(err)
	}
	if doc.NumRows() != 1 || doc.RowLen(0) != len(long) {
		t.Errorf("got %d rows, first len %d", doc.NumRows(), doc.RowLen(0))
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk gone") }

func TestRead_Error(t *testing.T) {
	if _, err := Read("bad", failingReader{}); err == nil {
		t.Error("expected read error")
	}
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	if err := os.WriteFile(path, []byte("one\ntwo\nthree\n"), 0644); err != nil {
		t.Fatal(err)
	}

	doc, err := Open(path)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	if doc.NumRows() != 3 {
		t.Errorf("NumRows = %d, want 3", doc.NumRows())
	}
	if doc.Name() != path {
		t.Errorf("Name = %q, want %q", doc.Name(), path)
	}

	if _, err := Open(filepath.Join(t.TempDir(), "missing")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Open missing = %v, want ErrNotExist", err)
	}
}

func TestDocument_Accessors(t *testing.T) {
	doc := New("")
	if doc.Name() != NoName {
		t.Errorf("Name = %q, want %q", doc.Name(), NoName)
	}
	if doc.Row(0) != nil || doc.Row(-1) != nil {
		t.Error("Row out of range should be nil")
	}

	line := []byte("abc")
	doc.Append(line)
	line[0] = 'X'
	if string(doc.Row(0).Raw) != "abc" {
		t.Error("Append did not copy the line")
	}
	if doc.RowLen(0) != 3 || doc.RowLen(1) != 0 {
		t.Errorf("RowLen = %d,%d", doc.RowLen(0), doc.RowLen(1))
	}
}
