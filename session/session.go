// Package session runs the viewer loop: reconcile, draw, read one key, dispatch.
//
// The session owns the document, the viewport and the status message. Nothing
// else touches them and no goroutines are started.
package session

import (
	"fmt"
	"log"

	"github.com/lixenwraith/vi-reader/document"
	"github.com/lixenwraith/vi-reader/input"
	"github.com/lixenwraith/vi-reader/render"
	"github.com/lixenwraith/vi-reader/status"
	"github.com/lixenwraith/vi-reader/terminal"
	"github.com/lixenwraith/vi-reader/viewport"
)

// State is the session lifecycle state
type State uint8

const (
	StateRunning State = iota
	StateTerminating
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateTerminating:
		return "terminating"
	}
	return "unknown"
}

// barRows is the number of screen rows reserved for the status and message bars
const barRows = 2

// Options configures a session
type Options struct {
	Doc         *document.Document
	Keys        *input.KeyTable
	Message     *status.Message
	Banner      string
	HelpMessage string
	Clock       Clock
}

// Session is the single owner of all viewer state
type Session struct {
	term  terminal.Terminal
	dec   *terminal.Decoder
	doc   *document.Document
	view  *viewport.Viewport
	msg   *status.Message
	keys  *input.KeyTable
	comp  *render.Compositor
	clock Clock
	state State
}

// New sizes the viewport from the terminal and prepares the first frame
// Zero-valued options fall back to an empty document, default keys and the system clock
func New(term terminal.Terminal, opts Options) (*Session, error) {
	cols, rows, err := term.Size()
	if err != nil {
		return nil, fmt.Errorf("window size: %w", err)
	}
	if rows <= barRows || cols <= 0 {
		return nil, fmt.Errorf("window size: terminal too small (%dx%d)", cols, rows)
	}

	s := &Session{
		term:  term,
		dec:   terminal.NewDecoder(term),
		doc:   opts.Doc,
		view:  viewport.New(rows-barRows, cols),
		msg:   opts.Message,
		keys:  opts.Keys,
		comp:  render.NewCompositor(opts.Banner),
		clock: opts.Clock,
	}
	if s.doc == nil {
		s.doc = document.New("")
	}
	if s.msg == nil {
		s.msg = status.NewMessage(status.DefaultTimeout)
	}
	if s.keys == nil {
		s.keys = input.DefaultKeyTable()
	}
	if s.clock == nil {
		s.clock = SystemClock{}
	}
	if opts.HelpMessage != "" {
		s.msg.Set(s.clock.Now(), "%s", opts.HelpMessage)
	}

	log.Printf("session: %dx%d, %d text rows, document %q with %d lines",
		cols, rows, s.view.ScreenRows, s.doc.Name(), s.doc.NumRows())
	return s, nil
}

// State returns the current lifecycle state
func (s *Session) State() State {
	return s.state
}

// Viewport exposes the cursor and scroll state
func (s *Session) Viewport() *viewport.Viewport {
	return s.view
}

// Run loops until the quit action or a fatal error
// On quit the screen is cleared and nil is returned; restoring the terminal is the caller's job
func (s *Session) Run() error {
	for s.state == StateRunning {
		if err := s.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Step runs one loop iteration: reconcile, draw, read one key, dispatch
func (s *Session) Step() error {
	if err := s.Refresh(); err != nil {
		return err
	}

	ev, err := s.dec.Next()
	if err != nil {
		return err
	}

	return s.dispatch(s.keys.Lookup(ev))
}

// Refresh reconciles scroll offsets and writes one frame
func (s *Session) Refresh() error {
	s.view.Reconcile(s.doc)
	err := s.comp.Render(s.term, render.Frame{
		Doc:     s.doc,
		View:    s.view,
		Message: s.msg,
		Now:     s.clock.Now(),
	})
	if err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

func (s *Session) dispatch(a input.Action) error {
	switch a {
	case input.ActionQuit:
		s.state = StateTerminating
		log.Printf("session: quit")
		if err := terminal.ClearScreen(s.term); err != nil {
			return fmt.Errorf("clear screen: %w", err)
		}
	case input.ActionMoveLeft:
		s.view.Move(s.doc, viewport.Left)
	case input.ActionMoveRight:
		s.view.Move(s.doc, viewport.Right)
	case input.ActionMoveUp:
		s.view.Move(s.doc, viewport.Up)
	case input.ActionMoveDown:
		s.view.Move(s.doc, viewport.Down)
	case input.ActionLineStart:
		s.view.LineStart()
	case input.ActionLineEnd:
		s.view.LineEnd(s.doc)
	case input.ActionPageUp:
		s.view.Page(s.doc, viewport.Up)
	case input.ActionPageDown:
		s.view.Page(s.doc, viewport.Down)
	}
	return nil
}
