package editor

import (
	"errors"
	"io"

	"github.com/iw2rmb/quill/buffer"
)

// Window is one fixed display slot: a row to draw (nil past end of document)
// and the 1-based line number to show in the gutter (0 for empty slots).
type Window struct {
	Row        *buffer.Row
	LineNumber int
}

// Config configures a State.
type Config struct {
	// Initial document text.
	Text string

	// Height is the terminal height in rows. One row is reserved for the
	// status line, so the viewport gets Height-1 window slots.
	Height int

	KeyMap KeyMap
	Style  Style
}

// State owns the editing session: the document buffer, the window slots, and
// the mode/cursor/viewport quantities the reconciliation pass keeps
// consistent.
//
// cx and cy are derived display coordinates, recomputed from
// (current row, current char, top row, mode, gutter width) on every
// Reconcile; they are never mutated independently.
type State struct {
	buf *buffer.Buffer

	mode Mode

	windows    []Window
	statusWin  Window
	numWindows int

	topRow       int
	cx, cy       int
	paddingFront int
	toRefresh    bool

	prevKey rune

	keys  KeyMap
	style Style
}

// New builds the editing state for one document. Terminal height is an
// explicit input; it is fixed for the life of the state.
func New(cfg Config) (*State, error) {
	return newState(buffer.New(cfg.Text), cfg)
}

// NewFromReader builds the editing state from a document source. A read
// failure propagates to the caller; nothing here recovers it.
func NewFromReader(r io.Reader, cfg Config) (*State, error) {
	b, err := buffer.Load(r)
	if err != nil {
		return nil, err
	}
	return newState(b, cfg)
}

func newState(buf *buffer.Buffer, cfg Config) (*State, error) {
	if cfg.Height < 2 {
		return nil, errors.New("editor: height must leave room for at least one window and the status line")
	}
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}

	s := &State{
		buf:        buf,
		mode:       ModeNormal,
		numWindows: cfg.Height - 1,
		toRefresh:  true,
		keys:       cfg.KeyMap,
		style:      cfg.Style,
	}
	s.windows = make([]Window, s.numWindows)
	s.Reconcile()
	return s, nil
}

// Reconcile restores every display invariant after a mutation or cursor
// move. Steps run in a fixed order because later ones depend on earlier
// ones: status text, scroll correction, gutter width, viewport remap (only
// when scrolling or row edits left the mapping stale), cursor derivation.
// Idempotent when nothing changed in between.
func (s *State) Reconcile() {
	s.updateModeStatus()
	s.updateTopRow()
	s.updatePaddingFront()

	if s.toRefresh {
		s.remapWindows()
		s.toRefresh = false
	}

	s.updateCursor()
}

// Buffer returns the document buffer.
func (s *State) Buffer() *buffer.Buffer { return s.buf }

// Mode returns the current interaction mode.
func (s *State) Mode() Mode { return s.mode }

// SetMode switches the interaction mode. The new status label appears on the
// next Reconcile.
func (s *State) SetMode(m Mode) { s.mode = m }

// Cx returns the derived display column of the cursor.
func (s *State) Cx() int { return s.cx }

// Cy returns the derived display row of the cursor.
func (s *State) Cy() int { return s.cy }

// TopRow returns the document row bound to window slot 0.
func (s *State) TopRow() int { return s.topRow }

// PaddingFront returns the width reserved for the line-number gutter.
func (s *State) PaddingFront() int { return s.paddingFront }

// NumWindows returns the fixed number of content window slots.
func (s *State) NumWindows() int { return s.numWindows }

// Windows returns the window slots, ordered top to bottom. The slice is the
// live mapping; it is only valid until the next Reconcile.
func (s *State) Windows() []Window { return s.windows }

// StatusWindow returns the slot permanently bound to the status row.
func (s *State) StatusWindow() Window { return s.statusWin }

// MoveCursor steps the logical cursor. Callers must Reconcile afterwards
// (Update does).
func (s *State) MoveCursor(d buffer.Direction) {
	s.buf.Move(d)
}

// SetPrevKey records the last raw key for multi-key command recognition.
// The slot is host policy; nothing in the core reads it.
func (s *State) SetPrevKey(c rune) { s.prevKey = c }

// ClearPrevKey resets the recorded key.
func (s *State) ClearPrevKey() { s.prevKey = 0 }

// PrevKey returns the recorded key, 0 when unset.
func (s *State) PrevKey() rune { return s.prevKey }
