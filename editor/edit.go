package editor

import "github.com/iw2rmb/quill/buffer"

// placeholder seeds SplitRow when splitting at the true end of a row, where
// no char after the cursor exists to start the new row. It is appended,
// carried through the split, and deleted again; it never survives a call.
const placeholder = '0'

// HandleEnter splits the current row at the cursor, adjusting for mode.
//
// Back-insert at the last char of the row has no char after the cursor to
// seed the new row, so a placeholder is appended, split off, and deleted,
// leaving a correctly empty row below. Back-insert anywhere else shifts
// right and continues as front-insert, unifying the two insert modes on one
// split path; the mode stays front-insert, matching where the cursor now
// renders. The viewport mapping is stale afterwards in every case.
func (s *State) HandleEnter() {
	b := s.buf

	if s.mode == ModeInsertBack && b.CurrentChar() == b.Current().Len()-1 {
		b.AppendChar(placeholder)
		b.SplitRow()
		b.DeleteChar()
		s.toRefresh = true
		return
	}

	if s.mode == ModeInsertBack && b.Current().Len() != 0 {
		b.Move(buffer.Right)
		s.mode = ModeInsertFront
	}

	b.SplitRow()
	s.toRefresh = true
}

// HandleBackspace deletes backward with mode-dependent policy.
//
// Command mode edits the status row, not the document. Front-insert at the
// start of a row joins with the predecessor; otherwise it deletes the char
// left of the cursor. Back-insert resolves its head-of-row case as an
// explicit two-phase transform: reinterpret as front-insert, shift right,
// run the front-insert deletion once, restore the mode. Never re-entrant.
func (s *State) HandleBackspace() {
	b := s.buf

	switch s.mode {
	case ModeCommand:
		b.Move(buffer.Left)
		b.Status().DropChar()

	case ModeInsertFront:
		s.backspaceFront()

	case ModeInsertBack:
		r := b.Current()

		if r.Len() == 0 {
			b.JoinRow()
			s.toRefresh = true
			return
		}

		if b.CurrentChar() == 0 {
			if r.Len() == 1 {
				b.DeleteChar()
				return
			}

			// back insert cannot express deleting its own head char
			s.mode = ModeInsertFront
			b.Move(buffer.Right)
			s.backspaceFront()
			s.mode = ModeInsertBack
			return
		}

		b.DeleteChar()

		if b.CurrentChar()+1 < b.Current().Len() {
			b.Move(buffer.Left)
		}
	}
}

// backspaceFront is the front-insert deletion rule: join with the previous
// row when no char precedes the cursor, otherwise step left and delete the
// char now under it.
func (s *State) backspaceFront() {
	b := s.buf

	if b.CurrentChar() == 0 {
		b.JoinRow()
		s.toRefresh = true
		return
	}

	b.Move(buffer.Left)
	b.DeleteChar()
}
