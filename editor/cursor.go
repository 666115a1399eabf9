package editor

// updatePaddingFront sizes the line-number gutter: digit count of the row
// count plus one column of slack. Recomputed every pass since row edits can
// change the count.
func (s *State) updatePaddingFront() {
	n := s.buf.RowCount()
	digits := 0
	for n > 0 {
		n /= 10
		digits++
	}
	s.paddingFront = digits + 1
}

// updateCursor derives the display coordinates from the logical position.
//
// The base column clamps to the last char of the row (NORMAL semantics);
// back-insert renders one cell past the char, between-characters style.
// Command mode overrides both coordinates: the cursor sits on the status
// line, trailing the typed command. Outside command mode the column shifts
// past the gutter and its separator.
func (s *State) updateCursor() {
	lineSize := s.buf.Current().Len()
	currentChar := s.buf.CurrentChar()

	s.cy = s.buf.CurrentRow() - s.topRow

	switch {
	case lineSize == 0:
		s.cx = 0
	case currentChar >= lineSize:
		s.cx = lineSize - 1
	default:
		s.cx = currentChar
	}

	if s.mode == ModeInsertBack && lineSize != 0 {
		s.cx++
	}

	if s.mode == ModeCommand {
		s.cy = s.numWindows
		s.cx = s.buf.Status().Len()
	} else {
		s.cx += s.paddingFront + 1
	}
}
