package editor

// updateTopRow keeps the cursor's row inside the viewport. At most one of
// the two corrections can fire per call; either one leaves the mapping stale
// so Reconcile remaps the windows afterwards.
func (s *State) updateTopRow() {
	currentRow := s.buf.CurrentRow()

	// scroll down
	if currentRow >= s.topRow+s.numWindows {
		s.topRow = currentRow - s.numWindows + 1
		s.toRefresh = true
	}

	// scroll up
	if currentRow < s.topRow {
		s.topRow = currentRow
		s.toRefresh = true
	}
}

// remapWindows rebinds every window slot to the document rows
// [topRow, topRow+numWindows). It walks outward from the current row
// pointer: backward over prev links up to the top of the viewport, then
// forward over next links to the bottom. Slots past the end of the document
// bind to no row with line number 0. Every bound row is marked dirty for the
// renderer.
func (s *State) remapWindows() {
	if s.statusWin.Row == nil {
		s.statusWin = Window{Row: s.buf.Status(), LineNumber: 0}
	}

	currentRow := s.buf.CurrentRow()
	topRow := s.topRow

	r := s.buf.Current()
	for i := topRow; i <= currentRow; i++ {
		s.windows[currentRow-i] = Window{Row: r, LineNumber: topRow + currentRow - i + 1}
		r.MarkDirty()
		r = r.Prev()
	}

	r = s.buf.Current().Next()
	for i := currentRow + 1; i < topRow+s.numWindows; i++ {
		if r != nil {
			s.windows[i-topRow] = Window{Row: r, LineNumber: i + 1}
			r.MarkDirty()
			r = r.Next()
		} else {
			s.windows[i-topRow] = Window{}
		}
	}
}
