package editor

const (
	insertLabel = "-- INSERT --"
	normalLabel = "-- NORMAL --"
)

// updateModeStatus rewrites the status row with the current mode label. In
// command mode the status row holds the user's typed command and is left
// alone.
func (s *State) updateModeStatus() {
	var text string
	switch {
	case s.mode.IsInsert():
		text = insertLabel
	case s.mode == ModeNormal:
		text = normalLabel
	default:
		return
	}

	status := s.buf.Status()
	status.Clear()
	for _, c := range text {
		status.AddChar(c)
	}
}
