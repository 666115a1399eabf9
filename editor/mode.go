package editor

// Mode is the interaction mode governing how edit commands are interpreted.
type Mode uint8

const (
	// ModeNormal is the movement/command-dispatch mode.
	ModeNormal Mode = iota
	// ModeInsertFront inserts before the char under the cursor (vi `i`).
	ModeInsertFront
	// ModeInsertBack inserts after the char under the cursor (vi `a`).
	ModeInsertBack
	// ModeCommand edits the status row as a command line (vi `:`).
	ModeCommand
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeInsertFront:
		return "insert-front"
	case ModeInsertBack:
		return "insert-back"
	case ModeCommand:
		return "command"
	default:
		return "unknown"
	}
}

// IsInsert reports whether m is one of the two insert modes.
func (m Mode) IsInsert() bool {
	return m == ModeInsertFront || m == ModeInsertBack
}
