package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/quill/buffer"
)

// Update feeds host input into the core: it dispatches one key to the
// mode-appropriate handler and then runs the reconciliation pass, so every
// invariant holds again when it returns. The returned command is non-nil
// only when a submitted command asks the host to quit.
func (s *State) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	var cmd tea.Cmd
	switch s.mode {
	case ModeNormal:
		cmd = s.handleNormalKey(keyMsg)
	case ModeInsertFront, ModeInsertBack:
		s.handleInsertKey(keyMsg)
	case ModeCommand:
		cmd = s.handleCommandKey(keyMsg)
	}

	s.Reconcile()
	return cmd
}

func (s *State) handleNormalKey(msg tea.KeyMsg) tea.Cmd {
	k := s.keys
	switch {
	case key.Matches(msg, k.Left, k.MoveLeft):
		s.buf.Move(buffer.Left)
	case key.Matches(msg, k.Right, k.MoveRight):
		s.buf.Move(buffer.Right)
	case key.Matches(msg, k.Up, k.MoveUp):
		s.buf.Move(buffer.Up)
	case key.Matches(msg, k.Down, k.MoveDown):
		s.buf.Move(buffer.Down)

	case key.Matches(msg, k.InsertFront):
		s.mode = ModeInsertFront
		s.ClearPrevKey()
	case key.Matches(msg, k.InsertBack):
		s.mode = ModeInsertBack
		s.ClearPrevKey()
	case key.Matches(msg, k.Command):
		s.mode = ModeCommand
		status := s.buf.Status()
		status.Clear()
		status.AddChar(':')
		s.ClearPrevKey()

	default:
		// unbound key: remember it so hosts can build multi-key commands
		if len(msg.Runes) > 0 {
			s.SetPrevKey(msg.Runes[0])
		}
	}
	return nil
}

func (s *State) handleInsertKey(msg tea.KeyMsg) {
	k := s.keys
	switch {
	case key.Matches(msg, k.Escape):
		s.mode = ModeNormal
	case key.Matches(msg, k.Enter):
		s.HandleEnter()
	case key.Matches(msg, k.Backspace):
		s.HandleBackspace()

	case key.Matches(msg, k.Left):
		s.buf.Move(buffer.Left)
	case key.Matches(msg, k.Right):
		s.buf.Move(buffer.Right)
	case key.Matches(msg, k.Up):
		s.buf.Move(buffer.Up)
	case key.Matches(msg, k.Down):
		s.buf.Move(buffer.Down)

	case msg.Type == tea.KeyTab:
		s.insertRune('\t')
	default:
		for _, r := range msg.Runes {
			s.insertRune(r)
		}
	}
}

func (s *State) handleCommandKey(msg tea.KeyMsg) tea.Cmd {
	k := s.keys
	switch {
	case key.Matches(msg, k.Escape):
		s.buf.Status().Clear()
		s.mode = ModeNormal
	case key.Matches(msg, k.Enter):
		return s.submitCommand()
	case key.Matches(msg, k.Backspace):
		s.HandleBackspace()
	default:
		for _, r := range msg.Runes {
			s.buf.Status().AddChar(r)
		}
	}
	return nil
}

func (s *State) insertRune(r rune) {
	if s.mode == ModeInsertBack {
		s.buf.AppendChar(r)
		return
	}
	s.buf.InsertChar(r)
}

// submitCommand runs the typed command line. Only quit is recognized;
// anything else is discarded.
func (s *State) submitCommand() tea.Cmd {
	text := s.buf.Status().Text()
	s.buf.Status().Clear()
	s.mode = ModeNormal

	switch text {
	case ":q", ":q!":
		return tea.Quit
	}
	return nil
}
