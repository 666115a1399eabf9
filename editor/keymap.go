package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor key bindings.
//
// The arrow bindings work in every mode; the letter motions only apply in
// normal mode, where letters are commands rather than text.
type KeyMap struct {
	Left, Right, Up, Down                 key.Binding
	MoveLeft, MoveRight, MoveUp, MoveDown key.Binding

	InsertFront key.Binding
	InsertBack  key.Binding
	Command     key.Binding

	Escape    key.Binding
	Enter     key.Binding
	Backspace key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		MoveLeft:  key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "left")),
		MoveRight: key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "right")),
		MoveUp:    key.NewBinding(key.WithKeys("k"), key.WithHelp("k", "up")),
		MoveDown:  key.NewBinding(key.WithKeys("j"), key.WithHelp("j", "down")),

		InsertFront: key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "insert")),
		InsertBack:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "append")),
		Command:     key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "command")),

		Escape:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "normal mode")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),
		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
	}
}

func (k KeyMap) isZero() bool {
	return len(k.Left.Keys()) == 0 && len(k.Enter.Keys()) == 0
}
