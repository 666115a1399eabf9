package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/quill/editor"
)

const fallbackText = "Hello from quill.\n\nPress i or a to insert, esc for normal mode.\nType :q and enter to quit."

type model struct {
	state *editor.State
	text  string
	err   error
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// The core takes terminal height once, at construction.
		if m.state == nil {
			st, err := editor.NewFromReader(strings.NewReader(m.text), editor.Config{
				Height: msg.Height,
				Style:  editor.DefaultStyle(),
			})
			if err != nil {
				m.err = err
				return m, tea.Quit
			}
			m.state = st
		}
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.state != nil {
			return m, m.state.Update(msg)
		}
	}
	return m, nil
}

func (m model) View() string {
	if m.state == nil {
		return ""
	}
	return m.state.View()
}

func main() {
	flag.Parse()

	text := fallbackText
	if name := flag.Arg(0); name != "" {
		data, err := os.ReadFile(name)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		text = string(data)
	}

	m := model{text: text}
	p := tea.NewProgram(m, tea.WithAltScreen())
	out, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if fm, ok := out.(model); ok && fm.err != nil {
		fmt.Fprintln(os.Stderr, fm.err)
		os.Exit(1)
	}
}
