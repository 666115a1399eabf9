package editor

import (
	"fmt"
	"strings"
	"unicode/utf8"

	graphemeutil "github.com/iw2rmb/quill/internal/grapheme"
)

// View renders the window array plus the status line as terminal rows, one
// per window slot. It consumes only the reconciled observable state; call
// Reconcile first (Update does). Drawn rows get their dirty flag cleared.
func (s *State) View() string {
	var sb strings.Builder

	for i, w := range s.windows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(s.renderWindow(w, i))
	}

	sb.WriteByte('\n')
	sb.WriteString(s.renderStatus())

	return sb.String()
}

func (s *State) renderWindow(w Window, slot int) string {
	if w.Row == nil {
		return ""
	}

	onCursorRow := s.mode != ModeCommand && slot == s.cy

	numStyle := s.style.LineNum
	if onCursorRow {
		numStyle = s.style.LineNumActive
	}
	gutter := numStyle.Render(fmt.Sprintf("%*d", s.paddingFront, w.LineNumber)) + " "

	text := w.Row.Text()
	w.Row.ClearDirty()

	if !onCursorRow {
		return gutter + s.style.Text.Render(text)
	}
	return gutter + s.renderWithCursor(text, s.cx-s.paddingFront-1)
}

func (s *State) renderStatus() string {
	text := s.statusWin.Row.Text()
	s.statusWin.Row.ClearDirty()

	if s.mode != ModeCommand {
		return s.style.Status.Render(text)
	}
	// command mode: cursor trails the typed text
	return s.style.Status.Render(text) + s.style.Cursor.Render(" ")
}

// renderWithCursor overlays the cursor cell at the cluster containing the
// rune at runeIdx, so the overlay never lands inside a multi-rune cluster.
func (s *State) renderWithCursor(text string, runeIdx int) string {
	clusters := graphemeutil.Split(text)
	col := clusterIndex(clusters, runeIdx)
	if col >= len(clusters) {
		return s.style.Text.Render(text) + s.style.Cursor.Render(" ")
	}

	var sb strings.Builder
	if col > 0 {
		sb.WriteString(s.style.Text.Render(strings.Join(clusters[:col], "")))
	}
	sb.WriteString(s.style.Cursor.Render(clusters[col]))
	if col+1 < len(clusters) {
		sb.WriteString(s.style.Text.Render(strings.Join(clusters[col+1:], "")))
	}
	return sb.String()
}

// clusterIndex maps a rune index into its grapheme cluster index. A rune
// index past the last cluster maps to len(clusters).
func clusterIndex(clusters []string, runeIdx int) int {
	if runeIdx < 0 {
		return 0
	}
	runes := 0
	for i, c := range clusters {
		runes += utf8.RuneCountInString(c)
		if runeIdx < runes {
			return i
		}
	}
	return len(clusters)
}
