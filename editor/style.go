package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering. The zero value renders unstyled
// text; DefaultStyle gives the usual dim gutter and reversed cursor cell.
type Style struct {
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Text   lipgloss.Style
	Cursor lipgloss.Style
	Status lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		LineNum:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Text:          lipgloss.NewStyle(),
		Cursor:        lipgloss.NewStyle().Reverse(true),
		Status:        lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	}
}
