package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
type Style struct {
	// Focused and Blurred frame the whole line.
	Focused lipgloss.Style
	Blurred lipgloss.Style

	Text        lipgloss.Style
	Placeholder lipgloss.Style
	Disabled    lipgloss.Style
	Cursor      lipgloss.Style

	ClearButton lipgloss.Style
	// ClearGlyph is drawn as the clear button. Empty hides the button.
	ClearGlyph string
}

func DefaultStyle() Style {
	frame := lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
	return Style{
		Focused:     frame.BorderForeground(lipgloss.Color("63")),
		Blurred:     frame.BorderForeground(lipgloss.Color("240")),
		Text:        lipgloss.NewStyle(),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Disabled:    lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Faint(true),
		Cursor:      lipgloss.NewStyle().Reverse(true),
		ClearButton: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		ClearGlyph:  "×",
	}
}

func (s Style) frame(focused bool) lipgloss.Style {
	if focused {
		return s.Focused
	}
	return s.Blurred
}
