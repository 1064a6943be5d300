package editor

import tea "github.com/charmbracelet/bubbletea"

// ChangeEvent reports a committed value change. Values are ISO-8601
// durations; "" means no duration.
type ChangeEvent struct {
	Value    string
	Previous string
}

// FocusNextMsg asks the host to move focus past the editor, the way Tab
// leaves the last segment of a browser input.
type FocusNextMsg struct{}

// FocusPrevMsg asks the host to move focus before the editor.
type FocusPrevMsg struct{}

func focusNext() tea.Msg { return FocusNextMsg{} }

func focusPrev() tea.Msg { return FocusPrevMsg{} }
