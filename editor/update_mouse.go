package editor

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/durafield/internal/grapheme"
)

// updateMouse handles left clicks. Coordinates are relative to the top-left
// corner of View(); hosts translate terminal coordinates before forwarding.
func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if !m.enabled {
		return m, nil
	}
	x, ok := m.lineCell(msg.X, msg.Y)
	if !ok {
		return m, nil
	}

	if m.clearVisible() {
		_, bodyWidth := m.renderBody()
		if start := bodyWidth + 1; x >= start {
			if x < start+lipgloss.Width(m.cfg.Style.ClearGlyph) {
				return m.Clear(), nil
			}
			return m, nil
		}
	}

	m.focused = true
	if m.readOnly {
		return m, nil
	}
	pos := grapheme.IndexAtCell(m.buf.Clusters(), x)
	m.enterEdit(pos)
	return m, nil
}

// lineCell maps component-local coordinates to a cell of the content line.
func (m Model) lineCell(x, y int) (int, bool) {
	frame := m.cfg.Style.frame(m.focused)
	left := frame.GetMarginLeft() + frame.GetBorderLeftSize() + frame.GetPaddingLeft()
	top := frame.GetMarginTop() + frame.GetBorderTopSize() + frame.GetPaddingTop()

	x -= left
	if y != top || x < 0 {
		return 0, false
	}
	if x >= lipgloss.Width(m.renderLine()) {
		return 0, false
	}
	return x, true
}
