package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/iw2rmb/durafield/internal/grapheme"
)

const ellipsis = "…"

func (m Model) View() string {
	return m.cfg.Style.frame(m.focused).Render(m.renderLine())
}

func (m Model) renderLine() string {
	body, bodyWidth := m.renderBody()
	if !m.clearVisible() {
		return body
	}
	if pad := bodyWidth - lipgloss.Width(body); pad > 0 {
		body += strings.Repeat(" ", pad)
	}
	return body + " " + m.cfg.Style.ClearButton.Render(m.cfg.Style.ClearGlyph)
}

// renderBody renders the text area and returns it with the number of cells
// it occupies (the clear button starts one cell after).
func (m Model) renderBody() (string, int) {
	st := m.cfg.Style
	text := m.buf.Text()

	var body string
	switch {
	case !m.enabled:
		body = renderNonEmpty(st.Disabled, text)
	case m.focused && m.st.mode == ModeEdit:
		body = m.renderWithCursor()
	case text == "" && m.cfg.Placeholder != "":
		body = renderNonEmpty(st.Placeholder, m.cfg.Placeholder)
	default:
		body = renderNonEmpty(st.Text, text)
	}

	limit := m.textWidth()
	if limit <= 0 {
		return body, lipgloss.Width(body)
	}
	if lipgloss.Width(body) > limit {
		body = truncate.StringWithTail(body, uint(limit), ellipsis)
	}
	return body, limit
}

func (m Model) renderWithCursor() string {
	st := m.cfg.Style
	clusters := m.buf.Clusters()
	c := m.buf.Caret()

	at := " "
	var after string
	if c < len(clusters) {
		at = clusters[c]
		after = grapheme.Join(clusters[c+1:])
	}

	var sb strings.Builder
	sb.WriteString(renderNonEmpty(st.Text, grapheme.Join(clusters[:c])))
	sb.WriteString(st.Cursor.Render(at))
	sb.WriteString(renderNonEmpty(st.Text, after))
	return sb.String()
}

// textWidth is the cell budget of the text area, or 0 when unlimited.
func (m Model) textWidth() int {
	if m.cfg.Width <= 0 {
		return 0
	}
	w := m.cfg.Width
	if m.clearVisible() {
		w -= 1 + lipgloss.Width(m.cfg.Style.ClearGlyph)
	}
	if w < 1 {
		w = 1
	}
	return w
}

func renderNonEmpty(s lipgloss.Style, text string) string {
	if text == "" {
		return ""
	}
	return s.Render(text)
}
