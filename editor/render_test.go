package editor

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/durafield/duration"
)

func testStyle() Style {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	r.SetHasDarkBackground(true)

	return Style{
		Text:        r.NewStyle(),
		Placeholder: r.NewStyle().Faint(true),
		Disabled:    r.NewStyle().Foreground(lipgloss.Color("243")),
		Cursor:      r.NewStyle().Reverse(true),
		ClearButton: r.NewStyle().Foreground(lipgloss.Color("203")),
		ClearGlyph:  "×",
	}
}

func TestRender_ViewMode(t *testing.T) {
	m := newTestModel(t, Config{Value: "PT2H"})
	if got, want := m.View(), "2h"; got != want {
		t.Fatalf("view: got %q, want %q", got, want)
	}
}

func TestRender_CursorOnSegment(t *testing.T) {
	st := testStyle()
	st.ClearGlyph = ""
	m := newTestModel(t, Config{Value: "PT2H", Style: st}).Focus()
	m = press(m, specialKeyMsg(tea.KeyTab))

	got := m.View()
	want := st.Text.Render("0d ") + st.Cursor.Render("2") + st.Text.Render("h 0m 0s")
	if got != want {
		t.Fatalf("unexpected cursor rendering:\n got: %q\nwant: %q", got, want)
	}
}

func TestRender_CursorAtEndOfText(t *testing.T) {
	st := testStyle()
	st.ClearGlyph = ""
	m := newTestModel(t, Config{Units: []duration.Unit{duration.Hours}, Value: "PT2H", Style: st}).Focus()
	m.buf.SetCaret(m.buf.Len())

	got, width := m.renderBody()
	want := st.Text.Render("2h") + st.Cursor.Render(" ")
	if width != 3 {
		t.Fatalf("width: got %d, want 3", width)
	}
	if got != want {
		t.Fatalf("unexpected rendering:\n got: %q\nwant: %q", got, want)
	}
}

func TestRender_Placeholder(t *testing.T) {
	st := testStyle()
	st.ClearGlyph = ""
	m := newTestModel(t, Config{Placeholder: "no limit", Style: st})
	if got, want := m.View(), st.Placeholder.Render("no limit"); got != want {
		t.Fatalf("view: got %q, want %q", got, want)
	}
}

func TestRender_Disabled(t *testing.T) {
	st := testStyle()
	m := newTestModel(t, Config{Value: "PT2H", Disabled: true, Style: st})
	if got, want := m.View(), st.Disabled.Render("2h"); got != want {
		t.Fatalf("view: got %q, want %q", got, want)
	}
}

func TestRender_ClearButton(t *testing.T) {
	st := testStyle()
	m := newTestModel(t, Config{Value: "PT2H", Style: st})
	want := st.Text.Render("2h") + " " + st.ClearButton.Render("×")
	if got := m.View(); got != want {
		t.Fatalf("view: got %q, want %q", got, want)
	}

	m = m.SetReadOnly(true)
	if got := m.View(); strings.Contains(got, "×") {
		t.Fatalf("read-only view must hide the clear button: %q", got)
	}
}

func TestRender_WidthTruncatesAndAlignsClearButton(t *testing.T) {
	m := newTestModel(t, Config{Value: "P1DT2H3M4S", Width: 4})
	got := m.View()
	if w := lipgloss.Width(got); w != 4 {
		t.Fatalf("width: got %d, want 4 (%q)", w, got)
	}
	if !strings.HasSuffix(got, ellipsis) {
		t.Fatalf("expected ellipsis suffix: %q", got)
	}

	m = newTestModel(t, Config{Value: "PT2H", Width: 8, Style: Style{ClearGlyph: "x"}})
	if got, want := m.View(), "2h     x"; got != want {
		t.Fatalf("view: got %q, want %q", got, want)
	}
}

func TestRender_DefaultStyleFramesLine(t *testing.T) {
	m := newTestModel(t, Config{Value: "PT2H", Style: DefaultStyle()})
	lines := strings.Split(m.View(), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines: got %d, want 3 (%q)", len(lines), m.View())
	}
	if !strings.Contains(lines[1], "2h") {
		t.Fatalf("content line: %q", lines[1])
	}
}
