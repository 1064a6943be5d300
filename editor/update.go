package editor

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/durafield/buffer"
	"github.com/iw2rmb/durafield/duration"
	"github.com/iw2rmb/durafield/internal/grapheme"
	"github.com/iw2rmb/durafield/segment"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused || !m.enabled {
		return m, nil
	}

	km := m.keyMap
	if key.Matches(msg, km.Copy) {
		m.copyValue()
		return m, nil
	}
	if !m.editable() {
		// read-only fields still let focus move on
		switch {
		case key.Matches(msg, km.NextSegment):
			return m.Blur(), focusNext
		case key.Matches(msg, km.PrevSegment):
			return m.Blur(), focusPrev
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, km.Clear):
		return m.Clear(), nil
	case key.Matches(msg, km.Paste):
		m.pasteValue()
		return m, nil
	}

	if m.st.mode == ModeView {
		switch {
		case key.Matches(msg, km.Cancel):
			return m, nil
		case key.Matches(msg, km.NextSegment):
			return m.Blur(), focusNext
		case key.Matches(msg, km.PrevSegment):
			return m.Blur(), focusPrev
		}
		m.enterEdit(m.buf.Caret())
		if key.Matches(msg, km.Commit) {
			return m, nil
		}
	}

	return m.dispatchEditKey(msg)
}

// dispatchEditKey handles one keystroke in edit mode. Handlers either act on
// the segment under the caret and swallow the key, or fall through to the
// plain-input behavior, after which the segments are parsed again.
func (m Model) dispatchEditKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	km := m.keyMap
	pos := m.buf.Caret()
	i := segment.Locate(pos, m.segs)
	seg := m.segs[i]
	atStart := segment.AtStart(pos, m.segs)
	atEnd := segment.AtEnd(pos, m.segs)

	switch {
	case key.Matches(msg, km.Increment):
		m.step(i, 1)
	case key.Matches(msg, km.Decrement):
		m.step(i, -1)
	case key.Matches(msg, km.IncrementTen):
		m.step(i, 10)
	case key.Matches(msg, km.DecrementTen):
		m.step(i, -10)

	case key.Matches(msg, km.Left):
		if atStart {
			if i > 0 {
				m.buf.SetCaret(m.segs[i-1].End)
			}
			return m, nil
		}
		m.applyDefault(func(b *buffer.Buffer) { b.Move(buffer.DirLeft) })
	case key.Matches(msg, km.Right):
		if atEnd {
			if i+1 < len(m.segs) {
				m.buf.SetCaret(m.segs[i+1].Start)
			}
			return m, nil
		}
		m.applyDefault(func(b *buffer.Buffer) { b.Move(buffer.DirRight) })

	case key.Matches(msg, km.Delete):
		if atStart && grapheme.Count(seg.Value) == 1 {
			if seg.Value != "0" {
				m.setSegment(i, "0")
				m.buf.SetCaret(pos)
			}
			return m, nil
		}
		if atEnd {
			return m, nil
		}
		m.applyDefault(func(b *buffer.Buffer) { b.DeleteForward() })
	case key.Matches(msg, km.Backspace):
		if atEnd && grapheme.Count(seg.Value) == 1 {
			m.setSegment(i, "0")
			m.buf.SetCaret(m.segs[i].Start)
			return m, nil
		}
		if atStart {
			if i > 0 {
				m.buf.SetCaret(m.segs[i-1].End)
			}
			return m, nil
		}
		m.applyDefault(func(b *buffer.Buffer) { b.DeleteBackward() })

	case key.Matches(msg, km.Cancel):
		return m.Blur(), nil
	case key.Matches(msg, km.Commit):
		m.commit()

	case key.Matches(msg, km.NextSegment):
		if i+1 < len(m.segs) {
			m.buf.SetCaret(m.segs[i+1].Start)
			return m, nil
		}
		return m.Blur(), focusNext
	case key.Matches(msg, km.PrevSegment):
		if i > 0 {
			m.buf.SetCaret(m.segs[i-1].Start)
			return m, nil
		}
		return m.Blur(), focusPrev

	case key.Matches(msg, km.Home):
		m.buf.SetCaret(m.segs[0].Start)
	case key.Matches(msg, km.End):
		m.buf.SetCaret(m.segs[len(m.segs)-1].End)

	default:
		d, ok := digitKey(msg)
		if !ok {
			m.log.Debug("key rejected", "key", msg.String())
			return m, nil
		}
		m.typeDigit(i, d)
	}
	return m, nil
}

// step adds delta to segment i and puts the caret at its end. Results below
// zero or longer than the segment allows are ignored.
func (m *Model) step(i int, delta int64) {
	seg := m.segs[i]
	n, err := strconv.ParseInt(seg.Value, 10, 64)
	if err != nil {
		return
	}
	if !m.setSegment(i, strconv.FormatInt(n+delta, 10)) {
		return
	}
	m.buf.SetCaret(m.segs[i].End)
}

func (m *Model) typeDigit(i int, d string) {
	seg := m.segs[i]
	if seg.Value == "0" {
		if m.setSegment(i, d) {
			m.buf.SetCaret(m.segs[i].End)
		}
		return
	}
	if grapheme.Count(seg.Value) >= seg.MaxLength {
		m.log.Debug("digit rejected", "segment", seg.Unit.String(), "value", seg.Value)
		return
	}
	pos := m.buf.Caret()
	m.applyDefault(func(b *buffer.Buffer) {
		if pos < seg.Start || pos > seg.End {
			b.SetCaret(seg.End)
		}
		b.InsertText(d)
	})
}

// setSegment writes value into segment i and lays the text out again. It
// reports false, leaving everything untouched, for negative values, values
// longer than the segment allows and totals that overflow. A segment already
// wider than MaxLength, set from outside, may keep its width.
func (m *Model) setSegment(i int, value string) bool {
	seg := m.segs[i]
	if value == "" || value[0] == '-' {
		return false
	}
	if n := grapheme.Count(value); n > seg.MaxLength && n > grapheme.Count(seg.Value) {
		return false
	}
	values := make([]string, len(m.segs))
	for j, s := range m.segs {
		values[j] = s.Value
	}
	values[i] = value
	if !m.fits(values) {
		m.log.Debug("segment rejected", "segment", seg.Unit.String(), "value", value)
		return false
	}
	m.buf.Replace(seg.Start, seg.End, value)
	m.segs = segment.Layout(m.specs, m.mustParse())
	return true
}

// fits reports whether segment values decode to a duration that can be
// stored.
func (m *Model) fits(values []string) bool {
	v, err := segment.Values(values, m.specs)
	return err == nil && v.Fits(m.hoursPerDay)
}

// applyDefault runs a plain-input edit, then lays the segments out from the
// resulting text. Edits that break the segment grammar are rolled back.
func (m *Model) applyDefault(edit func(b *buffer.Buffer)) {
	text, caret := m.buf.Text(), m.buf.Caret()
	edit(m.buf)
	if m.buf.Text() == text {
		return
	}
	values, err := segment.Parse(m.buf.Text(), m.specs)
	if err == nil && !m.fits(values) {
		err = duration.ErrTooLarge
	}
	if err != nil {
		m.log.Debug("edit rolled back", "text", m.buf.Text(), "err", err)
		m.buf.SetText(text)
		m.buf.SetCaret(caret)
		return
	}
	m.segs = segment.Layout(m.specs, values)
}

func digitKey(msg tea.KeyMsg) (string, bool) {
	if msg.Type != tea.KeyRunes || msg.Alt || msg.Paste || len(msg.Runes) != 1 {
		return "", false
	}
	r := msg.Runes[0]
	if r < '0' || r > '9' {
		return "", false
	}
	return string(r), true
}
