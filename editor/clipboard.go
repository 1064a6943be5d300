package editor

import (
	"strings"

	"github.com/iw2rmb/durafield/duration"
	"github.com/iw2rmb/durafield/segment"
)

// Clipboard provides editor-level clipboard integration.
//
// Errors must not crash the UI; failures are logged and ignored.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

// copyValue writes the ISO-8601 form of what the field currently shows,
// including uncommitted segment edits.
func (m Model) copyValue() {
	if m.cfg.Clipboard == nil {
		return
	}
	iso := m.value
	if m.st.mode == ModeEdit {
		if values, err := segment.Parse(m.buf.Text(), m.specs); err == nil {
			if v, err := segment.Values(values, m.specs); err == nil {
				iso = duration.Format(duration.Normalize(&v, m.units, m.hoursPerDay))
			}
		}
	}
	if iso == "" {
		return
	}
	if err := m.cfg.Clipboard.WriteText(iso); err != nil {
		m.log.Warn("clipboard write failed", "err", err)
	}
}

// pasteValue reads an ISO-8601 duration from the clipboard and commits it.
// An editor in edit mode stays in edit mode showing the pasted value.
func (m *Model) pasteValue() {
	if m.cfg.Clipboard == nil {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil {
		m.log.Warn("clipboard read failed", "err", err)
		return
	}
	s = strings.TrimSpace(s)
	v, err := duration.Parse(s)
	if err != nil || v == nil {
		m.log.Debug("paste ignored", "text", s, "err", err)
		return
	}

	editing := m.st.mode == ModeEdit
	caret := m.buf.Caret()
	m.updateState(toViewWith(v))
	m.setValue(duration.Format(duration.Normalize(v, m.units, m.hoursPerDay)), true)
	if editing {
		m.enterEdit(caret)
	}
}
