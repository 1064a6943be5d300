package editor

import (
	"errors"
	"fmt"

	"github.com/iw2rmb/durafield/duration"
	"github.com/iw2rmb/durafield/segment"
)

// ErrInconsistentTransition is the panic value for entering edit mode while
// also replacing the display value.
var ErrInconsistentTransition = errors.New("editor: entering edit mode must not change the display value")

// Mode is the editor's interaction mode.
type Mode uint8

const (
	// ModeView shows the compact, read-only rendering.
	ModeView Mode = iota
	// ModeEdit shows every segment and accepts keystrokes.
	ModeEdit
)

func (m Mode) String() string {
	switch m {
	case ModeView:
		return "view"
	case ModeEdit:
		return "edit"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

type state struct {
	mode Mode
	// display may be unnormalized; nil is the absent duration.
	display *duration.Value
}

type stateUpdate struct {
	mode       Mode
	display    *duration.Value
	setDisplay bool
}

func toView() stateUpdate { return stateUpdate{mode: ModeView} }

func toEdit() stateUpdate { return stateUpdate{mode: ModeEdit} }

func toViewWith(v *duration.Value) stateUpdate {
	return stateUpdate{mode: ModeView, display: cloneValue(v), setDisplay: true}
}

// updateState applies u and re-renders the field text from the display
// value. Entering edit mode while already editing keeps the current text.
func (m *Model) updateState(u stateUpdate) {
	if u.mode == ModeEdit && u.setDisplay {
		panic(ErrInconsistentTransition)
	}
	if m.st.mode == ModeEdit && u.mode == ModeEdit {
		return
	}

	prev := m.st.mode
	m.st.mode = u.mode
	if u.setDisplay {
		m.st.display = u.display
	}

	editing := m.st.mode == ModeEdit
	normalized := duration.Normalize(m.st.display, m.units, m.hoursPerDay)
	text := segment.Render(normalized, m.specs, editing)
	m.buf.SetText(text)
	if editing {
		m.segs = segment.Layout(m.specs, m.mustParse())
	} else {
		m.segs = nil
		if !m.cfg.HideTitle {
			m.title = text
		}
	}

	if prev != m.st.mode {
		m.log.Debug("mode transition",
			"from", prev.String(),
			"to", m.st.mode.String(),
			"text", text,
		)
	}
}

// mustParse parses text the editor rendered itself.
func (m *Model) mustParse() []string {
	values, err := segment.Parse(m.buf.Text(), m.specs)
	if err != nil {
		panic(fmt.Errorf("editor: rendered text does not parse: %w", err))
	}
	return values
}

// commit leaves edit mode, storing what the segments hold as the new value.
func (m *Model) commit() {
	if m.st.mode == ModeView {
		return
	}

	v, err := segment.Values(m.mustParse(), m.specs)
	if err != nil {
		// Every edit is checked with fits, so this only happens when the
		// text was replaced behind the editor's back.
		m.log.Error("commit failed", "text", m.buf.Text(), "err", err)
		m.updateState(toView())
		return
	}

	m.updateState(toViewWith(&v))
	iso := duration.Format(duration.Normalize(&v, m.units, m.hoursPerDay))
	m.setValue(iso, true)
}

// setValue stores the committed value and reports effective changes.
func (m *Model) setValue(iso string, notify bool) {
	if iso == m.value {
		return
	}
	prev := m.value
	m.value = iso
	m.log.Debug("value committed", "value", iso, "previous", prev)
	if notify && m.cfg.OnChange != nil {
		m.cfg.OnChange(ChangeEvent{Value: iso, Previous: prev})
	}
}

func cloneValue(v *duration.Value) *duration.Value {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
