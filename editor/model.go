package editor

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/durafield/buffer"
	"github.com/iw2rmb/durafield/duration"
	"github.com/iw2rmb/durafield/segment"
)

// Model is a Bubble Tea component editing one duration value.
type Model struct {
	cfg    Config
	keyMap KeyMap
	log    *slog.Logger

	specs       []segment.Spec
	units       []duration.Unit
	hoursPerDay int

	buf *buffer.Buffer
	// segs is the layout of the edit-mode text; nil in view mode.
	segs []segment.Segment

	st    state
	value string
	title string

	focused  bool
	enabled  bool
	readOnly bool
}

// New validates cfg and returns a Model in view mode showing cfg.Value.
func New(cfg Config) (Model, error) {
	if err := cfg.validate(); err != nil {
		return Model{}, err
	}
	display, err := duration.Parse(cfg.Value)
	if err != nil {
		return Model{}, err
	}

	specs := segment.Build(cfg.units(), cfg.Labels, cfg.hoursPerDay())
	m := Model{
		cfg:         cfg,
		keyMap:      normalizeKeyMap(cfg.KeyMap),
		log:         cfg.logger(),
		specs:       specs,
		units:       segment.UnitsOf(specs),
		hoursPerDay: cfg.hoursPerDay(),
		buf:         buffer.New(""),
		value:       cfg.Value,
		enabled:     !cfg.Disabled,
		readOnly:    cfg.ReadOnly,
	}
	m.updateState(toViewWith(display))
	return m, nil
}

// MustNew is like New but panics on an invalid Config.
func MustNew(cfg Config) Model {
	m, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// Value returns the committed ISO-8601 duration, or "" for none.
func (m Model) Value() string { return m.value }

// SetValue replaces the committed value without reporting a change. The
// editor returns to view mode; it never enters edit mode on its own.
func (m Model) SetValue(iso string) (Model, error) {
	display, err := duration.Parse(iso)
	if err != nil {
		return m, err
	}
	m.setValue(iso, false)
	m.updateState(toViewWith(display))
	return m, nil
}

// Clear drops the value, always reports the change, and leaves the editor
// focused in view mode.
func (m Model) Clear() Model {
	m.updateState(toViewWith(nil))
	prev := m.value
	m.value = ""
	m.log.Debug("value cleared", "previous", prev)
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(ChangeEvent{Value: "", Previous: prev})
	}
	if m.enabled {
		m.focused = true
	}
	return m
}

// Focus gives the editor focus and, unless it is read-only, enters edit mode
// with the caret moved onto the nearest segment boundary.
func (m Model) Focus() Model {
	if !m.enabled {
		return m
	}
	m.focused = true
	if m.readOnly {
		return m
	}
	m.enterEdit(m.buf.Caret())
	return m
}

// Blur commits pending edits and drops focus.
func (m Model) Blur() Model {
	m.commit()
	m.focused = false
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Mode() Mode { return m.st.mode }

// Text returns the field text as currently rendered.
func (m Model) Text() string { return m.buf.Text() }

// Caret returns the caret offset in grapheme clusters.
func (m Model) Caret() int { return m.buf.Caret() }

// Title returns the last view-mode text, or "" when titles are hidden.
func (m Model) Title() string { return m.title }

func (m Model) Enabled() bool { return m.enabled }

// KeyMap returns the bindings in use, for help views.
func (m Model) KeyMap() KeyMap { return m.keyMap }

func (m Model) ReadOnly() bool { return m.readOnly }

// SetEnabled toggles input. Disabling commits pending edits and drops focus.
func (m Model) SetEnabled(enabled bool) Model {
	if !enabled && m.enabled {
		m = m.Blur()
	}
	m.enabled = enabled
	return m
}

// SetReadOnly toggles editing. Switching to read-only commits pending edits;
// focus is kept.
func (m Model) SetReadOnly(readOnly bool) Model {
	if readOnly && !m.readOnly {
		m.commit()
	}
	m.readOnly = readOnly
	return m
}

// SetWidth limits the rendered line in cells; zero renders at natural width.
func (m Model) SetWidth(width int) Model {
	if width < 0 {
		width = 0
	}
	m.cfg.Width = width
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	default:
		return m, nil
	}
}

func (m Model) editable() bool { return m.enabled && !m.readOnly }

// clearVisible mirrors the permissions: the clear button only exists for an
// enabled, writable field.
func (m Model) clearVisible() bool {
	return m.editable() && m.cfg.Style.ClearGlyph != ""
}

// enterEdit switches to edit mode and places the caret at pos, snapped onto a
// segment.
func (m *Model) enterEdit(pos int) {
	m.updateState(toEdit())
	m.buf.SetCaret(segment.Snap(pos, m.segs))
}
