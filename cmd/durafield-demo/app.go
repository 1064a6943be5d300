package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/durafield/editor"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("108"))

	quitKey = key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit"))
)

// changeLog collects OnChange events from every field. Fields are copied on
// each update, so they share it by pointer.
type changeLog struct {
	count int
	field string
	last  editor.ChangeEvent
}

type field struct {
	label  string
	editor editor.Model
}

type app struct {
	fields  []field
	focus   int
	changes *changeLog
	help    help.Model
}

// newApp builds two fields from cfg: the configured one and an empty one to
// move focus to.
func newApp(cfg editor.Config) (app, error) {
	changes := &changeLog{}
	labels := []string{"Estimate", "Time spent"}
	a := app{changes: changes, help: help.New()}

	for i, label := range labels {
		c := cfg
		c.Style = editor.DefaultStyle()
		c.Clipboard = systemClipboard{}
		if i > 0 {
			c.Value = ""
		}
		name := label
		c.OnChange = func(ev editor.ChangeEvent) {
			changes.count++
			changes.field = name
			changes.last = ev
		}
		m, err := editor.New(c)
		if err != nil {
			return app{}, fmt.Errorf("%s: %w", label, err)
		}
		a.fields = append(a.fields, field{label: label, editor: m})
	}
	a.fields[0].editor = a.fields[0].editor.Focus()
	return a, nil
}

func (a app) Init() tea.Cmd { return nil }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.help.Width = msg.Width
		return a, nil
	case tea.KeyMsg:
		if key.Matches(msg, quitKey) {
			for i := range a.fields {
				a.fields[i].editor = a.fields[i].editor.Blur()
			}
			return a, tea.Quit
		}
		if msg.String() == "?" {
			a.help.ShowAll = !a.help.ShowAll
			return a, nil
		}
	case editor.FocusNextMsg:
		return a.moveFocus(1), nil
	case editor.FocusPrevMsg:
		return a.moveFocus(-1), nil
	case tea.MouseMsg:
		return a.routeMouse(msg)
	}

	var cmd tea.Cmd
	f := &a.fields[a.focus]
	f.editor, cmd = f.editor.Update(msg)
	return a, cmd
}

func (a app) moveFocus(delta int) app {
	n := len(a.fields)
	a.fields[a.focus].editor = a.fields[a.focus].editor.Blur()
	a.focus = ((a.focus+delta)%n + n) % n
	a.fields[a.focus].editor = a.fields[a.focus].editor.Focus()
	return a
}

// routeMouse forwards a press to the field under the pointer with coordinates
// made relative to that field's view.
func (a app) routeMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return a, nil
	}
	for i, top := range a.fieldTops() {
		h := lipgloss.Height(a.fields[i].editor.View())
		if msg.Y < top || msg.Y >= top+h {
			continue
		}
		local := msg
		local.Y -= top
		updated, cmd := a.fields[i].editor.Update(local)
		if i != a.focus && updated.Focused() {
			a.fields[a.focus].editor = a.fields[a.focus].editor.Blur()
			a.focus = i
		}
		a.fields[i].editor = updated
		return a, cmd
	}
	return a, nil
}

func (a app) header() string {
	return headerStyle.Render("durafield demo")
}

func (a app) block(i int) string {
	f := a.fields[i]
	label := f.label
	if t := f.editor.Title(); t != "" {
		label += " · " + t
	}
	return labelStyle.Render(label) + "\n" + f.editor.View()
}

// fieldTops returns the screen row where each field's view starts.
func (a app) fieldTops() []int {
	tops := make([]int, len(a.fields))
	y := lipgloss.Height(a.header()) + 1
	for i := range a.fields {
		// the label line sits above the field
		tops[i] = y + 1
		y += lipgloss.Height(a.block(i)) + 1
	}
	return tops
}

func (a app) status() string {
	if a.changes.count == 0 {
		return statusStyle.Render("no changes yet")
	}
	show := func(s string) string {
		if s == "" {
			return "(none)"
		}
		return s
	}
	return statusStyle.Render(fmt.Sprintf("%d changes · %s: %s → %s",
		a.changes.count, a.changes.field, show(a.changes.last.Previous), show(a.changes.last.Value)))
}

func (a app) View() string {
	var sb strings.Builder
	sb.WriteString(a.header())
	sb.WriteString("\n\n")
	for i := range a.fields {
		sb.WriteString(a.block(i))
		sb.WriteString("\n\n")
	}
	sb.WriteString(a.status())
	sb.WriteString("\n\n")
	sb.WriteString(a.help.View(helpKeys{a.fields[a.focus].editor.KeyMap()}))
	return sb.String()
}

// helpKeys adds the demo's own bindings to the editor help.
type helpKeys struct {
	editor.KeyMap
}

func (k helpKeys) ShortHelp() []key.Binding {
	return append(k.KeyMap.ShortHelp(), quitKey)
}

func (k helpKeys) FullHelp() [][]key.Binding {
	return append(k.KeyMap.FullHelp(), []key.Binding{quitKey})
}
