package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/durafield"
	"github.com/iw2rmb/durafield/editor"
	"github.com/iw2rmb/durafield/internal/settings"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestVersionCommand(t *testing.T) {
	out := execute(t, "version")
	assert.Equal(t, "durafield "+durafield.VersionTag()+"\n", out)
}

func TestConfigCommand_PrintsDefaults(t *testing.T) {
	out := execute(t, "config")

	s, err := settings.Parse([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, settings.Default(), s)
}

func TestConfigCommand_FlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "durafield.yaml")
	require.NoError(t, os.WriteFile(path, []byte("units: [days, hours]\nhours_per_day: 8\nvalue: P1D\n"), 0644))

	out := execute(t, "config", "--config", path, "--value", "PT4H", "--no-title")

	s, err := settings.Parse([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, []string{"days", "hours"}, s.Units)
	assert.Equal(t, 8, s.HoursPerDay)
	assert.Equal(t, "PT4H", s.Value)
	assert.False(t, s.ShowTitle)
}

func TestOptions_UnsetFlagsKeepSettings(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	opts := &options{}
	opts.bind(fs)
	require.NoError(t, fs.Parse([]string{"--units", "hours,minutes", "--read-only"}))

	s, err := opts.settings(fs)
	require.NoError(t, err)
	assert.Equal(t, []string{"hours", "minutes"}, s.Units)
	assert.True(t, s.ReadOnly)
	assert.Equal(t, 24, s.HoursPerDay)
	assert.True(t, s.ShowTitle)
}

func TestRun_RejectsBadSettings(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--units", "fortnights"})
	cmd.SetOut(&bytes.Buffer{})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown unit")
}

func TestApp_TabMovesFocusBetweenFields(t *testing.T) {
	a, err := newApp(editor.Config{Value: "PT2H"})
	require.NoError(t, err)
	require.True(t, a.fields[0].editor.Focused())

	var model tea.Model = a
	for i := 0; i < 4; i++ {
		var cmd tea.Cmd
		model, cmd = model.Update(tea.KeyMsg{Type: tea.KeyTab})
		if cmd != nil {
			model, _ = model.Update(cmd())
		}
	}

	a = model.(app)
	assert.Equal(t, 1, a.focus)
	assert.False(t, a.fields[0].editor.Focused())
	assert.True(t, a.fields[1].editor.Focused())
	assert.Equal(t, editor.ModeEdit, a.fields[1].editor.Mode())
	assert.Equal(t, 0, a.changes.count)
}

func TestApp_TabLeavesReadOnlyField(t *testing.T) {
	a, err := newApp(editor.Config{Value: "PT2H", ReadOnly: true})
	require.NoError(t, err)

	model, cmd := a.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.NotNil(t, cmd)
	model, _ = model.Update(cmd())

	a = model.(app)
	assert.Equal(t, 1, a.focus)
	assert.True(t, a.fields[1].editor.Focused())
	assert.Equal(t, "PT2H", a.fields[0].editor.Value())
}

func TestApp_MouseFocusesFieldUnderPointer(t *testing.T) {
	a, err := newApp(editor.Config{Value: "PT2H"})
	require.NoError(t, err)

	tops := a.fieldTops()
	require.Len(t, tops, 2)
	assert.Equal(t, 3, tops[0])
	assert.Equal(t, 8, tops[1])

	// the field content sits inside a one-cell border and padding
	model, _ := a.Update(tea.MouseMsg{X: 2, Y: tops[1] + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	a = model.(app)
	assert.Equal(t, 1, a.focus)
	assert.True(t, a.fields[1].editor.Focused())
	assert.False(t, a.fields[0].editor.Focused())
}

func TestApp_StatusReportsChanges(t *testing.T) {
	a, err := newApp(editor.Config{Value: "PT2H"})
	require.NoError(t, err)
	assert.Contains(t, a.View(), "no changes yet")

	model, _ := a.Update(tea.KeyMsg{Type: tea.KeyCtrlU})
	a = model.(app)
	view := a.View()
	assert.True(t, strings.Contains(view, "1 changes · Estimate: PT2H → (none)"), view)
}
