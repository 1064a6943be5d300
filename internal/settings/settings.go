// Package settings loads the demo's YAML settings file and turns it into an
// editor configuration.
package settings

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/durafield/duration"
	"github.com/iw2rmb/durafield/editor"
	"github.com/iw2rmb/durafield/segment"
)

// Settings is the on-disk form of the field configuration.
type Settings struct {
	Units       []string       `yaml:"units"`
	HoursPerDay int            `yaml:"hours_per_day"`
	ShowTitle   bool           `yaml:"show_title"`
	Labels      segment.Labels `yaml:"labels"`
	Value       string         `yaml:"value"`
	ReadOnly    bool           `yaml:"read_only"`
	Width       int            `yaml:"width"`
	Placeholder string         `yaml:"placeholder"`
}

// Default returns the settings used when no file is given.
func Default() *Settings {
	units := make([]string, len(duration.Units))
	for i, u := range duration.Units {
		units[i] = u.String()
	}
	return &Settings{
		Units:       units,
		HoursPerDay: duration.DefaultHoursPerDay,
		ShowTitle:   true,
		Labels:      segment.DefaultLabels(),
		Placeholder: "no duration",
	}
}

// Parse reads YAML on top of Default, so omitted keys keep their defaults.
func Parse(data []byte) (*Settings, error) {
	s := Default()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML: %w", err)
	}
	return s, nil
}

func Load(path string) (*Settings, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings %s: %w", path, err)
	}
	s, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Save writes s as YAML to path.
func (s *Settings) Save(path string) error {
	content, err := s.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write settings %s: %w", path, err)
	}
	return nil
}

func (s *Settings) Marshal() ([]byte, error) {
	content, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal settings to YAML: %w", err)
	}
	return content, nil
}

// EditorConfig converts s into an editor.Config. Unit names and the initial
// value are checked here; the remaining limits are enforced by editor.New.
func (s *Settings) EditorConfig() (editor.Config, error) {
	units := make([]duration.Unit, 0, len(s.Units))
	for _, name := range s.Units {
		u, err := duration.ParseUnit(name)
		if err != nil {
			return editor.Config{}, fmt.Errorf("settings: units: %w", err)
		}
		units = append(units, u)
	}
	if len(units) == 0 {
		return editor.Config{}, fmt.Errorf("settings: units: %w", editor.ErrNoUnits)
	}
	if _, err := duration.Parse(s.Value); err != nil {
		return editor.Config{}, fmt.Errorf("settings: value: %w", err)
	}

	return editor.Config{
		Units:       units,
		HoursPerDay: s.HoursPerDay,
		HideTitle:   !s.ShowTitle,
		Labels:      s.Labels,
		Value:       s.Value,
		ReadOnly:    s.ReadOnly,
		Width:       s.Width,
		Placeholder: s.Placeholder,
	}, nil
}
