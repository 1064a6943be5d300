package editor

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/iw2rmb/durafield/duration"
	"github.com/iw2rmb/durafield/segment"
)

var (
	ErrNoUnits     = errors.New("editor: at least one unit must be enabled")
	ErrHoursPerDay = errors.New("editor: hours per day must be between 1 and 24")
)

// Config configures the editor Model.
type Config struct {
	// Units enables segments. Nil enables days, hours, minutes and seconds;
	// an empty non-nil slice is rejected by New.
	Units []duration.Unit

	// HoursPerDay is the length of one day segment, for counting work days.
	// Zero means 24.
	HoursPerDay int

	// HideTitle stops the model from exposing the view text as Title().
	HideTitle bool

	// Labels are the unit suffixes. Empty fields use DefaultLabels.
	Labels segment.Labels

	// Value is the initial ISO-8601 duration. Empty means no duration.
	Value string

	ReadOnly bool
	Disabled bool

	// Width limits the rendered line in cells (frame excluded). Zero renders
	// at natural width.
	Width int

	// Placeholder is shown in view mode when there is no duration.
	Placeholder string

	// KeyMap defaults to DefaultKeyMap when left zero.
	KeyMap KeyMap
	// Style is used as given; a zero Style renders plain text.
	Style Style

	Clipboard Clipboard

	// OnChange is called after the committed value changes.
	OnChange func(ChangeEvent)

	// Logger receives debug records for transitions and rejected input.
	// Nil discards them.
	Logger *slog.Logger
}

func (cfg Config) validate() error {
	if cfg.Units != nil && len(segment.Build(cfg.Units, cfg.Labels, cfg.HoursPerDay)) == 0 {
		return ErrNoUnits
	}
	if cfg.HoursPerDay < 0 || cfg.HoursPerDay > 24 {
		return fmt.Errorf("%w: got %d", ErrHoursPerDay, cfg.HoursPerDay)
	}
	return nil
}

func (cfg Config) units() []duration.Unit {
	if cfg.Units == nil {
		return duration.Units
	}
	return cfg.Units
}

func (cfg Config) hoursPerDay() int {
	if cfg.HoursPerDay == 0 {
		return duration.DefaultHoursPerDay
	}
	return cfg.HoursPerDay
}

func (cfg Config) logger() *slog.Logger {
	if cfg.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return cfg.Logger
}
