package main

import (
	"github.com/spf13/pflag"

	"github.com/iw2rmb/durafield/internal/settings"
)

// options are the root command flags. Flags left unset keep the value from
// the settings file.
type options struct {
	configPath  string
	value       string
	units       []string
	hoursPerDay int
	width       int
	noTitle     bool
	readOnly    bool
	logPath     string
}

func (o *options) bind(fs *pflag.FlagSet) {
	fs.StringVarP(&o.configPath, "config", "c", "", "YAML settings file")
	fs.StringVar(&o.value, "value", "", "initial ISO-8601 duration, e.g. P1DT2H")
	fs.StringSliceVar(&o.units, "units", nil, "enabled units (days,hours,minutes,seconds)")
	fs.IntVar(&o.hoursPerDay, "hours-per-day", 0, "hours in one day segment")
	fs.IntVar(&o.width, "width", 0, "field width in cells (0 = natural width)")
	fs.BoolVar(&o.noTitle, "no-title", false, "do not show the title line")
	fs.BoolVar(&o.readOnly, "read-only", false, "show the value without allowing edits")
	fs.StringVar(&o.logPath, "log", "", "write debug logs to this file")
}

// settings loads the settings file, if any, and applies the flags that were
// set explicitly.
func (o *options) settings(fs *pflag.FlagSet) (*settings.Settings, error) {
	s := settings.Default()
	if o.configPath != "" {
		loaded, err := settings.Load(o.configPath)
		if err != nil {
			return nil, err
		}
		s = loaded
	}

	if fs.Changed("value") {
		s.Value = o.value
	}
	if fs.Changed("units") {
		s.Units = o.units
	}
	if fs.Changed("hours-per-day") {
		s.HoursPerDay = o.hoursPerDay
	}
	if fs.Changed("width") {
		s.Width = o.width
	}
	if fs.Changed("no-title") {
		s.ShowTitle = !o.noTitle
	}
	if fs.Changed("read-only") {
		s.ReadOnly = o.readOnly
	}
	return s, nil
}
