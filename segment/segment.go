// Package segment models the editable parts of a duration field.
//
// The field text is a fixed grammar: one "<digits><label>" token per enabled
// unit, in magnitude order, separated by single spaces ("1d 2h 3m 4s").
// Offsets are counted in grapheme clusters; a segment's span covers its
// digits only, End being the position right after the last digit.
package segment

import (
	"github.com/iw2rmb/durafield/duration"
	"github.com/iw2rmb/durafield/internal/grapheme"
)

// MaxLength is the maximum number of digits a segment accepts.
const MaxLength = 4

// Labels are the unit suffixes shown after each segment value.
type Labels struct {
	Days    string `yaml:"days"`
	Hours   string `yaml:"hours"`
	Minutes string `yaml:"minutes"`
	Seconds string `yaml:"seconds"`
}

// DefaultLabels returns the one-letter labels "d", "h", "m" and "s".
func DefaultLabels() Labels {
	return Labels{Days: "d", Hours: "h", Minutes: "m", Seconds: "s"}
}

// For returns the label for u, falling back to the default when unset.
func (l Labels) For(u duration.Unit) string {
	var s string
	switch u {
	case duration.Days:
		s = l.Days
	case duration.Hours:
		s = l.Hours
	case duration.Minutes:
		s = l.Minutes
	case duration.Seconds:
		s = l.Seconds
	}
	if s == "" {
		return DefaultLabels().For(u)
	}
	return s
}

// Spec holds the static attributes of one segment.
type Spec struct {
	Unit      duration.Unit
	Label     string
	MaxLength int
	Millis    int64
}

// labelLen is the label width in clusters.
func (s Spec) labelLen() int { return grapheme.Count(s.Label) }

// Build returns one Spec per enabled unit in magnitude order. Units not in
// enabled are skipped; duplicates and order in enabled do not matter.
func Build(enabled []duration.Unit, labels Labels, hoursPerDay int) []Spec {
	on := make(map[duration.Unit]bool, len(enabled))
	for _, u := range enabled {
		on[u] = true
	}
	out := make([]Spec, 0, len(on))
	for _, u := range duration.Units {
		if !on[u] {
			continue
		}
		out = append(out, Spec{
			Unit:      u,
			Label:     labels.For(u),
			MaxLength: MaxLength,
			Millis:    duration.UnitMillis(u, hoursPerDay),
		})
	}
	return out
}

// UnitsOf returns the units of specs in order.
func UnitsOf(specs []Spec) []duration.Unit {
	out := make([]duration.Unit, len(specs))
	for i, s := range specs {
		out[i] = s.Unit
	}
	return out
}

// Segment is a Spec placed in the current text.
type Segment struct {
	Spec
	Value string
	Start int
	End   int
}

// Layout places specs in a text whose segment values are values. The result
// is a fresh slice; callers rebuild it whenever the text changes.
func Layout(specs []Spec, values []string) []Segment {
	out := make([]Segment, len(specs))
	start := 0
	for i, s := range specs {
		if i > 0 {
			// single separator before every segment but the first
			start++
		}
		v := ""
		if i < len(values) {
			v = values[i]
		}
		end := start + grapheme.Count(v)
		out[i] = Segment{Spec: s, Value: v, Start: start, End: end}
		start = end + s.labelLen()
	}
	return out
}

// Locate returns the index of the segment the caret at pos belongs to.
//
// A position inside [Start, End] selects that segment. In the gap between two
// segments a position more than one cluster left of the right segment's
// start stays with the left segment, anything closer goes right. Positions
// matching nothing resolve to the last segment. Locate returns -1 only for an
// empty layout.
func Locate(pos int, segs []Segment) int {
	if len(segs) == 0 {
		return -1
	}
	const whitespaceLen = 1
	for i := range segs {
		cur := segs[i]
		if cur.Start <= pos && pos <= cur.End {
			return i
		}
		if i+1 < len(segs) {
			next := segs[i+1]
			if cur.End < pos && pos < next.Start {
				if pos < next.Start-whitespaceLen {
					return i
				}
				return i + 1
			}
		}
	}
	return len(segs) - 1
}

// Snap corrects a caret position so it lies inside a segment span. A caret
// past a segment's end (in its label or the following gap) moves to that end;
// anything else not in a span moves to the start of the located segment.
func Snap(pos int, segs []Segment) int {
	i := Locate(pos, segs)
	if i < 0 {
		return 0
	}
	cur := segs[i]
	if cur.Start <= pos && pos <= cur.End {
		return pos
	}
	if pos > cur.End && (i+1 >= len(segs) || pos < segs[i+1].Start) {
		return cur.End
	}
	return cur.Start
}

// AtStart reports whether pos is the start of the segment it belongs to.
func AtStart(pos int, segs []Segment) bool {
	i := Locate(pos, segs)
	return i >= 0 && segs[i].Start == pos
}

// AtEnd reports whether pos is the end of the segment it belongs to.
func AtEnd(pos int, segs []Segment) bool {
	i := Locate(pos, segs)
	return i >= 0 && segs[i].End == pos
}
