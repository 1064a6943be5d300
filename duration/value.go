package duration

import (
	"fmt"
	"math"
)

// Unit identifies one component of a duration.
type Unit uint8

const (
	Days Unit = iota
	Hours
	Minutes
	Seconds
)

// Units lists every unit in magnitude order, largest first.
var Units = []Unit{Days, Hours, Minutes, Seconds}

const (
	msPerSecond = int64(1000)
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
)

// DefaultHoursPerDay is the length of a day when no work-day length is set.
const DefaultHoursPerDay = 24

func (u Unit) String() string {
	switch u {
	case Days:
		return "days"
	case Hours:
		return "hours"
	case Minutes:
		return "minutes"
	case Seconds:
		return "seconds"
	default:
		return fmt.Sprintf("unit(%d)", uint8(u))
	}
}

// ParseUnit maps a unit name ("days", "hours", ...) to its Unit.
func ParseUnit(s string) (Unit, error) {
	for _, u := range Units {
		if u.String() == s {
			return u, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, s)
}

// UnitMillis returns the size of u in milliseconds. A day lasts hoursPerDay
// hours; values below 1 fall back to DefaultHoursPerDay.
func UnitMillis(u Unit, hoursPerDay int) int64 {
	switch u {
	case Days:
		if hoursPerDay < 1 {
			hoursPerDay = DefaultHoursPerDay
		}
		return int64(hoursPerDay) * msPerHour
	case Hours:
		return msPerHour
	case Minutes:
		return msPerMinute
	case Seconds:
		return msPerSecond
	default:
		return 0
	}
}

// Value is a duration split into whole units. Fields are never negative.
type Value struct {
	Days    int64
	Hours   int64
	Minutes int64
	Seconds int64
}

// Get returns the count stored for u.
func (v Value) Get(u Unit) int64 {
	switch u {
	case Days:
		return v.Days
	case Hours:
		return v.Hours
	case Minutes:
		return v.Minutes
	case Seconds:
		return v.Seconds
	default:
		return 0
	}
}

// With returns a copy of v with the count for u replaced by n.
func (v Value) With(u Unit, n int64) Value {
	switch u {
	case Days:
		v.Days = n
	case Hours:
		v.Hours = n
	case Minutes:
		v.Minutes = n
	case Seconds:
		v.Seconds = n
	}
	return v
}

func (v Value) IsZero() bool { return v == Value{} }

// Millis returns the total length of v in milliseconds.
func (v Value) Millis(hoursPerDay int) int64 {
	var total int64
	for _, u := range Units {
		total += v.Get(u) * UnitMillis(u, hoursPerDay)
	}
	return total
}

// Fits reports whether the total length of v in milliseconds fits an int64.
// Millis and Normalize are only meaningful for values that fit.
func (v Value) Fits(hoursPerDay int) bool {
	var total int64
	for _, u := range Units {
		n, size := v.Get(u), UnitMillis(u, hoursPerDay)
		if n < 0 || n > (math.MaxInt64-total)/size {
			return false
		}
		total += n * size
	}
	return true
}

// Normalize redistributes v over units, which must be in magnitude order.
//
// Each enabled unit takes the whole quotient of what is left, so a disabled
// larger unit is folded into the next enabled smaller one and the remainder
// below the smallest enabled unit is dropped. Normalize(nil) is nil.
func Normalize(v *Value, units []Unit, hoursPerDay int) *Value {
	if v == nil {
		return nil
	}
	total := v.Millis(hoursPerDay)
	out := Value{}
	for _, u := range units {
		size := UnitMillis(u, hoursPerDay)
		if size <= 0 {
			continue
		}
		out = out.With(u, total/size)
		total %= size
	}
	return &out
}
