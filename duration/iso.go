package duration

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	isoduration "github.com/sosodev/duration"
)

var (
	ErrInvalid     = errors.New("duration: invalid ISO-8601 duration")
	ErrNegative    = errors.New("duration: negative durations are not supported")
	ErrUnknownUnit = errors.New("duration: unknown unit")
	ErrTooLarge    = errors.New("duration: too large")
)

// Calendar units have no fixed length; they are folded into days.
const (
	daysPerWeek  = 7
	daysPerMonth = 30
	daysPerYear  = 365
)

// Parse decomposes an ISO-8601 duration such as "P4DT1H4M".
//
// The empty string is the absent duration and yields (nil, nil). Weeks,
// months and years are folded into days. A fractional component is carried
// into the next smaller unit; fractional seconds are truncated. Durations
// that do not fit int64 milliseconds with 24-hour days fail with ErrTooLarge.
func Parse(s string) (*Value, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	d, err := isoduration.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalid, s, err)
	}
	if d.Negative {
		return nil, fmt.Errorf("%w: %q", ErrNegative, s)
	}

	days := d.Years*daysPerYear + d.Months*daysPerMonth + d.Weeks*daysPerWeek + d.Days
	parts := [...]float64{days, d.Hours, d.Minutes, d.Seconds}
	carry := [...]float64{24, 60, 60, 0}

	var v Value
	for i, u := range Units {
		whole, frac := math.Modf(parts[i])
		if whole < 0 || math.IsNaN(whole) || math.IsInf(whole, 0) {
			return nil, fmt.Errorf("%w %q: component out of range", ErrInvalid, s)
		}
		// drop float noise such as 0.1*60 = 5.999999999
		if frac = math.Round(frac*1e9) / 1e9; frac >= 1 {
			whole, frac = whole+1, 0
		}
		if whole >= math.MaxInt64 {
			return nil, fmt.Errorf("%w: %q: %s component", ErrTooLarge, s, u)
		}
		v = v.With(u, int64(whole))
		if i+1 < len(parts) {
			parts[i+1] += frac * carry[i]
		}
	}
	if !v.Fits(DefaultHoursPerDay) {
		return nil, fmt.Errorf("%w: %q", ErrTooLarge, s)
	}
	return &v, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) *Value {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Format serializes v as an ISO-8601 duration ("P1DT2H3M4S"). Zero fields
// are omitted, the zero duration is "P0D" and nil is "".
func Format(v *Value) string {
	if v == nil {
		return ""
	}
	if v.IsZero() {
		return "P0D"
	}

	var sb strings.Builder
	sb.WriteByte('P')
	if v.Days != 0 {
		sb.WriteString(strconv.FormatInt(v.Days, 10))
		sb.WriteByte('D')
	}
	if v.Hours == 0 && v.Minutes == 0 && v.Seconds == 0 {
		return sb.String()
	}
	sb.WriteByte('T')
	for _, p := range []struct {
		n   int64
		tag byte
	}{{v.Hours, 'H'}, {v.Minutes, 'M'}, {v.Seconds, 'S'}} {
		if p.n == 0 {
			continue
		}
		sb.WriteString(strconv.FormatInt(p.n, 10))
		sb.WriteByte(p.tag)
	}
	return sb.String()
}
