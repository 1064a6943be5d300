package segment

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/iw2rmb/durafield/duration"
)

// Render builds the field text for v.
//
// Editable text always lists every segment so offsets stay predictable.
// Read-only text shows only the nonzero segments, "0<label>" of the largest
// unit for a zero duration, and nothing for a nil one.
func Render(v *duration.Value, specs []Spec, editable bool) string {
	var data duration.Value
	if v != nil {
		data = *v
	}

	if editable {
		parts := make([]string, len(specs))
		for i, s := range specs {
			parts[i] = strconv.FormatInt(data.Get(s.Unit), 10) + s.Label
		}
		return strings.Join(parts, " ")
	}

	if v == nil || len(specs) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, s := range specs {
		n := data.Get(s.Unit)
		if n == 0 {
			continue
		}
		sb.WriteString(strconv.FormatInt(n, 10))
		sb.WriteString(s.Label)
		sb.WriteByte(' ')
	}
	if out := strings.TrimSpace(sb.String()); out != "" {
		return out
	}
	return "0" + specs[0].Label
}

// Values decodes parsed segment digits into a Value. Units without a spec
// are zero. Digits out of int64 range fail with an error wrapping
// ErrMalformed.
func Values(values []string, specs []Spec) (duration.Value, error) {
	var v duration.Value
	for i, s := range specs {
		if i >= len(values) {
			break
		}
		n, err := strconv.ParseInt(values[i], 10, 64)
		if err != nil {
			return duration.Value{}, fmt.Errorf("%w: segment %d: %v", ErrMalformed, i, err)
		}
		v = v.With(s.Unit, n)
	}
	return v, nil
}
