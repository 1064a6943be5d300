package duration

import (
	"errors"
	"testing"
)

func TestParse_Components(t *testing.T) {
	cases := []struct {
		in   string
		want Value
	}{
		{in: "P1DT2H3M4S", want: Value{Days: 1, Hours: 2, Minutes: 3, Seconds: 4}},
		{in: "P4DT1H4M", want: Value{Days: 4, Hours: 1, Minutes: 4}},
		{in: "PT90M", want: Value{Minutes: 90}},
		{in: "P2W", want: Value{Days: 14}},
		{in: "PT1.5H", want: Value{Hours: 1, Minutes: 30}},
		{in: "P0D", want: Value{}},
		{in: "  PT5S ", want: Value{Seconds: 5}},
	}
	for _, tc := range cases {
		got, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("Parse(%q): unexpected error: %v", tc.in, err)
		}
		if got == nil || *got != tc.want {
			t.Fatalf("Parse(%q): got %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestParse_EmptyIsNull(t *testing.T) {
	v, err := Parse("")
	if err != nil || v != nil {
		t.Fatalf("Parse(\"\"): got (%v, %v), want (nil, nil)", v, err)
	}
}

func TestParse_Errors(t *testing.T) {
	if _, err := Parse("1d 2h"); !errors.Is(err, ErrInvalid) {
		t.Fatalf("free-form text: got %v, want ErrInvalid", err)
	}
	if _, err := Parse("-P1D"); !errors.Is(err, ErrNegative) {
		t.Fatalf("negative: got %v, want ErrNegative", err)
	}
}

func TestParse_LargestDuration(t *testing.T) {
	// 106751991167 days and 7 hours is the last whole hour below 2^63 ms
	v, err := Parse("P106751991167DT7H")
	if err != nil {
		t.Fatalf("largest duration: unexpected error: %v", err)
	}
	if want := (Value{Days: 106751991167, Hours: 7}); *v != want {
		t.Fatalf("largest duration: got %+v, want %+v", *v, want)
	}

	for _, in := range []string{
		"P106751991167DT8H",
		"P106751991168D",
		"P999999999999999D",
		"PT9223372036854775808S",
		"P300000000Y",
	} {
		if _, err := Parse(in); !errors.Is(err, ErrTooLarge) {
			t.Fatalf("Parse(%q): got %v, want ErrTooLarge", in, err)
		}
	}
}

func TestValue_Fits(t *testing.T) {
	cases := []struct {
		v           Value
		hoursPerDay int
		want        bool
	}{
		{v: Value{Days: 106751991167}, hoursPerDay: 24, want: true},
		{v: Value{Days: 106751991168}, hoursPerDay: 24, want: false},
		{v: Value{Days: 106751991168}, hoursPerDay: 8, want: true},
		{v: Value{Days: 320255973502}, hoursPerDay: 8, want: false},
		{v: Value{Seconds: 9223372036854775}, hoursPerDay: 24, want: true},
		{v: Value{Seconds: 9223372036854776}, hoursPerDay: 24, want: false},
		{v: Value{Hours: -1}, hoursPerDay: 24, want: false},
	}
	for _, tc := range cases {
		if got := tc.v.Fits(tc.hoursPerDay); got != tc.want {
			t.Fatalf("%+v.Fits(%d): got %v, want %v", tc.v, tc.hoursPerDay, got, tc.want)
		}
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		in   *Value
		want string
	}{
		{in: nil, want: ""},
		{in: &Value{}, want: "P0D"},
		{in: &Value{Days: 4, Hours: 1, Minutes: 4}, want: "P4DT1H4M"},
		{in: &Value{Days: 3}, want: "P3D"},
		{in: &Value{Seconds: 59}, want: "PT59S"},
		{in: &Value{Days: 1, Hours: 2, Minutes: 3, Seconds: 4}, want: "P1DT2H3M4S"},
	}
	for _, tc := range cases {
		if got := Format(tc.in); got != tc.want {
			t.Fatalf("Format(%+v): got %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalize_CarriesIntoLargerUnits(t *testing.T) {
	got := Normalize(&Value{Days: 2, Hours: 3, Minutes: 133}, Units, 24)
	want := Value{Days: 2, Hours: 5, Minutes: 13}
	if *got != want {
		t.Fatalf("normalize: got %+v, want %+v", *got, want)
	}
}

func TestNormalize_DisabledUnitFoldsIntoSmaller(t *testing.T) {
	got := Normalize(&Value{Days: 2, Hours: 3, Minutes: 133}, []Unit{Days, Minutes}, 24)
	want := Value{Days: 2, Minutes: 313}
	if *got != want {
		t.Fatalf("normalize without hours: got %+v, want %+v", *got, want)
	}
}

func TestNormalize_SecondsDisabledAbsorbed(t *testing.T) {
	got := Normalize(&Value{Seconds: 90}, []Unit{Days, Hours, Minutes}, 24)
	want := Value{Minutes: 1}
	if *got != want {
		t.Fatalf("normalize without seconds: got %+v, want %+v", *got, want)
	}
}

func TestNormalize_WorkDays(t *testing.T) {
	got := Normalize(&Value{Hours: 20}, Units, 8)
	want := Value{Days: 2, Hours: 4}
	if *got != want {
		t.Fatalf("normalize with 8h days: got %+v, want %+v", *got, want)
	}
}

func TestNormalize_Nil(t *testing.T) {
	if got := Normalize(nil, Units, 24); got != nil {
		t.Fatalf("normalize(nil): got %+v, want nil", got)
	}
}

func TestRoundTrip_AllUnits(t *testing.T) {
	for _, in := range []string{"P1DT2H3M4S", "P4DT1H4M", "PT59S", "P12D", "P0D", "PT23H59M59S"} {
		v, err := Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", in, err)
		}
		if got := Format(Normalize(v, Units, DefaultHoursPerDay)); got != in {
			t.Fatalf("round trip %q: got %q", in, got)
		}
	}
}

func TestRoundTrip_Unnormalized(t *testing.T) {
	v := MustParse("PT90M")
	if got, want := Format(Normalize(v, Units, DefaultHoursPerDay)), "PT1H30M"; got != want {
		t.Fatalf("round trip PT90M: got %q, want %q", got, want)
	}
}

func TestParseUnit(t *testing.T) {
	u, err := ParseUnit("minutes")
	if err != nil || u != Minutes {
		t.Fatalf("ParseUnit(minutes): got (%v, %v)", u, err)
	}
	if _, err := ParseUnit("weeks"); !errors.Is(err, ErrUnknownUnit) {
		t.Fatalf("ParseUnit(weeks): got %v, want ErrUnknownUnit", err)
	}
}
