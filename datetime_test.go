package meetingtime_test

import (
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/civil"

	mt "github.com/reoring/meetingtime"
)

func dt(y int, m time.Month, d, h, mi int) civil.DateTime {
	return civil.DateTime{
		Date: civil.Date{Year: y, Month: m, Day: d},
		Time: civil.Time{Hour: h, Minute: mi},
	}
}

func TestNew_CanonicalExample(t *testing.T) {
	d, err := mt.New("21 Apr 2021 2:30pm")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got := d.String(); got != "21 Apr 2021 2:30pm" {
		t.Fatalf("String() = %q", got)
	}
	if got, want := d.Civil(), dt(2021, time.April, 21, 14, 30); got != want {
		t.Fatalf("Civil() = %v, want %v", got, want)
	}
}

func TestIsValid(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"21 Apr 2021 2:30pm", true},
		{"31 Feb 2021 1:00pm", false},
		{"29 Feb 2021 1:00pm", false},
		{"29 Feb 2020 1:00pm", true},
		{"29 Feb 1900 1:00pm", false},
		{"29 Feb 2000 1:00pm", true},
		{"31 Apr 2021 1:00pm", false},
		{"31 Dec 2021 11:59pm", true},
		{"2021-04-21 14:30", false},
		{"21 Apr 2021 14:30", false},
		{"21 Apr 2021 2:30PM", false},
		{"21 apr 2021 2:30pm", false},
		{"21 April 2021 2:30pm", false},
		{"21 Apr 2021 2:30 pm", false},
		{"21  Apr 2021 2:30pm", false},
		{"21 Apr 2021 2:30pm ", false},
		{" 21 Apr 2021 2:30pm", false},
		{"21 Apr 2021 2:3pm", false},
		{"21 Apr 2021 0:30pm", false},
		{"21 Apr 2021 13:30pm", false},
		{"21 Apr 2021 2:60pm", false},
		{"0 Apr 2021 2:30pm", false},
		{"32 Jan 2021 2:30pm", false},
		{"21 Apr 21 2:30pm", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := mt.IsValid(tc.in); got != tc.want {
			t.Errorf("IsValid(%q) = %v, want %v", tc.in, got, tc.want)
		}
		_, err := mt.New(tc.in)
		if (err == nil) != tc.want {
			t.Errorf("New(%q) err = %v, IsValid = %v", tc.in, err, tc.want)
		}
	}
}

func TestNew_ZeroPaddedFieldsAccepted(t *testing.T) {
	padded, err := mt.New("02 Apr 2021 02:30pm")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	plain := mt.MustNew("2 Apr 2021 2:30pm")
	if !padded.Equal(plain) {
		t.Fatalf("padded %v != plain %v", padded, plain)
	}
	if padded.String() != "2 Apr 2021 2:30pm" {
		t.Fatalf("expected canonical output without padding, got %q", padded.String())
	}
}

func TestNew_MeridiemBoundaries(t *testing.T) {
	cases := map[string]civil.DateTime{
		"1 Jan 2021 12:00am": dt(2021, time.January, 1, 0, 0),
		"1 Jan 2021 12:59am": dt(2021, time.January, 1, 0, 59),
		"1 Jan 2021 1:00am":  dt(2021, time.January, 1, 1, 0),
		"1 Jan 2021 11:59am": dt(2021, time.January, 1, 11, 59),
		"1 Jan 2021 12:00pm": dt(2021, time.January, 1, 12, 0),
		"1 Jan 2021 1:05pm":  dt(2021, time.January, 1, 13, 5),
		"1 Jan 2021 11:59pm": dt(2021, time.January, 1, 23, 59),
	}
	for in, want := range cases {
		d, err := mt.New(in)
		if err != nil {
			t.Fatalf("New(%q): %v", in, err)
		}
		if d.Civil() != want {
			t.Fatalf("New(%q) = %v, want %v", in, d.Civil(), want)
		}
		if d.String() != in {
			t.Fatalf("String() = %q, want %q", d.String(), in)
		}
	}
}

func TestNew_Errors(t *testing.T) {
	_, err := mt.New("")
	if !errors.Is(err, mt.ErrMissingArgument) {
		t.Fatalf("expected ErrMissingArgument, got %v", err)
	}

	_, err = mt.New("31 Feb 2021 1:00pm")
	if err == nil {
		t.Fatalf("expected error")
	}
	if err.Error() != mt.MessageConstraints {
		t.Fatalf("message = %q", err.Error())
	}
	if !errors.Is(err, mt.ErrInvalidDateTime) {
		t.Fatalf("expected errors.Is ErrInvalidDateTime")
	}
	var ce *mt.ConstraintError
	if !errors.As(err, &ce) || ce.Input != "31 Feb 2021 1:00pm" {
		t.Fatalf("expected *ConstraintError with input, got %#v", err)
	}
	var pe *mt.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected wrapped *ParseError")
	}
	if pe.Offset != 3 {
		t.Fatalf("expected offset at month (3), got %d", pe.Offset)
	}
}

func TestFromCivil(t *testing.T) {
	v := dt(2021, time.April, 21, 14, 30)
	d, err := mt.FromCivil(v)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if d.Civil() != v {
		t.Fatalf("stored value changed: %v", d.Civil())
	}
	if !d.Equal(mt.MustNew("21 Apr 2021 2:30pm")) {
		t.Fatalf("FromCivil and New disagree")
	}
}

func TestFromCivil_Rejects(t *testing.T) {
	withSeconds := dt(2021, time.April, 21, 14, 30)
	withSeconds.Time.Second = 15
	withNanos := dt(2021, time.April, 21, 14, 30)
	withNanos.Time.Nanosecond = 1

	cases := map[string]civil.DateTime{
		"seconds":     withSeconds,
		"nanoseconds": withNanos,
		"feb 30":      dt(2021, time.February, 30, 9, 0),
		"month 13":    dt(2021, 13, 1, 9, 0),
		"hour 24":     dt(2021, time.April, 1, 24, 0),
		"hour -1":     dt(2021, time.April, 1, -1, 0),
		"minute 60":   dt(2021, time.April, 1, 9, 60),
		"minute 100":  dt(2021, time.April, 1, 9, 100),
		"day 0":       dt(2021, time.April, 0, 9, 0),
	}
	for name, v := range cases {
		if mt.IsValidCivil(v) {
			t.Errorf("%s: IsValidCivil = true", name)
		}
		_, err := mt.FromCivil(v)
		if !errors.Is(err, mt.ErrInvalidDateTime) {
			t.Errorf("%s: expected ErrInvalidDateTime, got %v", name, err)
			continue
		}
		if err.Error() != mt.MessageConstraints {
			t.Errorf("%s: message = %q", name, err.Error())
		}
	}

	if _, err := mt.FromCivil(civil.DateTime{}); !errors.Is(err, mt.ErrMissingArgument) {
		t.Fatalf("expected ErrMissingArgument, got %v", err)
	}
}

func TestRoundTrip(t *testing.T) {
	values := []civil.DateTime{
		dt(2021, time.April, 21, 14, 30),
		dt(2020, time.February, 29, 0, 0),
		dt(0, time.January, 1, 12, 0),
		dt(-1, time.December, 31, 23, 59),
		dt(-44, time.March, 15, 11, 5),
		dt(9999, time.December, 31, 23, 59),
		dt(10000, time.January, 1, 0, 1),
		dt(999999999, time.June, 30, 6, 45),
	}
	for _, v := range values {
		d, err := mt.FromCivil(v)
		if err != nil {
			t.Fatalf("FromCivil(%v): %v", v, err)
		}
		back, err := mt.Parse(d.String())
		if err != nil {
			t.Fatalf("Parse(%q): %v", d.String(), err)
		}
		if back != v {
			t.Fatalf("round trip %v -> %q -> %v", v, d.String(), back)
		}
		again, err := mt.New(d.String())
		if err != nil || !again.Equal(d) {
			t.Fatalf("New(%q) = %v, %v", d.String(), again, err)
		}
	}
}

func TestEqualAndHash(t *testing.T) {
	a := mt.MustNew("2 Apr 2021 2:30pm")
	b := mt.MustNew("02 Apr 2021 02:30pm")
	c := mt.MustNew("2 Apr 2021 2:31pm")

	if !a.Equal(b) || a != b {
		t.Fatalf("expected equal values")
	}
	if a.Hash() != b.Hash() {
		t.Fatalf("equal values must hash identically")
	}
	if a.Equal(c) {
		t.Fatalf("expected different values")
	}
	if a.Hash() == c.Hash() {
		t.Fatalf("unexpected hash collision for neighbouring minutes")
	}
	if a.Hash() != mt.MustNew("2 Apr 2021 2:30pm").Hash() {
		t.Fatalf("hash must be deterministic")
	}
}

func TestEquals_Untyped(t *testing.T) {
	a := mt.MustNew("21 Apr 2021 2:30pm")
	b := mt.MustNew("21 Apr 2021 2:30pm")
	var nilPtr *mt.DateTime

	if !a.Equals(a) {
		t.Fatalf("identity must be equal")
	}
	if !a.Equals(b) || !a.Equals(&b) {
		t.Fatalf("value and pointer forms must be equal")
	}
	if a.Equals(nil) || a.Equals(nilPtr) {
		t.Fatalf("nil must not be equal")
	}
	if a.Equals("21 Apr 2021 2:30pm") || a.Equals(a.Civil()) {
		t.Fatalf("other types must not be equal")
	}
}

func TestZeroValue(t *testing.T) {
	var d mt.DateTime
	if !d.IsZero() {
		t.Fatalf("expected zero")
	}
	if d.String() != "" {
		t.Fatalf("zero String() = %q", d.String())
	}
	if mt.MustNew("1 Jan 2021 9:00am").IsZero() {
		t.Fatalf("constructed value reported zero")
	}
}

func TestMustNew_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	mt.MustNew("not a date")
}
