package meetingtime

import (
	"encoding/binary"

	"cloud.google.com/go/civil"
	"github.com/cespare/xxhash/v2"
)

// DateTime is the date and time of a meeting, guaranteed to be a real
// calendar minute expressible in Layout. The zero value means "absent" and is
// never returned by a constructor.
type DateTime struct {
	dt civil.DateTime
}

// New parses text in Layout. It returns ErrMissingArgument for the empty
// string and a *ConstraintError for anything that is not a valid date-time.
func New(text string) (DateTime, error) {
	if text == "" {
		return DateTime{}, ErrMissingArgument
	}
	v, err := Parse(text)
	if err != nil {
		return DateTime{}, &ConstraintError{Input: text, Err: err}
	}
	return DateTime{dt: v}, nil
}

// MustNew is like New but panics on error. Intended for literals.
func MustNew(text string) DateTime {
	d, err := New(text)
	if err != nil {
		panic(err)
	}
	return d
}

// FromCivil accepts v only when formatting it in Layout and parsing the result
// gives v back. That rejects impossible dates as well as values carrying
// seconds or nanoseconds, which the layout cannot express. v itself is stored.
func FromCivil(v civil.DateTime) (DateTime, error) {
	if v == (civil.DateTime{}) {
		return DateTime{}, ErrMissingArgument
	}
	text := Format(v)
	back, perr := parse(text)
	if perr != nil {
		traceFailure(perr)
		return DateTime{}, &ConstraintError{Input: text, Err: perr}
	}
	if back != v {
		Logger().Debug().Str("input", v.String()).Str("formatted", text).Msg("datetime does not round-trip")
		return DateTime{}, &ConstraintError{Input: text}
	}
	return DateTime{dt: v}, nil
}

// IsValid reports whether text parses in Layout onto a real calendar date.
func IsValid(text string) bool {
	_, err := parse(text)
	return err == nil
}

// IsValidCivil reports whether v survives the Format/parse round trip.
func IsValidCivil(v civil.DateTime) bool {
	back, err := parse(Format(v))
	return err == nil && back == v
}

// Parse parses text strictly in Layout. Failures are *ParseError values and
// are traced at debug level on the package logger.
func Parse(text string) (civil.DateTime, error) {
	v, err := parse(text)
	if err != nil {
		traceFailure(err)
		return civil.DateTime{}, err
	}
	return v, nil
}

// Civil returns the stored civil date-time.
func (d DateTime) Civil() civil.DateTime { return d.dt }

// IsZero reports whether d is the absent value.
func (d DateTime) IsZero() bool { return d.dt == civil.DateTime{} }

// String returns the canonical Layout form, or "" for the zero value.
func (d DateTime) String() string {
	if d.IsZero() {
		return ""
	}
	return Format(d.dt)
}

// Equal reports whether d and o hold the same year, month, day, hour and minute.
func (d DateTime) Equal(o DateTime) bool { return d.dt == o.dt }

// Equals is the untyped form of Equal: it accepts DateTime and *DateTime and
// returns false for nil pointers and values of any other type.
func (d DateTime) Equals(other any) bool {
	switch o := other.(type) {
	case DateTime:
		return d.Equal(o)
	case *DateTime:
		return o != nil && d.Equal(*o)
	default:
		return false
	}
}

// Hash returns a stable 64-bit hash of the stored fields. Equal values hash
// identically across processes.
func (d DateTime) Hash() uint64 {
	var buf [32]byte
	binary.LittleEndian.PutUint64(buf[0:], uint64(int64(d.dt.Date.Year)))
	binary.LittleEndian.PutUint32(buf[8:], uint32(d.dt.Date.Month))
	binary.LittleEndian.PutUint32(buf[12:], uint32(d.dt.Date.Day))
	binary.LittleEndian.PutUint32(buf[16:], uint32(d.dt.Time.Hour))
	binary.LittleEndian.PutUint32(buf[20:], uint32(d.dt.Time.Minute))
	binary.LittleEndian.PutUint32(buf[24:], uint32(d.dt.Time.Second))
	binary.LittleEndian.PutUint32(buf[28:], uint32(d.dt.Time.Nanosecond))
	return xxhash.Sum64(buf[:])
}
