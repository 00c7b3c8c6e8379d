package meetingtime

import (
	"errors"
	"fmt"
	"strings"
)

// MessageConstraints is the user-facing message carried by every constructor
// failure. Callers present it verbatim.
const MessageConstraints = "DateTime should be formatted as d MMM uuuu h:mma; e.g. 21 Apr 2021 2:30pm"

var (
	// ErrMissingArgument is returned when a constructor receives an absent
	// value: the empty string or the zero civil.DateTime.
	ErrMissingArgument = errors.New("meetingtime: missing argument")

	// ErrInvalidDateTime matches every *ConstraintError via errors.Is.
	ErrInvalidDateTime = errors.New(MessageConstraints)
)

// ParseError reports where and why text failed the layout or the calendar.
type ParseError struct {
	Input  string
	Offset int // Byte offset into Input.
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("meetingtime: cannot parse %q at offset %d: %s", e.Input, e.Offset, e.Reason)
}

// ConstraintError is returned by New and FromCivil when the input is not a
// valid date-time in the canonical layout. Its message is always
// MessageConstraints.
type ConstraintError struct {
	Input string
	Err   error // Underlying *ParseError, or nil when the round trip lost precision.
}

func (e *ConstraintError) Error() string { return MessageConstraints }

func (e *ConstraintError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInvalidDateTime}
	}
	return []error{ErrInvalidDateTime, e.Err}
}

// Issue codes
const (
	CodeInvalidType   = "invalid_type"
	CodeRequired      = "required"
	CodeInvalidFormat = "invalid_format"
)

// Issue represents a single validation entry.
type Issue struct {
	Path    string // JSON Pointer (for example: /meetings/2/at).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints, format names, etc.
	Cause   error  // Optional: underlying error.
	Offset  int64  // Byte offset in the input text (-1 when unknown).
	// InputFragment is an optional snippet of the offending input, starting at
	// Offset.
	InputFragment string
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Unwrap exposes the causes so errors.Is(iss, ErrInvalidDateTime) works on
// codec and schema results.
func (iss Issues) Unwrap() []error {
	var out []error
	for _, it := range iss {
		if it.Cause != nil {
			out = append(out, it.Cause)
		}
	}
	return out
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
