package meetingtime

import "errors"

const fragmentLen = 16

// IssueAt creates an Issue at the given JSON Pointer with the provided code and message.
func IssueAt(path, code, msg string) Issue {
	return Issue{Path: path, Code: code, Message: msg, Offset: -1}
}

// IssuesOf converts an error returned by this package into Issues rooted at
// path. Issues are passed through unchanged; unknown errors yield nil.
func IssuesOf(path string, err error) Issues {
	if err == nil {
		return nil
	}
	if iss, ok := AsIssues(err); ok {
		return iss
	}
	if path == "" {
		path = "/"
	}
	if errors.Is(err, ErrMissingArgument) {
		it := IssueAt(path, CodeRequired, "datetime is required")
		it.Cause = err
		return Issues{it}
	}
	if !errors.Is(err, ErrInvalidDateTime) {
		var pe *ParseError
		if !errors.As(err, &pe) {
			return nil
		}
	}
	it := IssueAt(path, CodeInvalidFormat, MessageConstraints)
	it.Hint = Layout
	it.Cause = err
	var pe *ParseError
	if errors.As(err, &pe) {
		it.Offset = int64(pe.Offset)
		it.InputFragment = fragment(pe.Input, pe.Offset)
	}
	return Issues{it}
}

func fragment(s string, off int) string {
	if off < 0 || off > len(s) {
		return ""
	}
	end := off + fragmentLen
	if end > len(s) {
		end = len(s)
	}
	return s[off:end]
}
