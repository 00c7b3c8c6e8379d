package meetingtime

// Package meetingtime provides:
//
// - DateTime, an immutable meeting date-time value bound to the layout "d MMM uuuu h:mma"
// - Strict parsing: impossible calendar dates are rejected, never rolled over
// - A stable error model (fixed constraint message, ParseError with offsets, Issues)
// - Encoding hooks for text, JSON (goccy/go-json) and YAML (yaml.v3)
// - A Schema/Codec pair so validation layers can treat the value like any other field
//
// Design policy:
// - Keep the value type and its grammar in the root package; codecs live under codec/,
//   the JSON Schema export type under jsonschema/, and the CLI under cmd/meetingtime.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//  dt, err := meetingtime.New("21 Apr 2021 2:30pm")
//  if err != nil {
//      return err // err.Error() is meetingtime.MessageConstraints
//  }
//  fmt.Println(dt) // 21 Apr 2021 2:30pm
//
//  ok := meetingtime.IsValid("29 Feb 2021 1:00pm") // false, 2021 is not a leap year
