package meetingtime

import (
	"context"
	"fmt"

	"cloud.google.com/go/civil"

	js "github.com/reoring/meetingtime/jsonschema"
)

// FormatName is the JSON Schema "format" advertised for the text form.
const FormatName = "meeting-datetime"

// Pattern matches the grammar of Layout. It cannot check the calendar: text
// such as "31 Feb 2021 1:00pm" matches but is still rejected by New.
const Pattern = `^(0?[1-9]|[12][0-9]|3[01]) (Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec) ([0-9]{4}|\+[0-9]{5,9}|-[0-9]{4,9}) (0?[1-9]|1[0-2]):[0-5][0-9](am|pm)$`

const example = "21 Apr 2021 2:30pm"

// DateTimeSchema returns the Schema for DateTime values. Parse accepts a
// string in Layout, a DateTime, a *DateTime or a civil.DateTime.
func DateTimeSchema() Schema[DateTime] { return dateTimeSchema{} }

type dateTimeSchema struct{}

func (dateTimeSchema) Parse(ctx context.Context, v any) (DateTime, error) {
	var (
		d   DateTime
		err error
	)
	switch x := v.(type) {
	case string:
		d, err = New(x)
	case DateTime:
		d = x
	case *DateTime:
		if x != nil {
			d = *x
		}
	case civil.DateTime:
		d, err = FromCivil(x)
	case nil:
		err = ErrMissingArgument
	default:
		return DateTime{}, Issues{IssueAt("/", CodeInvalidType, fmt.Sprintf("expected string, got %T", v))}
	}
	if err != nil {
		return DateTime{}, IssuesOf("/", err)
	}
	if err := (dateTimeSchema{}).ValidateValue(ctx, d); err != nil {
		return DateTime{}, err
	}
	return d, nil
}

func (dateTimeSchema) ValidateValue(ctx context.Context, v DateTime) error {
	if v.IsZero() {
		return IssuesOf("/", ErrMissingArgument)
	}
	return nil
}

func (dateTimeSchema) JSONSchema() (*js.Schema, error) {
	minLen := len("1 Jan 0000 1:00am")
	return &js.Schema{
		Type:        "string",
		Format:      FormatName,
		Pattern:     Pattern,
		MinLength:   &minLen,
		Description: MessageConstraints,
		Examples:    []any{example},
	}, nil
}
