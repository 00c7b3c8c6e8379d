package codec

import (
	"context"

	"cloud.google.com/go/civil"

	mt "github.com/reoring/meetingtime"
	js "github.com/reoring/meetingtime/jsonschema"
)

// Text returns a Codec that converts between Layout strings and mt.DateTime.
func Text() mt.Codec[string, mt.DateTime] {
	return &textCodec{
		in:  stringSchema{},
		out: mt.DateTimeSchema(),
	}
}

type textCodec struct {
	in  mt.Schema[string]
	out mt.Schema[mt.DateTime]
}

func (c *textCodec) In() mt.Schema[string]       { return c.in }
func (c *textCodec) Out() mt.Schema[mt.DateTime] { return c.out }

func (c *textCodec) Decode(ctx context.Context, a string) (mt.DateTime, error) {
	// wire(string) -> domain(DateTime) -> Out.ValidateValue
	d, err := mt.New(a)
	if err != nil {
		return mt.DateTime{}, mt.IssuesOf("/", err)
	}
	if err := c.out.ValidateValue(ctx, d); err != nil {
		return mt.DateTime{}, err
	}
	return d, nil
}

func (c *textCodec) Encode(ctx context.Context, b mt.DateTime) (string, error) {
	// Validate using Out, convert to wire(string), then re-validate via In.Parse
	if err := c.out.ValidateValue(ctx, b); err != nil {
		return "", err
	}
	s := b.String()
	if _, err := c.in.Parse(ctx, s); err != nil {
		return "", err
	}
	return s, nil
}

// Civil returns a Codec that converts between civil.DateTime and mt.DateTime.
// Decode goes through mt.FromCivil, so values carrying seconds are rejected.
func Civil() mt.Codec[civil.DateTime, mt.DateTime] {
	return &civilCodec{
		in:  civilSchema{},
		out: mt.DateTimeSchema(),
	}
}

type civilCodec struct {
	in  mt.Schema[civil.DateTime]
	out mt.Schema[mt.DateTime]
}

func (c *civilCodec) In() mt.Schema[civil.DateTime] { return c.in }
func (c *civilCodec) Out() mt.Schema[mt.DateTime]   { return c.out }

func (c *civilCodec) Decode(ctx context.Context, a civil.DateTime) (mt.DateTime, error) {
	d, err := mt.FromCivil(a)
	if err != nil {
		return mt.DateTime{}, mt.IssuesOf("/", err)
	}
	if err := c.out.ValidateValue(ctx, d); err != nil {
		return mt.DateTime{}, err
	}
	return d, nil
}

func (c *civilCodec) Encode(ctx context.Context, b mt.DateTime) (civil.DateTime, error) {
	if err := c.out.ValidateValue(ctx, b); err != nil {
		return civil.DateTime{}, err
	}
	v := b.Civil()
	if err := c.in.ValidateValue(ctx, v); err != nil {
		return civil.DateTime{}, err
	}
	return v, nil
}

// ---- helpers ----

type stringSchema struct{}

func (stringSchema) Parse(ctx context.Context, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", mt.Issues{mt.IssueAt("/", mt.CodeInvalidType, "expected string")}
	}
	if err := (stringSchema{}).ValidateValue(ctx, s); err != nil {
		return "", err
	}
	return s, nil
}

func (stringSchema) ValidateValue(ctx context.Context, v string) error {
	if v == "" {
		return mt.IssuesOf("/", mt.ErrMissingArgument)
	}
	if _, err := mt.Parse(v); err != nil {
		return mt.IssuesOf("/", err)
	}
	return nil
}

func (stringSchema) JSONSchema() (*js.Schema, error) { return mt.DateTimeSchema().JSONSchema() }

type civilSchema struct{}

func (civilSchema) Parse(ctx context.Context, v any) (civil.DateTime, error) {
	dt, ok := v.(civil.DateTime)
	if !ok {
		return civil.DateTime{}, mt.Issues{mt.IssueAt("/", mt.CodeInvalidType, "expected civil.DateTime")}
	}
	if err := (civilSchema{}).ValidateValue(ctx, dt); err != nil {
		return civil.DateTime{}, err
	}
	return dt, nil
}

func (civilSchema) ValidateValue(ctx context.Context, v civil.DateTime) error {
	if v == (civil.DateTime{}) {
		return mt.IssuesOf("/", mt.ErrMissingArgument)
	}
	if !mt.IsValidCivil(v) {
		return mt.IssuesOf("/", &mt.ConstraintError{Input: mt.Format(v)})
	}
	return nil
}

func (civilSchema) JSONSchema() (*js.Schema, error) {
	return &js.Schema{Type: "object", Description: "civil date-time with minute precision"}, nil
}
