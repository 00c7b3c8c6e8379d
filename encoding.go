package meetingtime

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

var jsonNull = []byte("null")

// MarshalText implements encoding.TextMarshaler. The zero value marshals to
// empty text.
func (d DateTime) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via New.
func (d *DateTime) UnmarshalText(text []byte) error {
	v, err := New(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// MarshalJSON encodes d as a JSON string, or null for the zero value.
func (d DateTime) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return jsonNull, nil
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts a JSON string in Layout. null leaves d unchanged.
func (d *DateTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("meetingtime: expected JSON string: %w", err)
	}
	return d.UnmarshalText([]byte(s))
}

// MarshalYAML implements yaml.Marshaler. The zero value encodes as null.
func (d DateTime) MarshalYAML() (any, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for scalar nodes. null leaves d
// unchanged.
func (d *DateTime) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("meetingtime: expected YAML scalar at line %d, column %d", node.Line, node.Column)
	}
	if node.Tag == "!!null" {
		return nil
	}
	return d.UnmarshalText([]byte(node.Value))
}
