package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	mt "github.com/reoring/meetingtime"
	js "github.com/reoring/meetingtime/jsonschema"
)

// result is one row of check/format output.
type result struct {
	Input     string `json:"input" yaml:"input"`
	Valid     bool   `json:"valid" yaml:"valid"`
	Canonical string `json:"canonical,omitempty" yaml:"canonical,omitempty"`
	Error     string `json:"error,omitempty" yaml:"error,omitempty"`
}

func newResult(input string, d mt.DateTime, err error) result {
	if err != nil {
		return result{Input: input, Error: err.Error()}
	}
	return result{Input: input, Valid: true, Canonical: d.String()}
}

func newCheckCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "check [TEXT...]",
		Short: "Validate date-times given as arguments, or one per line on stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs := args
			if len(inputs) == 0 {
				lines, err := readLines(cmd.InOrStdin())
				if err != nil {
					return err
				}
				inputs = lines
			}
			results := make([]result, 0, len(inputs))
			for _, s := range inputs {
				d, err := mt.New(s)
				results = append(results, newResult(s, d, err))
			}
			return report(cmd.OutOrStdout(), cfg.Output, results)
		},
	}
}

func newFormatCmd(cfg *Config) *cobra.Command {
	var v civil.DateTime
	var month int
	cmd := &cobra.Command{
		Use:   "format",
		Short: "Build a date-time from fields and print its canonical form",
		RunE: func(cmd *cobra.Command, args []string) error {
			v.Date.Month = time.Month(month)
			d, err := mt.FromCivil(v)
			return report(cmd.OutOrStdout(), cfg.Output, []result{newResult(v.String(), d, err)})
		},
	}
	f := cmd.Flags()
	f.IntVar(&v.Date.Year, "year", 0, "year")
	f.IntVar(&month, "month", 0, "month (1-12)")
	f.IntVar(&v.Date.Day, "day", 0, "day of month")
	f.IntVar(&v.Time.Hour, "hour", 0, "hour (0-23)")
	f.IntVar(&v.Time.Minute, "minute", 0, "minute")
	f.IntVar(&v.Time.Second, "second", 0, "second (must be 0)")
	for _, name := range []string{"year", "month", "day"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the text form",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := mt.DateTimeSchema().JSONSchema()
			if err != nil {
				return err
			}
			s.Schema = js.Draft
			s.Title = "MeetingDateTime"
			b, err := json.MarshalIndent(s, "", "  ")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return err
		},
	}
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return lines, nil
}

// report writes results in the requested format and returns errInvalid when
// any of them failed.
func report(w io.Writer, format string, results []result) error {
	var err error
	switch format {
	case OutputJSON:
		var b []byte
		if b, err = json.MarshalIndent(results, "", "  "); err == nil {
			_, err = fmt.Fprintln(w, string(b))
		}
	case OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(results); err == nil {
			err = enc.Close()
		}
	default:
		for _, r := range results {
			if r.Valid {
				_, err = fmt.Fprintf(w, "ok\t%s\n", r.Canonical)
			} else {
				_, err = fmt.Fprintf(w, "invalid\t%s\t%s\n", r.Input, r.Error)
			}
			if err != nil {
				break
			}
		}
	}
	if err != nil {
		return err
	}
	for _, r := range results {
		if !r.Valid {
			return errInvalid
		}
	}
	return nil
}
