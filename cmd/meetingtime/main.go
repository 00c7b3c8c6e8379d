package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	mt "github.com/reoring/meetingtime"
)

// errInvalid signals that at least one input was rejected. The rejection
// itself has already been written to stdout.
var errInvalid = errors.New("one or more date-times are invalid")

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}
	root := newRootCmd(cfg, os.Stdin, os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		if !errors.Is(err, errInvalid) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func newRootCmd(cfg *Config, in io.Reader, out, errOut io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "meetingtime",
		Short:         "Validate and format meeting date-times (" + mt.Layout + ")",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			l, err := newLogger(cfg.LogLevel, errOut)
			if err != nil {
				return err
			}
			mt.SetLogger(l)
			return nil
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "output format: text, json or yaml")
	root.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (trace, debug, info, warn, error)")

	root.AddCommand(newCheckCmd(cfg), newFormatCmd(cfg), newSchemaCmd())
	return root
}
