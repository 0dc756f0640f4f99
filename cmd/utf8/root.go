package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// globalFlags holds the flags shared by all commands.
type globalFlags struct {
	verbose   bool   // debug logging
	logFormat string // console or json
}

// app is the state shared by the commands of one invocation.
type app struct {
	flags globalFlags
	log   zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: zerolog.Nop()}
	cmd := &cobra.Command{
		Use:           "utf8",
		Short:         "UTF-8 encoder and decoder",
		Long:          "Encode Unicode code points to UTF-8 and decode UTF-8 byte streams to code points.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(cmd.ErrOrStderr(), a.flags.logFormat, a.flags.verbose)
			if err != nil {
				return err
			}
			a.log = log
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&a.flags.verbose, "verbose", "v", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&a.flags.logFormat, "log-format", "console", "log format: console|json")

	cmd.AddCommand(newEncodeCmd(a), newDecodeCmd(a), newSanitizeCmd(a))
	return cmd
}

// newLogger returns a logger writing to w in the given format.
func newLogger(w io.Writer, format string, verbose bool) (zerolog.Logger, error) {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	switch format {
	case "console":
		w = zerolog.ConsoleWriter{Out: w, NoColor: true}
	case "json":
	default:
		return zerolog.Nop(), fmt.Errorf("invalid log format %q; expected console or json", format)
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}

// openInput returns the file named by args, or the command's standard input
// if args is empty. The returned function closes the input.
func openInput(cmd *cobra.Command, args []string) (io.Reader, func() error, error) {
	if len(args) == 0 {
		return cmd.InOrStdin(), func() error { return nil }, nil
	}

	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, err
	}

	return f, f.Close, nil
}
