package main

import (
	"fmt"
	"io"

	"github.com/pchchv/utf8"
	"github.com/spf13/cobra"
	"golang.org/x/text/transform"
)

func newSanitizeCmd(a *app) *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "sanitize [file]",
		Short: "Copy input to output as well-formed UTF-8",
		Long: `Copy file, or standard input, to standard output replacing malformed
UTF-8 with the replacement character U+FFFD.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			in, closeIn, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer func() {
				if cerr := closeIn(); err == nil {
					err = cerr
				}
			}()

			t := utf8.NewTransformer()
			if strict {
				t = utf8.NewStrictTransformer()
			}

			n, err := io.Copy(cmd.OutOrStdout(), transform.NewReader(in, t))
			if err != nil {
				return fmt.Errorf("unable to sanitize input: %w", err)
			}

			a.log.Debug().Int64("bytes", n).Bool("strict", strict).Msg("sanitized")
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "reject overlong forms, surrogates and bad continuation bytes")
	return cmd
}
