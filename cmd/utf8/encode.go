package main

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/pchchv/utf8"
	"github.com/spf13/cobra"
)

func newEncodeCmd(a *app) *cobra.Command {
	var hex bool
	cmd := &cobra.Command{
		Use:   "encode [code points...]",
		Short: "Encode code points to UTF-8",
		Long: `Encode code points to UTF-8 and write the bytes to standard output.

Code points are written as U+XXXX, 0xXXXX or decimal numbers, given as
arguments or as whitespace separated standard input. Surrogates and values
above U+10FFFF are encoded as the replacement character U+FFFD.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fields := args
			if len(fields) == 0 {
				in, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("unable to read standard input: %w", err)
				}
				fields = strings.Fields(string(in))
			}

			cps, err := parseCodePoints(fields)
			if err != nil {
				return err
			}

			for _, cp := range cps {
				if cp != utf8.RuneError && bytes.Equal(utf8.AppendEncode(nil, cp), utf8.ReplacementBytes()) {
					a.log.Warn().Str("code_point", fmt.Sprintf("%U", cp)).Msg("illegal code point replaced with U+FFFD")
				}
			}

			out := cmd.OutOrStdout()
			if hex {
				_, err = fmt.Fprintf(out, "% X\n", utf8.Encode(cps))
				return err
			}

			n, err := utf8.EncodeTo(out, cps)
			if err != nil {
				return fmt.Errorf("unable to write encoding: %w", err)
			}

			a.log.Debug().Int("code_points", len(cps)).Int("bytes", n).Msg("encoded")
			return nil
		},
	}

	cmd.Flags().BoolVar(&hex, "hex", false, "write space separated hex bytes instead of raw bytes")
	return cmd
}
