package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/pchchv/utf8"
	"github.com/spf13/cobra"
)

// errTruncated is returned by decode --check
// when the input ends inside a multi-byte sequence.
var errTruncated = errors.New("input ends inside a multi-byte sequence")

func newDecodeCmd(a *app) *cobra.Command {
	var (
		chunk  int
		strict bool
		text   bool
		check  bool
	)

	cmd := &cobra.Command{
		Use:   "decode [file]",
		Short: "Decode UTF-8 to code points",
		Long: `Decode UTF-8 bytes read from file, or standard input, and write one
U+XXXX code point per line. Input is read in chunks of --chunk bytes that
are fed to a single decoder. Malformed bytes decode to U+FFFD.`,
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

			r := utf8.NewReaderSize(in, chunk)
			if strict {
				r = utf8.NewStrictReaderSize(in, chunk)
			}

			w := bufio.NewWriter(cmd.OutOrStdout())
			var n, replaced int
			for {
				cp, rerr := r.ReadCodePoint()
				if rerr != nil {
					if rerr == io.EOF {
						break
					}

					if rerr == io.ErrUnexpectedEOF {
						a.log.Warn().Int("code_points", n).Msg(errTruncated.Error())
						if check {
							err = errTruncated
						}
						break
					}

					return rerr
				}

				n++
				if cp == utf8.RuneError {
					replaced++
				}

				if text {
					_, err = w.Write(utf8.AppendEncode(nil, cp))
				} else {
					_, err = fmt.Fprintf(w, "%U\n", cp)
				}
				if err != nil {
					return err
				}
			}

			a.log.Debug().Int("code_points", n).Int("replaced", replaced).Bool("strict", strict).Msg("decoded")
			if ferr := w.Flush(); ferr != nil {
				return ferr
			}

			return err
		},
	}

	cmd.Flags().IntVar(&chunk, "chunk", 4096, "number of bytes read and decoded at a time (minimum 16)")
	cmd.Flags().BoolVar(&strict, "strict", false, "reject overlong forms, surrogates and bad continuation bytes")
	cmd.Flags().BoolVar(&text, "text", false, "write decoded text instead of code points")
	cmd.Flags().BoolVar(&check, "check", false, "fail if the input ends inside a multi-byte sequence")
	return cmd
}
