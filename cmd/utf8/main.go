// Command utf8 encodes code points to UTF-8 and decodes UTF-8 input
// to code points.
//
// Usage:
//
//	utf8 encode [--hex] [code points...]
//	utf8 decode [--chunk n] [--strict] [--text] [--check] [file]
//	utf8 sanitize [--strict] [file]
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
