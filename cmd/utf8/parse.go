package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pchchv/utf8"
)

// parseCodePoint parses a code point written as U+XXXX, 0xXXXX or decimal.
// Values above utf8.MaxRune are accepted; the encoder replaces them.
func parseCodePoint(s string) (utf8.CodePoint, error) {
	digits, base := s, 10
	switch {
	case strings.HasPrefix(s, "U+"), strings.HasPrefix(s, "u+"),
		strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		digits, base = s[2:], 16
	}

	x, err := strconv.ParseUint(digits, base, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid code point %q: %w", s, err)
	}

	return utf8.CodePoint(x), nil
}

// parseCodePoints parses whitespace separated code points.
func parseCodePoints(fields []string) ([]utf8.CodePoint, error) {
	cps := make([]utf8.CodePoint, 0, len(fields))
	for _, field := range fields {
		cp, err := parseCodePoint(field)
		if err != nil {
			return nil, err
		}
		cps = append(cps, cp)
	}

	return cps, nil
}
