package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pchchv/utf8"
	"github.com/stretchr/testify/require"
)

// run executes the command line args with stdin as standard input
// and returns standard output and standard error.
func run(t *testing.T, stdin []byte, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetIn(bytes.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestParseCodePoint(t *testing.T) {
	tests := []struct {
		in   string
		want utf8.CodePoint
	}{
		{"U+65E5", 0x65E5},
		{"u+0041", 0x41},
		{"0x233B4", 0x233B4},
		{"0XD800", 0xD800},
		{"35486", 0x8A9E},
		{"0x110000", 0x110000},
	}

	for _, test := range tests {
		got, err := parseCodePoint(test.in)
		require.NoError(t, err, test.in)
		require.Equal(t, test.want, got, test.in)
	}

	for _, in := range []string{"", "U+", "0xZZ", "-1", "0x100000000", "日"} {
		_, err := parseCodePoint(in)
		require.Error(t, err, in)
	}
}

func TestEncodeCmd(t *testing.T) {
	out, _, err := run(t, nil, "encode", "--hex", "U+65E5", "0x672C", "35486")
	require.NoError(t, err)
	require.Equal(t, "E6 97 A5 E6 9C AC E8 AA 9E\n", out)

	out, _, err = run(t, []byte("0x48 0x65\n0x6C 0x6C 0x6F\n"), "encode")
	require.NoError(t, err)
	require.Equal(t, "Hello", out)

	out, stderr, err := run(t, nil, "encode", "--hex", "0xD800")
	require.NoError(t, err)
	require.Equal(t, "EF BF BD\n", out)
	require.Contains(t, stderr, "illegal code point replaced")

	_, _, err = run(t, nil, "encode", "U+XYZ")
	require.Error(t, err)
}

func TestDecodeCmd(t *testing.T) {
	out, _, err := run(t, []byte("A\xe6\x97\xa5\xff"), "decode")
	require.NoError(t, err)
	require.Equal(t, "U+0041\nU+65E5\nU+FFFD\n", out)

	out, _, err = run(t, []byte("\xc0\x80"), "decode", "--strict")
	require.NoError(t, err)
	require.Equal(t, "U+FFFD\n", out)

	in := []byte(strings.Repeat("日本語", 100))
	out, _, err = run(t, in, "decode", "--text", "--chunk", "16")
	require.NoError(t, err)
	require.Equal(t, string(in), out)
}

func TestDecodeCmdTruncated(t *testing.T) {
	out, stderr, err := run(t, []byte("ab\xe6\x97"), "decode")
	require.NoError(t, err)
	require.Equal(t, "U+0061\nU+0062\n", out)
	require.Contains(t, stderr, errTruncated.Error())

	out, _, err = run(t, []byte("ab\xe6\x97"), "decode", "--check")
	require.ErrorIs(t, err, errTruncated)
	require.Equal(t, "U+0061\nU+0062\n", out)
}

func TestDecodeCmdFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(path, []byte("\U000233B4"), 0o644))

	out, _, err := run(t, nil, "decode", path)
	require.NoError(t, err)
	require.Equal(t, "U+233B4\n", out)

	_, _, err = run(t, nil, "decode", filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}

func TestSanitizeCmd(t *testing.T) {
	out, _, err := run(t, []byte("a\xffb\xc0\x80c\xe6\x97"), "sanitize")
	require.NoError(t, err)
	require.Equal(t, "a\uFFFDb\x00c", out)

	out, _, err = run(t, []byte("a\xffb\xc0\x80c\xe6\x97"), "sanitize", "--strict")
	require.NoError(t, err)
	require.Equal(t, "a\uFFFDb\uFFFDc\uFFFD", out)
}

func TestLogFormat(t *testing.T) {
	_, stderr, err := run(t, nil, "--verbose", "--log-format", "json", "encode", "0x41")
	require.NoError(t, err)
	require.Contains(t, stderr, `"message":"encoded"`)

	_, _, err = run(t, nil, "--log-format", "xml", "encode", "0x41")
	require.Error(t, err)
}
