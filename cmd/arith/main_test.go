package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(t.Context(), args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("arguments", func(t *testing.T) {
		t.Parallel()
		code, out, _ := runCLI(t, "", "5", "+", "3", "-", "2", "+", "10", "-", "4")
		require.Equal(t, 0, code)
		assert.Equal(t, "5 + 3 - 2 + 10 - 4 = 12\n", out)
	})

	t.Run("single quoted argument", func(t *testing.T) {
		t.Parallel()
		code, out, _ := runCLI(t, "", "10 - 20")
		require.Equal(t, 0, code)
		assert.Equal(t, "10 - 20 = -10\n", out)
	})

	t.Run("stdin", func(t *testing.T) {
		t.Parallel()
		code, out, _ := runCLI(t, "  1 + 2\n")
		require.Equal(t, 0, code)
		assert.Equal(t, "1 + 2 = 3\n", out)
	})

	t.Run("file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "expr.txt")
		require.NoError(t, os.WriteFile(path, []byte("7 - 10\n"), 0o644))

		code, out, _ := runCLI(t, "", "-f", path)
		require.Equal(t, 0, code)
		assert.Equal(t, "7 - 10 = -3\n", out)
	})

	t.Run("leading negative literal", func(t *testing.T) {
		t.Parallel()
		code, out, errOut := runCLI(t, "", "-5", "+", "3")
		require.Equal(t, 0, code, errOut)
		assert.Equal(t, "-5 + 3 = -2\n", out)
	})

	t.Run("negative literal after flags", func(t *testing.T) {
		t.Parallel()
		code, out, errOut := runCLI(t, "", "-tree", "-5", "-", "-5")
		require.Equal(t, 0, code, errOut)
		assert.Equal(t, "Subtract\n  -5\n  -5\n-5 - -5 = 0\n", out)
	})

	t.Run("double dash", func(t *testing.T) {
		t.Parallel()
		code, out, errOut := runCLI(t, "", "--", "-5", "+", "3")
		require.Equal(t, 0, code, errOut)
		assert.Equal(t, "-5 + 3 = -2\n", out)
	})

	t.Run("tree", func(t *testing.T) {
		t.Parallel()
		code, out, _ := runCLI(t, "", "-tree", "5 - 3 + 2")
		require.Equal(t, 0, code)
		want := strings.Join([]string{
			"Add",
			"  Subtract",
			"    5",
			"    3",
			"  2",
			"5 - 3 + 2 = 4",
		}, "\n") + "\n"
		assert.Equal(t, want, out)
	})
}

func TestSplitNumericArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		args      []string
		wantFlags []string
		wantExpr  []string
	}{
		{name: "no args", args: nil, wantFlags: nil, wantExpr: nil},
		{name: "plain expression", args: []string{"1", "+", "2"}, wantFlags: []string{"1", "+", "2"}},
		{name: "leading negative", args: []string{"-5", "+", "3"}, wantFlags: []string{}, wantExpr: []string{"-5", "+", "3"}},
		{name: "after flag", args: []string{"-tree", "-5"}, wantFlags: []string{"-tree"}, wantExpr: []string{"-5"}},
		{name: "file value kept", args: []string{"-f", "-5.txt"}, wantFlags: []string{"-f", "-5.txt"}},
		{name: "double dash", args: []string{"--", "-5"}, wantFlags: []string{"--", "-5"}},
		{name: "unknown flag", args: []string{"-nope"}, wantFlags: []string{"-nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			flags, expr := splitNumericArgs(tt.args)
			assert.Equal(t, tt.wantFlags, flags)
			assert.Equal(t, tt.wantExpr, expr)
		})
	}
}

func TestRunErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		stdin   string
		args    []string
		wantMsg string
	}{
		{name: "invalid operator", args: []string{"5 * 3"}, wantMsg: `"*"`},
		{name: "invalid number", args: []string{"five + 3"}, wantMsg: `"five"`},
		{name: "trailing operator", args: []string{"5 +"}, wantMsg: "unexpected end of input"},
		{name: "empty stdin", stdin: "   ", wantMsg: "empty"},
		{name: "missing file", args: []string{"-f", "/nonexistent/expr.txt"}, wantMsg: "no such file"},
		{name: "file and argument", args: []string{"-f", "x.txt", "1"}, wantMsg: "cannot be combined"},
		{name: "overflow", args: []string{"9223372036854775807 + 1"}, wantMsg: "overflow"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			code, out, errOut := runCLI(t, tt.stdin, tt.args...)
			assert.Equal(t, 1, code)
			assert.Empty(t, out)
			assert.Contains(t, errOut, tt.wantMsg)
		})
	}

	t.Run("unknown flag", func(t *testing.T) {
		t.Parallel()
		code, _, errOut := runCLI(t, "", "-nope")
		assert.Equal(t, 2, code)
		assert.Contains(t, errOut, "Usage")
	})
}
