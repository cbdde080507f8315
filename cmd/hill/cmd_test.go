// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/hill/hill"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCmd executes a fresh command tree with the given stdin and arguments.
func runCmd(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), errOut.String(), err
}

// requireExit asserts err is an *ExitError with the given code wrapping want.
func requireExit(t *testing.T, err error, code int, want error) {
	t.Helper()
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr), "want *ExitError, got %v", err)
	require.Equal(t, code, exitErr.Code)
	if want != nil {
		require.ErrorIs(t, err, want)
	}
}

func writeKeyFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "key.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestEncodeCmd(t *testing.T) {
	out, _, err := runCmd(t, "", "encode", "--key", "2 3; 1 1", "HELP")
	require.NoError(t, err)
	assert.Equal(t, "5 13 20 2\n", out)
}

func TestEncodeCmd_KeyFileJoinsArgs(t *testing.T) {
	path := writeKeyFile(t, "name = \"wiki\"\nmatrix = [[6, 24, 1], [13, 16, 10], [20, 17, 15]]\n")

	out, _, err := runCmd(t, "", "encode", "-f", path, "attack", "at", "dawn")
	require.NoError(t, err)
	assert.Equal(t, "12 13 10 11 15 2 18 8 5 19 22 5 6 3 22\n", out)
}

func TestDecodeCmd(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"separate args", []string{"decode", "-k", "2 3;1 1", "5", "13", "20", "2"}, "HELP\n"},
		{"list literal", []string{"decode", "-k", "2,3;1,1", "[5, 13, 20, 2]"}, "HELP\n"},
		{"padding kept", []string{"decode", "-k", "2 3; 1 1", "5 13 8 24 4 15 13 12 20 4 8 4"}, "HELLO WORLD \n"},
		{"negative after dash", []string{"decode", "-k", "2 3; 1 1", "--", "-21", "-13", "20", "2"}, "HELP\n"},
		{"padding trimmed", []string{"decode", "--trim", "-k", "2 3; 1 1", "5 13 8 24 4 15 13 12 20 4 8 4"}, "HELLO WORLD\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := runCmd(t, "", tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestCmd_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
		want error
	}{
		{"no key", []string{"encode", "HELP"}, exitUsage, errNoKey},
		{"two keys", []string{"encode", "-k", "2 3; 1 1", "-f", "x.toml", "HELP"}, exitUsage, errTwoKeys},
		{"bad key entry", []string{"encode", "-k", "2 x; 1 1", "HELP"}, exitUsage, errBadKeySpec},
		{"ragged key", []string{"encode", "-k", "2 3; 1", "HELP"}, exitUsage, errBadKeySpec},
		{"bad number", []string{"decode", "-k", "2 3; 1 1", "5", "x"}, exitUsage, errBadNumber},
		{"not invertible", []string{"encode", "-k", "2 4; 6 8", "HELP"}, exitRejected, hill.ErrNotInvertible},
		{"bad order", []string{"decode", "-k", "1 0 0 0; 0 1 0 0; 0 0 1 0; 0 0 0 1", "1 2 3 4"}, exitRejected, hill.ErrBadOrder},
		{"bad character", []string{"encode", "-k", "2 3; 1 1", "HELP!"}, exitRejected, hill.ErrInvalidCharacter},
		{"ragged ciphertext", []string{"decode", "-k", "2 3; 1 1", "5 13 20"}, exitRejected, hill.ErrMalformedInput},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := runCmd(t, "", tc.args...)
			requireExit(t, err, tc.code, tc.want)
		})
	}
}

func TestValidateCmd(t *testing.T) {
	out, _, err := runCmd(t, "", "validate", "--key", "2 3; 1 1")
	require.NoError(t, err)
	assert.Contains(t, out, "Determinant: -1 (25 mod 26)")
	assert.Contains(t, out, "Admissible: yes")

	out, _, err = runCmd(t, "", "validate", "--key", "2 4; 6 8")
	requireExit(t, err, exitRejected, hill.ErrNotInvertible)
	assert.Contains(t, out, "Determinant: -8 (18 mod 26)")
	assert.Contains(t, out, "Admissible: no")
}

func TestVerboseLogsToStderr(t *testing.T) {
	out, errOut, err := runCmd(t, "", "-v", "encode", "-k", "2 3; 1 1", "HELP")
	require.NoError(t, err)
	assert.Equal(t, "5 13 20 2\n", out)
	assert.Contains(t, errOut, "key accepted")

	_, errOut, err = runCmd(t, "", "encode", "-k", "2 3; 1 1", "HELP")
	require.NoError(t, err)
	assert.NotContains(t, errOut, "key accepted")
}

func TestInteractive_Encode(t *testing.T) {
	stdin := strings.Join([]string{"1", "HELP", "5", "two", "2", "2 3 4", "2 3", "1 1"}, "\n") + "\n"

	out, _, err := runCmd(t, stdin, "interactive")
	require.NoError(t, err)
	assert.Contains(t, out, "Invalid size. Please enter 2 or 3.")
	assert.Contains(t, out, "Invalid input. Please enter a number (2 or 3).")
	assert.Contains(t, out, "Invalid row. Please enter 2 integers.")
	assert.Contains(t, out, "Encoded Message: 5 13 20 2")
}

func TestInteractive_EncodeRepromptsMessage(t *testing.T) {
	stdin := strings.Join([]string{"1", "HELP!", "help", "2", "2 3", "1 1"}, "\n") + "\n"

	out, _, err := runCmd(t, stdin, "interactive")
	require.NoError(t, err)
	assert.Contains(t, out, "Invalid message. Use letters A-Z and spaces only.")
	assert.Equal(t, 2, strings.Count(out, "Enter the message to encode: "))
	assert.Contains(t, out, "Encoded Message: 5 13 20 2")
}

func TestInteractive_DecodeRepromptsKey(t *testing.T) {
	stdin := strings.Join([]string{"2", "5 13 20 2", "2", "2 4", "6 8", "2 3", "1 1"}, "\n") + "\n"

	out, _, err := runCmd(t, stdin, "interactive")
	require.NoError(t, err)
	assert.Contains(t, out, "Invalid matrix. Determinant (-8) is not coprime with 26.")
	assert.Contains(t, out, "Decoded Message: HELP")
}

func TestInteractive_Failures(t *testing.T) {
	_, _, err := runCmd(t, "3\n", "interactive")
	requireExit(t, err, exitUsage, nil)

	_, _, err = runCmd(t, "1\nHELP\n", "interactive")
	require.ErrorIs(t, err, errInputClosed)

	_, _, err = runCmd(t, "2\n5 13 20\n2\n2 3\n1 1\n", "interactive")
	requireExit(t, err, exitRejected, hill.ErrMalformedInput)
}

func TestParseKeySpec(t *testing.T) {
	rows, err := parseKeySpec(" 2 3 ; 1 1 ;")
	require.NoError(t, err)
	assert.Equal(t, [][]int{{2, 3}, {1, 1}}, rows)

	_, err = parseKeySpec(" ; ")
	require.ErrorIs(t, err, errBadKeySpec)
}

func TestParseNumbers(t *testing.T) {
	ns, err := parseNumbers([]string{"[5,", "13,", "20, 2]"})
	require.NoError(t, err)
	assert.Equal(t, []int{5, 13, 20, 2}, ns)

	_, err = parseNumbers([]string{"[]"})
	require.ErrorIs(t, err, errEmptyNumber)
}

func TestLoadKeyFile(t *testing.T) {
	_, err := loadKeyFile(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)

	_, err = loadKeyFile(writeKeyFile(t, "matrix = [[1, 2], {{{"))
	require.ErrorContains(t, err, "parsing key file TOML")

	_, err = loadKeyFile(writeKeyFile(t, "name = \"empty\"\n"))
	require.ErrorIs(t, err, errBadKeySpec)

	kf, err := loadKeyFile(writeKeyFile(t, "matrix = [[2, 3], [1, 1]]\n"))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{2, 3}, {1, 1}}, kf.Matrix)
}
