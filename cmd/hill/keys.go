// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/hill/hill"
	"github.com/katalvlaran/hill/matrix"
	"github.com/pelletier/go-toml/v2"
)

var (
	errNoKey       = errors.New("no key given: use --key or --key-file")
	errTwoKeys     = errors.New("--key and --key-file are mutually exclusive")
	errBadKeySpec  = errors.New("malformed key matrix")
	errBadNumber   = errors.New("malformed ciphertext number")
	errEmptyNumber = errors.New("no ciphertext numbers given")
)

// rowSeparator splits rows in a --key value: "2 3; 1 1".
const rowSeparator = ";"

// KeyFile is the TOML document accepted by --key-file:
//
//	name   = "classroom"
//	matrix = [[2, 3], [1, 1]]
type KeyFile struct {
	Name   string  `toml:"name"`
	Matrix [][]int `toml:"matrix"`
}

// isEntrySeparator reports separators allowed between entries and numbers.
func isEntrySeparator(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', ',', '[', ']':
		return true
	}
	return false
}

// parseInts converts every separator-delimited field of s to an int.
func parseInts(s string, sentinel error) ([]int, error) {
	fields := strings.FieldsFunc(s, isEntrySeparator)
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", f, sentinel)
		}
		out = append(out, v)
	}
	return out, nil
}

// parseKeySpec parses "2 3; 1 1" (or "2,3;1,1") into rows.
func parseKeySpec(spec string) ([][]int, error) {
	var rows [][]int
	for i, part := range strings.Split(spec, rowSeparator) {
		row, err := parseInts(part, errBadKeySpec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		if len(row) == 0 {
			continue // tolerate a trailing ";"
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, errBadKeySpec
	}
	return rows, nil
}

// parseNumbers parses ciphertext given as one or more arguments, accepting
// space- or comma-separated ints and an optional surrounding [ ].
func parseNumbers(args []string) ([]int, error) {
	ns, err := parseInts(strings.Join(args, " "), errBadNumber)
	if err != nil {
		return nil, err
	}
	if len(ns) == 0 {
		return nil, errEmptyNumber
	}
	return ns, nil
}

// loadKeyFile reads a KeyFile from path.
func loadKeyFile(path string) (*KeyFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading key file: %w", err)
	}

	var kf KeyFile
	if err := toml.Unmarshal(data, &kf); err != nil {
		return nil, fmt.Errorf("parsing key file TOML: %w", err)
	}
	if len(kf.Matrix) == 0 {
		return nil, fmt.Errorf("key file %s: missing \"matrix\": %w", path, errBadKeySpec)
	}
	return &kf, nil
}

// keyRows returns the key rows from exactly one of spec or file.
func keyRows(spec, file string) ([][]int, string, error) {
	switch {
	case spec != "" && file != "":
		return nil, "", errTwoKeys
	case spec != "":
		rows, err := parseKeySpec(spec)
		return rows, "--key", err
	case file != "":
		kf, err := loadKeyFile(file)
		if err != nil {
			return nil, "", err
		}
		source := file
		if kf.Name != "" {
			source = kf.Name
		}
		return kf.Matrix, source, nil
	default:
		return nil, "", errNoKey
	}
}

// buildKey turns rows into a matrix without checking admissibility.
func buildKey(rows [][]int) (*matrix.Dense, error) {
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errBadKeySpec, err)
	}
	return m, nil
}

// loadCipher resolves the key flags and builds a validated cipher.
// Flag problems map to exit code 2, inadmissible keys to exit code 1.
func (a *app) loadCipher() (*hill.Cipher, error) {
	rows, source, err := keyRows(a.keySpec, a.keyFile)
	if err != nil {
		return nil, usage(err)
	}
	key, err := buildKey(rows)
	if err != nil {
		return nil, usage(err)
	}
	a.logger.Debug("key loaded", "source", source, "order", key.Rows())

	c, err := hill.NewCipher(key)
	if err != nil {
		return nil, rejected(err)
	}
	a.logger.Debug("key accepted", "det", c.Determinant())
	return c, nil
}
