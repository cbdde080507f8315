// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/hill/hill"
	"github.com/katalvlaran/hill/matrix"
	"github.com/spf13/cobra"
)

func newValidateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check whether a key matrix can be used",
		Long: `Report the determinant of a key and whether it is admissible, i.e. square
of order 2 or 3 with a determinant coprime with 26. Exits with status 1
when the key is rejected.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows, _, err := keyRows(a.keySpec, a.keyFile)
			if err != nil {
				return usage(err)
			}
			key, err := buildKey(rows)
			if err != nil {
				return usage(err)
			}
			return reportKey(cmd.OutOrStdout(), key)
		},
	}
	addKeyFlags(cmd, a)
	return cmd
}

// reportKey prints the key, its determinant and the admissibility verdict.
// It returns a rejected ExitError when the key fails hill.ValidateKey.
func reportKey(w io.Writer, key *matrix.Dense) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %dx%d\n", LabelStyle.Render("Key:"), key.Rows(), key.Cols())
	sb.WriteString(key.String())
	if det, err := matrix.Determinant(key); err == nil {
		fmt.Fprintf(&sb, "%s %d (%d mod %d)\n", LabelStyle.Render("Determinant:"), det, matrix.Mod(det, hill.Modulus), hill.Modulus)
	}

	verr := hill.ValidateKey(key)
	if verr == nil {
		fmt.Fprintf(&sb, "%s %s\n", LabelStyle.Render("Admissible:"), SuccessStyle.Render("yes"))
	} else {
		fmt.Fprintf(&sb, "%s %s\n", LabelStyle.Render("Admissible:"), ErrorStyle.Render("no"))
	}
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return err
	}
	if verr != nil {
		return rejected(verr)
	}
	return nil
}
