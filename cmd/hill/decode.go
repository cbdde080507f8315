// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newDecodeCmd(a *app) *cobra.Command {
	var trim bool

	cmd := &cobra.Command{
		Use:   "decode NUMBER...",
		Short: "Decode numbers back into a message",
		Long: `Decode ciphertext numbers. They may be given as separate arguments or as
one quoted list; commas and surrounding brackets are accepted. The count
must be a multiple of the key order. Any integer is accepted and reduced
mod 26; put negative numbers after "--" so they are not read as flags.`,
		Example: `  hill decode --key "2 3; 1 1" 5 13 20 2
  hill decode -k "2 3;1 1" "[5, 13, 20, 2]"
  hill decode -k "2 3; 1 1" -- -21 13 20 2`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			numbers, err := parseNumbers(args)
			if err != nil {
				return usage(err)
			}
			c, err := a.loadCipher()
			if err != nil {
				return err
			}
			text, err := c.Decode(numbers)
			if err != nil {
				return rejected(err)
			}
			if trim {
				text = strings.TrimRight(text, " ")
			}
			a.logger.Debug("decoded", "numbers", len(numbers))

			_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
			return err
		},
	}
	addKeyFlags(cmd, a)
	cmd.Flags().BoolVar(&trim, "trim", false, "drop trailing spaces left by padding")
	return cmd
}
