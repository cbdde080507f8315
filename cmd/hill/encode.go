// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newEncodeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode MESSAGE...",
		Short: "Encode a message into numbers",
		Long: `Encode a message of letters and spaces. Multiple arguments are joined
with single spaces. The result is printed as space-separated numbers in 0..25.`,
		Example: `  hill encode --key "2 3; 1 1" HELP
  hill encode -f key.toml attack at dawn`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.loadCipher()
			if err != nil {
				return err
			}
			msg := strings.Join(args, " ")
			out, err := c.Encode(msg)
			if err != nil {
				return rejected(err)
			}
			a.logger.Debug("encoded", "chars", len(msg), "blocks", len(out)/c.Order())

			_, err = fmt.Fprintln(cmd.OutOrStdout(), formatNumbers(out))
			return err
		},
	}
	addKeyFlags(cmd, a)
	return cmd
}

// formatNumbers renders ns as "5 13 20 2".
func formatNumbers(ns []int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, " ")
}
