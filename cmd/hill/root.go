// SPDX-License-Identifier: MIT

package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// app carries flag values and the logger shared by all subcommands.
type app struct {
	verbose bool
	keySpec string
	keyFile string
	logger  *log.Logger
}

// newRootCmd builds the command tree. Each call returns an independent tree,
// so tests can run commands side by side.
func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "hill",
		Short: "Encode and decode text with a Hill cipher",
		Long: TitleStyle.Render("hill") + ` - a classical Hill cipher over A-Z and space (mod 26)

Letters map to 1..26 and space to 0. A message is padded with spaces to a
multiple of the key order, split into blocks, and every block is multiplied
by the key matrix mod 26. Keys are 2x2 or 3x3 integer matrices whose
determinant is coprime with 26.

` + HintStyle.Render("The Hill cipher is a teaching cipher and offers no real security."),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
				Prefix: "hill",
			})
			if a.verbose {
				a.logger.SetLevel(log.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newEncodeCmd(a),
		newDecodeCmd(a),
		newValidateCmd(a),
		newInteractiveCmd(a),
	)
	return root
}

// addKeyFlags registers --key and --key-file on cmd.
func addKeyFlags(cmd *cobra.Command, a *app) {
	cmd.Flags().StringVarP(&a.keySpec, "key", "k", "", `key matrix, rows separated by ';' (e.g. "2 3; 1 1")`)
	cmd.Flags().StringVarP(&a.keyFile, "key-file", "f", "", "TOML file with a matrix = [[...], ...] entry")
}
