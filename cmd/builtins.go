package cmd

import (
	"fmt"

	"github.com/josephlewis42/cmdexpr/core/playground"
	"github.com/spf13/cobra"
)

var builtinsCmd = &cobra.Command{
	Use:   "builtins",
	Short: "Show the builtin commands for the playground.",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range playground.ListBuiltins() {
			fmt.Fprintln(cmd.OutOrStdout(), playground.BuiltinPrefix+name)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(builtinsCmd)
}
