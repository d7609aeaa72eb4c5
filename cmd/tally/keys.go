package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/tally/internal/cli"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show the key bindings",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.ShowKeys(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(keysCmd)
}
