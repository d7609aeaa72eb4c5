package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/tally/internal/cli"
)

// treeCmd represents the tree command
var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Export the view tree visualization",
	Long:  `Mounts a dashboard, optionally replays commands, and outputs a Mermaid diagram (graph TD) of the resulting view tree.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		replay, _ := cmd.Flags().GetString("replay")
		return cli.ExportTree(cmd.Context(), cli.TreeOptions{
			Replay: replay,
			Out:    cmd.OutOrStdout(),
		})
	},
}

func init() {
	rootCmd.AddCommand(treeCmd)
	treeCmd.Flags().String("replay", "", "Comma separated commands to apply first (e.g. \"+,off\")")
}
