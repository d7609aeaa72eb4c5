package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tally",
	Short: "tally is a terminal interactive dashboard",
	Long:  `tally mounts a single dashboard with a points counter and an "Allow Increments" switch, and drives it from the keyboard or an NDJSON stream.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "tally.yaml", "Path to the configuration file")
}
