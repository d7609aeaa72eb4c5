package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/tally/internal/cli"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the interactive dashboard",
	Long:  `Mounts the dashboard and reads commands until 'quit', end of input or Ctrl+C.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		theme, _ := cmd.Flags().GetString("theme")
		jsonMode, _ := cmd.Flags().GetBool("json")
		debug, _ := cmd.Flags().GetBool("debug")
		noBanner, _ := cmd.Flags().GetBool("no-banner")

		return cli.Execute(cmd.Context(), cli.RunOptions{
			ConfigPath: configPath,
			Theme:      theme,
			JSON:       jsonMode,
			Debug:      debug,
			NoBanner:   noBanner,
			Stdin:      cmd.InOrStdin(),
			Stdout:     cmd.OutOrStdout(),
			Stderr:     cmd.ErrOrStderr(),
		})
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("theme", "", "Theme to install (auto, dark, light)")
	runCmd.Flags().Bool("json", false, "Run in JSON mode (NDJSON input/output)")
	runCmd.Flags().Bool("debug", false, "Enable debug logs on stderr")
	runCmd.Flags().Bool("no-banner", false, "Do not print the banner")

	// 'run' is the default when no command is provided
	rootCmd.RunE = runCmd.RunE
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
}
