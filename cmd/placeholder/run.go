package main

import (
	"github.com/aretw0/placeholder/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive browser",
	Long: `Fetches the user list and starts browsing. Enter a number to drill down,
'b' to go back, 'c' on a post to leave a comment, and 'e' to exit.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.RunSession(cmd.Context(), runOptions(cmd))
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("session", "", "Session ID for logs (random if empty)")
	runCmd.Flags().String("metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :2112)")
	runCmd.Flags().Bool("no-clear", false, "Do not clear the screen between levels")
	runCmd.Flags().Int("max-users", 0, "Highest user number accepted at the user list")
	runCmd.Flags().Int("max-posts", 0, "How many posts a user detail shows")
	runCmd.Flags().Int("max-input-size", 0, "Longest answer accepted, in bytes")

	// 'run' is the default when no command is given.
	rootCmd.RunE = runCmd.RunE
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
}
