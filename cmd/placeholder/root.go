package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "placeholder",
	Short: "Browse users, posts and comments from a JSONPlaceholder API",
	Long: `placeholder is an interactive terminal browser. Pick a user to see their posts,
pick a post to read its comments, and leave a comment of your own.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Config file (YAML or JSON)")
	rootCmd.PersistentFlags().String("base-url", "", "API base URL")
	rootCmd.PersistentFlags().String("fixtures", "", "Browse an offline dataset file instead of the API")
	rootCmd.PersistentFlags().String("redis-url", "", "Cache responses in Redis (redis://host:port/db)")
	rootCmd.PersistentFlags().Duration("timeout", 0, "HTTP request timeout (0 disables)")
	rootCmd.PersistentFlags().Duration("cache-ttl", 0, "How long cached responses stay valid")
	rootCmd.PersistentFlags().Bool("plain", false, "Disable colours and styled tables")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging to stderr")
}
