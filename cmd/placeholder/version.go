package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/placeholder"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of placeholder",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "placeholder version %s\n", strings.TrimSpace(placeholder.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
