package main

import (
	"github.com/aretw0/placeholder/internal/cli"
	"github.com/spf13/cobra"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Print the user list and exit",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.ListUsers(cmd.Context(), runOptions(cmd))
	},
}

func init() {
	rootCmd.AddCommand(usersCmd)
}
