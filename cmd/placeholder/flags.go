package main

import (
	"strings"

	"github.com/aretw0/placeholder/internal/cli"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// runOptions collects the flags the user actually set as config overrides.
// Flag names map to config keys by replacing dashes with underscores.
func runOptions(cmd *cobra.Command) cli.RunOptions {
	overrides := map[string]any{}
	visit := func(f *pflag.Flag) {
		if f.Name == "config" || f.Name == "session" || f.Name == "help" {
			return
		}
		overrides[strings.ReplaceAll(f.Name, "-", "_")] = f.Value.String()
	}
	cmd.Flags().Visit(visit)
	cmd.InheritedFlags().Visit(visit)

	configPath, _ := cmd.Flags().GetString("config")
	sessionID, _ := cmd.Flags().GetString("session")

	return cli.RunOptions{
		ConfigPath: configPath,
		Overrides:  overrides,
		SessionID:  sessionID,
	}
}
