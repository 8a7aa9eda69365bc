// cmd/shabnam/version.go
package main

import (
	"github.com/spf13/cobra"

	"shabnam/internal/platform/config"
)

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			config.PrintVersion(cmd.OutOrStdout(), version, commit, date)
		},
	}
}
