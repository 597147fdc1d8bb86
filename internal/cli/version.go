package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Version information, overridden at build time via -ldflags.
var (
	Version   = "0.1.0-dev"
	GitCommit = ""
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the shellprompt version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		line := "shellprompt " + color.New(color.FgGreen, color.Bold).Sprint(Version)
		if GitCommit != "" {
			line += " (" + GitCommit + ")"
		}
		_, err := fmt.Fprintln(cmd.OutOrStdout(), line)
		return err
	},
}
