package cli

import (
	"fmt"

	"github.com/opencode-ai/shellprompt/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(printConfigCmd)
}

var printConfigCmd = &cobra.Command{
	Use:   "print-config",
	Short: "Print the effective configuration as YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := config.Marshal(GetConfig())
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), string(data))
		return err
	},
}
