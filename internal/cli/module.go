package cli

import (
	"fmt"

	"github.com/opencode-ai/shellprompt/internal/modules"
	"github.com/spf13/cobra"
)

var moduleFlags requestFlags

func init() {
	moduleFlags.register(moduleCmd)
	rootCmd.AddCommand(moduleCmd)
}

var moduleCmd = &cobra.Command{
	Use:       "module <name>",
	Short:     "Print a single module",
	Args:      cobra.ExactArgs(1),
	ValidArgs: modules.Default().Names(),
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := newRequest(moduleFlags.path, moduleFlags.status)
		if err != nil {
			return err
		}
		renderer, err := newPromptRenderer(cmd.OutOrStdout())
		if err != nil {
			return err
		}

		text, err := renderer.RenderModule(cmd.Context(), args[0], req)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), text)
		return err
	},
}
