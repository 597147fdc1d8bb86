package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

type requestFlags struct {
	path   string
	status int
}

func (f *requestFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.path, "path", "", "directory to render the prompt for (default: working directory)")
	cmd.Flags().IntVar(&f.status, "status", 0, "exit status of the previous command")
}

var promptFlags requestFlags

func init() {
	promptFlags.register(promptCmd)
	rootCmd.AddCommand(promptCmd)
}

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Print the full prompt",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := newRequest(promptFlags.path, promptFlags.status)
		if err != nil {
			return err
		}
		renderer, err := newPromptRenderer(cmd.OutOrStdout())
		if err != nil {
			return err
		}

		text, err := renderer.Render(cmd.Context(), req)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), text)
		return err
	},
}
