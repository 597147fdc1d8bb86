package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/opencode-ai/shellprompt/internal/prompt"
	"github.com/opencode-ai/shellprompt/internal/segment"
	"github.com/spf13/cobra"
)

var (
	explainFlags requestFlags

	moduleNameColor = color.New(color.FgCyan, color.Bold)
	errorColor      = color.New(color.FgRed)
)

func init() {
	explainFlags.register(explainCmd)
	rootCmd.AddCommand(explainCmd)
}

var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Show what each module in the prompt produced",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := newRequest(explainFlags.path, explainFlags.status)
		if err != nil {
			return err
		}
		renderer, err := newPromptRenderer(cmd.OutOrStdout())
		if err != nil {
			return err
		}

		reports, err := renderer.Explain(cmd.Context(), req)
		if err != nil {
			return err
		}
		return writeExplain(cmd.OutOrStdout(), reports)
	},
}

func writeExplain(out io.Writer, reports []prompt.Report) error {
	tbl := newTable("MODULE", "TIME", "STATUS", "OUTPUT")
	for _, report := range reports {
		tbl.addRow(
			moduleNameColor.Sprint(report.Name),
			report.Duration.Round(10*time.Microsecond).String(),
			explainStatus(report),
			fmt.Sprintf("%q", segment.Join(report.Segments)),
		)
	}
	return tbl.write(out)
}

func explainStatus(report prompt.Report) string {
	switch {
	case report.Err != nil:
		return errorColor.Sprint("error: " + report.Err.Error())
	case len(report.Segments) == 0:
		return "skipped"
	default:
		return "ok"
	}
}
