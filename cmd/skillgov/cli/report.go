package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/deepnoodle-ai/skillgov/corpus"
	"github.com/deepnoodle-ai/skillgov/report"
)

func newReportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate corpus-wide governance reports",
	}
	cmd.AddCommand(newBudgetReportCommand(), newContextLoadReportCommand())
	return cmd
}

func newBudgetReportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "budget [files...]",
		Short: "Summarize every file against its token budget",
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := newRunContext()
			if err != nil {
				return err
			}
			files := args
			if len(files) == 0 {
				// No explicit list: fall back to a full corpus walk.
				files, err = corpus.DiscoverFiles(rc.root)
				if err != nil {
					return err
				}
			}
			rows := report.BudgetRows(files, rc.classifier, rc.table)
			report.WriteBudget(os.Stdout, rows)
			return nil
		},
	}
}

func newContextLoadReportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "context-load",
		Short: "Analyze worst-case context load per skill",
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := newRunContext()
			if err != nil {
				return err
			}
			analyses := report.ContextLoadAnalyses(rc.classifier)
			report.WriteContextLoad(os.Stdout, analyses, rc.table)
			return nil
		},
	}
}
