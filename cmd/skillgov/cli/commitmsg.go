package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/deepnoodle-ai/skillgov/check"
)

func newCommitMsgCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "commit-msg <file>",
		Short: "Validate a commit message file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("could not read commit message file: %w", err)
			}
			findings := check.CommitMessage(string(data))
			if len(findings) == 0 {
				return nil
			}
			fmt.Fprintln(os.Stderr, failStyle.Sprint("FAIL:"), "commit message validation failed:")
			for _, f := range findings {
				fmt.Fprintf(os.Stderr, "  %s\n", f.Message)
			}
			return errCheckFailed
		},
	}
}
