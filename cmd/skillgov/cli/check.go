package cli

import (
	"github.com/spf13/cobra"

	"github.com/deepnoodle-ai/skillgov/check"
)

// checkFunc runs one check over a batch of file paths.
type checkFunc func(c *check.Checker, paths []string) []check.Finding

func newCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [files...]",
		Short: "Run all governance checks on the given files",
		Long: `Run every governance check on the given files. With no files there is
nothing to validate and the command exits successfully. Hard findings
(frontmatter, references, isolation, context-load) fail the run; budget
and prose findings are advisory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return nil
			}
			rc, err := newRunContext()
			if err != nil {
				return err
			}
			var findings []check.Finding
			findings = append(findings, rc.checker.Frontmatter(args)...)
			findings = append(findings, rc.checker.References(args)...)
			findings = append(findings, rc.checker.Isolation(args)...)
			findings = append(findings, rc.checker.ContextLoad(args)...)
			findings = append(findings, rc.checker.Budget(args)...)
			findings = append(findings, rc.checker.Prose(args)...)
			return reportFindings(findings)
		},
	}

	cmd.AddCommand(
		newCheckSubcommand("frontmatter",
			"Validate skill document frontmatter",
			(*check.Checker).Frontmatter),
		newCheckSubcommand("references",
			"Verify that referenced files exist",
			(*check.Checker).References),
		newCheckSubcommand("isolation",
			"Detect cross-references between sibling specialists",
			(*check.Checker).Isolation),
		newCheckSubcommand("context-load",
			"Enforce simultaneous context-load ceilings on skill suites",
			(*check.Checker).ContextLoad),
		newCheckSubcommand("budget",
			"Warn when files exceed their word budgets (advisory)",
			(*check.Checker).Budget),
		newCheckSubcommand("prose",
			"Flag prohibited prose patterns in procedure sections (advisory)",
			(*check.Checker).Prose),
	)
	return cmd
}

func newCheckSubcommand(name, short string, run checkFunc) *cobra.Command {
	return &cobra.Command{
		Use:   name + " [files...]",
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return nil
			}
			rc, err := newRunContext()
			if err != nil {
				return err
			}
			return reportFindings(run(rc.checker, args))
		},
	}
}
