package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/deepnoodle-ai/skillgov/slogger"
)

var logLevel string

// errCheckFailed signals that hard findings were already reported on
// stderr; the process should exit 1 without an extra error line.
var errCheckFailed = errors.New("check failed")

func getLogger() slogger.Logger {
	return slogger.New(slogger.LevelFromString(logLevel))
}

// Execute runs the skillgov CLI.
func Execute() {
	rootCmd := &cobra.Command{
		Use:   "skillgov",
		Short: "Governance checks for skill-document corpora",
		Long: `Skillgov enforces the structural rules of a skill-document corpus:
per-role word and token budgets, simultaneous context-load ceilings,
specialist isolation, reference resolution, and frontmatter validation.

Checks take a list of changed files (from a pre-commit staging set) and
print FAIL/WARNING/INFO diagnostics to stderr; reports walk the whole
corpus and print to stdout.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn",
		"Log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		newCheckCommand(),
		newCommitMsgCommand(),
		newReportCommand(),
		newWatchCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errCheckFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
