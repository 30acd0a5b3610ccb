package cli

import (
	"fmt"
	"os"

	"github.com/deepnoodle-ai/skillgov/budget"
	"github.com/deepnoodle-ai/skillgov/check"
	"github.com/deepnoodle-ai/skillgov/corpus"
)

// runContext is the read-only state shared by every check in one
// invocation: repo root, classifier, budget table, checker. Resolved once
// at startup.
type runContext struct {
	root       string
	classifier *corpus.Classifier
	table      *budget.Table
	checker    *check.Checker
}

func newRunContext() (*runContext, error) {
	root := corpus.FindRoot()
	table, err := budget.Load(root)
	if err != nil {
		return nil, fmt.Errorf("loading budget configuration: %w", err)
	}
	classifier, err := corpus.NewClassifier(root, table.Exclude)
	if err != nil {
		return nil, err
	}
	return &runContext{
		root:       root,
		classifier: classifier,
		table:      table,
		checker:    check.New(classifier, table),
	}, nil
}

// reportFindings prints findings to stderr, advisory tiers first, and
// returns errCheckFailed when any hard finding exists.
func reportFindings(findings []check.Finding) error {
	for _, f := range findings {
		if f.Tier != check.TierHard {
			printFinding(os.Stderr, f)
		}
	}
	hard := false
	for _, f := range findings {
		if f.Tier == check.TierHard {
			printFinding(os.Stderr, f)
			hard = true
		}
	}
	if hard {
		return errCheckFailed
	}
	return nil
}
