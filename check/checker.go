package check

import (
	"github.com/deepnoodle-ai/skillgov/budget"
	"github.com/deepnoodle-ai/skillgov/corpus"
)

// Checker runs governance checks against one repository. It holds only
// the read-only state resolved once per run: the path classifier and the
// budget table. Checks keep no mutable state between calls, so re-running
// on an unchanged tree yields identical findings.
type Checker struct {
	classifier *corpus.Classifier
	table      *budget.Table
}

// New returns a Checker for the repository the classifier is rooted at.
func New(classifier *corpus.Classifier, table *budget.Table) *Checker {
	return &Checker{classifier: classifier, table: table}
}
