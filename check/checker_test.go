package check

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/deepnoodle-ai/skillgov/budget"
	"github.com/deepnoodle-ai/skillgov/corpus"
)

func intPtr(v int) *int { return &v }

func writeFile(t *testing.T, root, rel, content string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func defaultTestTable() *budget.Table {
	return &budget.Table{
		CoordinatorMaxWords:   intPtr(1200),
		CoordinatorMaxTokens:  intPtr(1600),
		SpecialistMaxWords:    intPtr(2000),
		SpecialistMaxTokens:   intPtr(2660),
		StandaloneMaxWords:    intPtr(100),
		StandaloneMaxTokens:   intPtr(133),
		ReferenceMaxWords:     intPtr(3000),
		ReferenceMaxTokens:    intPtr(3990),
		MaxSimultaneousTokens: intPtr(5500),
		Overrides:             map[string]budget.Override{},
	}
}

func newTestChecker(t *testing.T, root string, table *budget.Table) *Checker {
	t.Helper()
	if table == nil {
		table = defaultTestTable()
	}
	classifier, err := corpus.NewClassifier(root, table.Exclude)
	require.NoError(t, err)
	return New(classifier, table)
}

func hardFindings(findings []Finding) []Finding {
	var hard []Finding
	for _, f := range findings {
		if f.Tier == TierHard {
			hard = append(hard, f)
		}
	}
	return hard
}
